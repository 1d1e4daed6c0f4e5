package merkletree

import "fmt"

// RedactTree produces a structurally identical copy of the source tree
// in which every leaf selected by shouldRedact is replaced with a
// private leaf carrying the same hash. The metadata, leaf order, and
// root are unchanged: redaction preserves the root by construction.
//
// The header leaf, if present, is always copied in full regardless of
// the rule. Redacting it would hide the tamper-evidence it exists to
// provide.
func RedactTree(source *MerkleTree, shouldRedact func(*Leaf) bool) (*MerkleTree, error) {
	if source == nil {
		return nil, ErrNilTree
	}
	if shouldRedact == nil {
		return nil, ErrNilPredicate
	}
	out := &MerkleTree{
		Leaves:   make([]Leaf, len(source.Leaves)),
		Root:     append([]byte{}, source.Root...),
		Metadata: source.Metadata,
	}
	for i := range source.Leaves {
		leaf := &source.Leaves[i]
		if !leaf.IsHeader() && shouldRedact(leaf) {
			out.Leaves[i] = NewPrivateLeaf(leaf.Hash)
		} else {
			out.Leaves[i] = leaf.clone()
		}
	}
	return out, nil
}

// RedactTreeKeys redacts every data leaf whose JSON key is not in the
// given allow-list. Key-based redaction is defined only over leaves
// whose payload is a single-key JSON object; any other readable data
// leaf fails with ErrNotSingleKeyJSON. Already-private leaves pass
// through untouched, and the header leaf is exempt as always.
func RedactTreeKeys(source *MerkleTree, keysToPreserve []string) (*MerkleTree, error) {
	if source == nil {
		return nil, ErrNilTree
	}
	preserve := make(map[string]struct{}, len(keysToPreserve))
	for _, k := range keysToPreserve {
		preserve[k] = struct{}{}
	}

	// Precondition pass first, so a bad leaf fails the whole call
	// before any output exists.
	for i := range source.Leaves {
		leaf := &source.Leaves[i]
		if leaf.IsPrivate() || leaf.IsHeader() {
			continue
		}
		keys, ok := leaf.TryReadJSONKeys()
		if !ok || len(keys) != 1 {
			return nil, fmt.Errorf("%w: leaf %d", ErrNotSingleKeyJSON, i)
		}
	}

	return RedactTree(source, func(l *Leaf) bool {
		if l.IsPrivate() {
			return false
		}
		keys, _ := l.TryReadJSONKeys()
		for _, k := range keys {
			if _, ok := preserve[k]; ok {
				return false
			}
		}
		return true
	})
}
