/*
Package merkletree implements hash trees over named data fields with
support for selective disclosure.

A producer appends leaves to a MerkleTree, computes the root, and
serializes the tree into one of three versioned JSON exchange formats.
A holder of the full tree can redact chosen leaves down to their hashes
and re-serialize; the redacted document still verifies against the same
root. A consumer parses a document (the format is auto-detected),
verifies the root, and optionally projects the visible leaves back into
a typed object.

The third exchange format protects itself against structural forgery:
the hash algorithm, total leaf count, and document type are encoded
into a header leaf at position 0, which is hashed into the root like
any other leaf.
*/
package merkletree
