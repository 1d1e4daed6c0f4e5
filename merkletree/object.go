package merkletree

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// GetObject reconstructs a value of type T from the tree's visible
// leaves. The single key/value pair of each visible data leaf is
// merged into one object, which is then deserialized into T. The
// header leaf is skipped and private leaves contribute nothing.
//
// If validateRoot is set, the root is verified first and a mismatch
// surfaces as ErrRootMismatch.
//
// Each target field is in one of three states: present with a value
// (including an empty string, array, or object), present and
// explicitly null, or absent because its leaf is private. A present
// null is used as null, never an error. An absent field is an error
// when T marks it required (a non-nilable kind), because the
// projection cannot tell "never existed" from "redacted", and
// redaction must never silently downgrade a required field to its zero
// value. Absent fields are tolerated only when the tree holds no
// private leaves at all, in which case the field legitimately never
// existed.
func GetObject[T any](t *MerkleTree, validateRoot bool) (T, error) {
	var result T
	if t == nil {
		return result, ErrNilTree
	}
	if validateRoot {
		ok, err := t.VerifyRoot()
		if err != nil {
			return result, err
		}
		if !ok {
			return result, ErrRootMismatch
		}
	}

	merged := make(map[string]json.RawMessage)
	hasPrivate := false
	for i := range t.Leaves {
		leaf := &t.Leaves[i]
		if leaf.IsHeader() {
			continue
		}
		if leaf.IsPrivate() {
			hasPrivate = true
			continue
		}
		obj, ok := leaf.TryReadJSON()
		if !ok {
			continue
		}
		for k, v := range obj {
			merged[k] = v
		}
	}
	if len(merged) == 0 {
		return result, ErrNothingToProject
	}

	if hasPrivate {
		if missing := missingRequiredField(reflect.TypeOf(result), merged); missing != "" {
			return result, fmt.Errorf("%w: %s", ErrMissingRequiredField, missing)
		}
	}

	blob, err := json.Marshal(merged)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(blob, &result); err != nil {
		return result, fmt.Errorf("cannot project merged leaves into %T: %v", result, err)
	}
	return result, nil
}

// missingRequiredField returns the JSON name of the first required
// field of the target struct type that is absent from the merged
// object, or "" when every required field is reachable. Fields of a
// nilable kind (pointer, slice, map, interface) are optional: a
// redacted leaf leaves them nil rather than raising an error.
func missingRequiredField(typ reflect.Type, merged map[string]json.RawMessage) string {
	if typ == nil || typ.Kind() != reflect.Struct {
		return ""
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		switch field.Type.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			continue
		}
		if _, ok := merged[name]; !ok {
			return name
		}
	}
	return ""
}
