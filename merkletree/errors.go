package merkletree

import "errors"

var (
	// ErrEmptyTree indicates an operation that needs at least one leaf
	// was invoked on a tree with none.
	ErrEmptyTree = errors.New("[merkletree] Tree has no leaves")

	// ErrNilTree indicates a nil tree was passed where one is required.
	ErrNilTree = errors.New("[merkletree] Tree must not be nil")

	// ErrNilPredicate indicates a nil redaction predicate.
	ErrNilPredicate = errors.New("[merkletree] Redaction predicate must not be nil")

	// ErrRootMismatch indicates the recomputed root differs from the
	// declared root. This is the only error category a caller can
	// legitimately recover from, by recomputing from trusted leaves.
	ErrRootMismatch = errors.New("[merkletree] Root does not match the leaves")

	// ErrNoRoot indicates the tree has never had its root computed.
	ErrNoRoot = errors.New("[merkletree] Root has not been computed")

	// ErrUnknownFormat indicates the trailer shape of a document
	// matches none of the known exchange formats.
	ErrUnknownFormat = errors.New("[merkletree] Unrecognized exchange format")

	// ErrMalformedDocument indicates a document that does not parse as
	// JSON or carries malformed hex values.
	ErrMalformedDocument = errors.New("[merkletree] Malformed exchange document")

	// ErrSingleLeafTree indicates a V3 document with fewer than two
	// leaves. A lone leaf cannot be a valid V3 tree; rejecting it
	// defeats single-leaf forgery.
	ErrSingleLeafTree = errors.New("[merkletree] V3 tree must contain at least two leaves")

	// ErrMissingHeaderLeaf indicates a V3 document whose first leaf is
	// absent, private, or does not decode as a UTF-8 JSON header.
	ErrMissingHeaderLeaf = errors.New("[merkletree] V3 header leaf is missing or unreadable")

	// ErrHeaderType indicates a V3 header leaf whose typ field is not
	// the reserved header type string.
	ErrHeaderType = errors.New("[merkletree] V3 header leaf has an incorrect type")

	// ErrMissingHeaderField indicates a V3 header leaf payload that
	// lacks one of its required fields.
	ErrMissingHeaderField = errors.New("[merkletree] V3 header leaf is missing a required field")

	// ErrLeafCountMismatch indicates a V3 header leaf whose declared
	// leaf count differs from the number of leaves actually present.
	ErrLeafCountMismatch = errors.New("[merkletree] V3 leaf count does not match the header leaf")

	// ErrNotSingleKeyJSON indicates key-based redaction was requested
	// on a leaf whose payload is not a single-key JSON object.
	ErrNotSingleKeyJSON = errors.New("[merkletree] Leaf is not a single-key JSON object")

	// ErrMissingRequiredField indicates object projection found a
	// required target field unreachable behind a private leaf.
	ErrMissingRequiredField = errors.New("[merkletree] Required field is hidden behind a private leaf")

	// ErrNothingToProject indicates object projection was attempted on
	// a tree with no visible data leaves.
	ErrNothingToProject = errors.New("[merkletree] Tree has no visible data leaves")
)
