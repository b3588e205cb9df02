package reconcile

import "strconv"

// Record is one tracked account as stored in a collection.
// ID and Name are optional; Memo is always present but may be empty.
type Record struct {
	// ID is the numeric account identifier, nil when unknown.
	ID *uint64

	// Name is the screen name, nil when unknown.
	Name *string

	// Memo is free text carried through reconciliation untouched.
	Memo string
}

// KeyState tells which field of a record drives its lookup.
type KeyState int

const (
	// KeyInert marks a record with neither ID nor Name. It is never resolved.
	KeyInert KeyState = iota
	// KeyByID marks a record resolved through its ID.
	KeyByID
	// KeyByName marks a record resolved through its Name (ID absent).
	KeyByName
)

// String returns the state name used in logs.
func (s KeyState) String() string {
	switch s {
	case KeyByID:
		return "by_id"
	case KeyByName:
		return "by_name"
	default:
		return "inert"
	}
}

// KeyState classifies the record by which of its keys are present.
// ID takes priority over Name when both are set.
func (r Record) KeyState() KeyState {
	hasID, hasName := r.ID != nil, r.Name != nil
	switch {
	case hasID && hasName:
		return KeyByID
	case hasID && !hasName:
		return KeyByID
	case !hasID && hasName:
		return KeyByName
	default:
		return KeyInert
	}
}

// RefKind is the tag of an IdentityRef.
type RefKind int

const (
	// RefID is a reference by numeric ID.
	RefID RefKind = iota
	// RefName is a reference by screen name.
	RefName
)

// IdentityRef is a lookup key: either a numeric ID or a name.
// Only the field matching Kind is meaningful.
type IdentityRef struct {
	Kind RefKind
	ID   uint64
	Name string
}

// RefByID returns a reference to the account with the given ID.
func RefByID(id uint64) IdentityRef {
	return IdentityRef{Kind: RefID, ID: id}
}

// RefByName returns a reference to the account with the given screen name.
func RefByName(name string) IdentityRef {
	return IdentityRef{Kind: RefName, Name: name}
}

func (r IdentityRef) String() string {
	if r.Kind == RefID {
		return "id:" + strconv.FormatUint(r.ID, 10)
	}
	return "name:" + r.Name
}

// ResolvedIdentity is one (id, name) association returned by the lookup service.
type ResolvedIdentity struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Summary provides aggregate counts for one reconciliation pass.
type Summary struct {
	// Total is the number of records processed.
	Total int `json:"total"`

	// ByID counts records whose name was filled or refreshed from their ID.
	ByID int `json:"by_id"`

	// ByName counts records whose ID was filled from their name.
	ByName int `json:"by_name"`

	// NamesChanged counts ID-keyed records whose name differs after the merge,
	// including records that had no name before.
	NamesChanged int `json:"names_changed"`

	// Unresolved counts keyed records the lookup service returned nothing for.
	Unresolved int `json:"unresolved"`

	// Inert counts records with neither ID nor name.
	Inert int `json:"inert"`
}

// Options controls a pipeline run.
type Options struct {
	// DryRun resolves and merges but skips saving the collection.
	DryRun bool
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Records is the reconciled collection in its original order.
	Records []Record

	// Refs is the number of distinct references sent to the resolver.
	Refs int

	// Resolved is the number of identities the resolver returned.
	Resolved int

	// Summary holds the merge counts.
	Summary Summary

	// Saved reports whether the collection was written back.
	Saved bool
}
