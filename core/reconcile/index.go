package reconcile

import (
	"golang.org/x/text/cases"
)

// Index maps account IDs to names and names to IDs.
//
// It is built once from a lookup response and never modified afterwards.
// The two directions are plain maps written together on every insert.
type Index struct {
	nameByID map[uint64]string
	idByName map[string]uint64
	fold     func(string) string
}

// IndexOption configures index construction.
type IndexOption func(*Index)

// WithNameFolding makes name keys case-insensitive using Unicode case folding.
// Screen names are matched this way by the lookup service itself.
func WithNameFolding() IndexOption {
	return func(ix *Index) {
		caser := cases.Fold()
		ix.fold = caser.String
	}
}

// BuildIndex inserts every identity in order.
//
// Conflicts are last-write-wins: when an ID or a name occurs more than once,
// the pair that comes later in the response owns that key in both directions.
// The reverse entry of a displaced pair is left in place, so the index is not
// re-validated as a strict bijection after an overwrite.
func BuildIndex(identities []ResolvedIdentity, opts ...IndexOption) *Index {
	ix := &Index{
		nameByID: make(map[uint64]string, len(identities)),
		idByName: make(map[string]uint64, len(identities)),
	}
	for _, opt := range opts {
		opt(ix)
	}
	for _, identity := range identities {
		ix.insert(identity)
	}
	return ix
}

func (ix *Index) insert(identity ResolvedIdentity) {
	ix.nameByID[identity.ID] = identity.Name
	ix.idByName[ix.nameKey(identity.Name)] = identity.ID
}

func (ix *Index) nameKey(name string) string {
	if ix.fold == nil {
		return name
	}
	return ix.fold(name)
}

// NameByID returns the name associated with id.
func (ix *Index) NameByID(id uint64) (string, bool) {
	name, ok := ix.nameByID[id]
	return name, ok
}

// IDByName returns the ID associated with name.
func (ix *Index) IDByName(name string) (uint64, bool) {
	id, ok := ix.idByName[ix.nameKey(name)]
	return id, ok
}

// Len returns the number of distinct IDs in the index.
func (ix *Index) Len() int {
	return len(ix.nameByID)
}
