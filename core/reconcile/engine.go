package reconcile

// ExtractRefs returns one reference per keyed record, deduplicated and in
// first-seen order. A record with an ID contributes its ID, a record with only
// a name contributes its name, and inert records contribute nothing.
func ExtractRefs(records []Record) []IdentityRef {
	refs := make([]IdentityRef, 0, len(records))
	seenIDs := make(map[uint64]struct{})
	seenNames := make(map[string]struct{})

	for _, rec := range records {
		switch rec.KeyState() {
		case KeyByID:
			if _, dup := seenIDs[*rec.ID]; dup {
				continue
			}
			seenIDs[*rec.ID] = struct{}{}
			refs = append(refs, RefByID(*rec.ID))
		case KeyByName:
			if _, dup := seenNames[*rec.Name]; dup {
				continue
			}
			seenNames[*rec.Name] = struct{}{}
			refs = append(refs, RefByName(*rec.Name))
		case KeyInert:
		}
	}

	return refs
}

// Reconcile merges index entries into records in place and returns the counts.
//
// For each record exactly one rule applies:
//   - ID present: the name found for that ID replaces Name, even when Name
//     was already set. The ID itself is never changed.
//   - only Name present: the ID found for that name is filled in.
//   - neither present: the record is left as is.
//
// A record whose key is missing from the index keeps its fields unchanged.
func Reconcile(records []Record, index *Index) Summary {
	summary := Summary{Total: len(records)}

	for i := range records {
		rec := &records[i]

		switch rec.KeyState() {
		case KeyByID:
			name, ok := index.NameByID(*rec.ID)
			if !ok {
				summary.Unresolved++
				continue
			}
			if rec.Name == nil || *rec.Name != name {
				summary.NamesChanged++
			}
			rec.Name = &name
			summary.ByID++

		case KeyByName:
			id, ok := index.IDByName(*rec.Name)
			if !ok {
				summary.Unresolved++
				continue
			}
			rec.ID = &id
			summary.ByName++

		case KeyInert:
			summary.Inert++
		}
	}

	return summary
}
