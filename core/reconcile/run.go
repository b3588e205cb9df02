package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Run executes one reconciliation of the named collection:
// load, extract, resolve, index, merge, then save.
//
// Any failure aborts the run. A lookup failure returns before anything is
// written, so the stored collection is left untouched.
func Run(ctx context.Context, spec *Spec, collection string, opts Options) (*Result, error) {
	l := spec.logger().With(zap.String("collection", collection))

	// 1. Load
	records, err := spec.Store.Load(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", collection, err)
	}
	l.Debug("Loaded records", zap.Int("count", len(records)))

	// 2. Extract
	refs := ExtractRefs(records)
	l.Debug("Extracted references", zap.Int("count", len(refs)))

	// 3. Resolve
	identities, err := spec.Resolver.Resolve(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %d references: %w: %w", len(refs), ErrLookup, err)
	}
	l.Debug("Resolved identities", zap.Int("count", len(identities)))

	// 4. Index
	index := BuildIndex(identities, spec.IndexOptions...)

	// 5. Merge
	summary := Reconcile(records, index)

	result := &Result{
		Records:  records,
		Refs:     len(refs),
		Resolved: len(identities),
		Summary:  summary,
	}

	if opts.DryRun {
		l.Info("Dry-run mode: collection not saved")
		return result, nil
	}

	// 6. Save
	if err := spec.Store.Save(ctx, collection, records); err != nil {
		return nil, fmt.Errorf("failed to save collection %q: %w: %w", collection, ErrSave, err)
	}
	result.Saved = true

	return result, nil
}
