package reconcile

import (
	"context"

	"go.uber.org/zap"
)

// Resolver looks up identities for a batch of references.
//
// Implementations return at most one identity per account they recognize and
// simply omit references they cannot resolve. An error means the whole lookup
// failed and nothing from it may be applied.
type Resolver interface {
	Resolve(ctx context.Context, refs []IdentityRef) ([]ResolvedIdentity, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ctx context.Context, refs []IdentityRef) ([]ResolvedIdentity, error)

// Resolve calls f(ctx, refs).
func (f ResolverFunc) Resolve(ctx context.Context, refs []IdentityRef) ([]ResolvedIdentity, error) {
	return f(ctx, refs)
}

// Store loads and saves record collections by name.
type Store interface {
	// Load reads every record of the named collection in stored order.
	// A row that cannot be decoded fails the whole load with an ErrParse error.
	Load(ctx context.Context, collection string) ([]Record, error)

	// Save fully rewrites the named collection with records in slice order.
	Save(ctx context.Context, collection string, records []Record) error
}

// Spec bundles the collaborators of a reconciliation run.
type Spec struct {
	// Store provides the record collection.
	Store Store

	// Resolver performs the batched identity lookup.
	Resolver Resolver

	// IndexOptions are applied when building the index from the lookup response.
	IndexOptions []IndexOption

	// Logger receives per-stage progress. Nil disables logging.
	Logger *zap.Logger
}

func (s *Spec) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
