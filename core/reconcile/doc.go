// Package reconcile fills in the missing half of partially known account records.
//
// A record carries an optional numeric ID, an optional screen name and a memo.
// The package resolves whichever key is missing through one batched lookup and
// merges the answers back into the records in place.
//
// # Pipeline
//
// Run drives a single, strictly ordered pass:
//
//  1. Store.Load reads the collection.
//  2. ExtractRefs collects one reference per distinct key.
//  3. Resolver.Resolve looks them all up in one batch.
//  4. BuildIndex turns the response into an id<->name index.
//  5. Reconcile merges the index into the records.
//  6. Store.Save writes the collection back to where it came from.
//
// Every error is fatal; nothing is retried and nothing partial is saved.
//
// # Merge Policy
//
// A record with an ID always takes the name the index holds for that ID, even
// if it already had a different one. A record with only a name gets its ID
// filled. Records with neither are passed through unchanged.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Store:    records.NewFileStore(cfg.Records),
//	    Resolver: twitter.NewResolver(cfg.Lookup, cfg.Credentials),
//	    Logger:   l,
//	}
//	result, err := reconcile.Run(ctx, spec, "friends", reconcile.Options{})
package reconcile
