// Package records loads and saves account record collections.
//
// A collection is a CSV table with the columns id, sn and memo. Empty id or
// sn cells mean the value is unknown. Collections are addressed by name and
// resolved to <dir>/<name><extension>.
//
// Two backends implement reconcile.Store:
//   - FileStore keeps collections on local disk and replaces them atomically
//     (temp file + rename).
//   - BucketStore keeps collections as objects in S3/MinIO through core/storage.
//
// NewStore picks one from the records.driver setting.
package records
