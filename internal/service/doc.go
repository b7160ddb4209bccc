// Package service contains the application use cases. It orchestrates domain
// objects and the repositories defined in internal/store.
//
// The root package holds the word service and the errors shared by the
// sub-packages:
//
//   - review: records answers and lists due words
//   - statistics: aggregates review history and daily snapshots
//   - auth: validates bearer tokens
//
// Services receive their dependencies through constructors and never depend
// on a concrete storage implementation. Operations spanning several
// repositories run inside store.RunInTransaction.
package service
