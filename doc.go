// Package coomat assembles sparse matrices from concurrent coordinate
// updates and exposes them as immutable linear operators.
//
// A Matrix has two halves. The staging half accepts Insert, Remove and
// BatchInsert from any number of goroutines, with last-writer-wins
// semantics per coordinate. Commit drains the staged entries into a
// canonical compacted structure (row-major, column-ascending, explicit
// zeros dropped) together with a zero-copy transpose view. The
// committed half then serves Apply, ScaledAccumulate and the solver
// interfaces until the next Commit or Reset replaces it.
//
// Committed structures can be persisted to any blobstore.Store via
// SaveSnapshot and restored with LoadSnapshot.
package coomat
