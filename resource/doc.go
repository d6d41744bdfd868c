// Package resource tracks and limits the memory, concurrency and IO of
// volume estimation.
//
// The memory gate is non-blocking on purpose: a voxel buffer that does not
// fit under the limit fails the call immediately (the caller retries with a
// coarser spacing), instead of queueing behind other grids.
package resource
