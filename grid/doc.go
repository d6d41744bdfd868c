// Package grid derives voxel grid parameters from sphere bounds and owns the
// per-call occupancy buffer.
//
// A grid is origin + integer extent + spacing; cell (x,y,z) maps to flat
// index x*ny*nz + y*nz + z with x slowest-varying. Every 3D access goes
// through a validated mapping, and the extent product is overflow-checked so
// an oversized request fails instead of allocating a wrong, smaller buffer.
package grid
