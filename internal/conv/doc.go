// Package conv provides overflow-checked integer arithmetic and conversions.
//
// Grid sizing multiplies user-controlled extents; a silent wraparound there
// would turn an oversized request into a small, wrong allocation. These
// helpers make every such step fail loudly instead.
package conv
