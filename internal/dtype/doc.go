// Package dtype defines the fixed ENVI data-type registry: the mapping
// between on-disk numeric type codes, element kinds, and byte widths,
// plus byte-order-aware conversion between raw buffers and typed slices.
//
// The registry is immutable, process-wide configuration. Every lookup is
// a read of static tables, so concurrent use needs no locking.
package dtype
