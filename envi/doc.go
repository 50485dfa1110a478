// Package envi reads and writes ENVI hyperspectral images: a
// human-readable ASCII header file paired with a companion raw binary
// file holding a three-dimensional sample cube.
//
// The in-memory [Cube] always uses the canonical (lines, samples, bands)
// axis order; decoding undoes whichever of the three on-disk interleave
// orderings (BIL, BIP, BSQ) the header declares, and encoding always
// emits BSQ in the host's byte order.
//
// Typical use:
//
//	cube, wavelengths, header, err := envi.ReadFile("capture/scene.hdr")
//	if err != nil {
//		return err
//	}
//	v, err := cube.Float64At(0, 0, 0)
//
// All operations are synchronous and single-pass over caller-owned
// buffers; the package keeps no shared mutable state, so concurrent calls
// on independent files are safe.
package envi
