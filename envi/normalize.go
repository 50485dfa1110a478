package envi

import (
	"fmt"
	"strings"
)

// specimIQ is the sensor whose 12-bit detector reports into a
// left-aligned 16-bit word.
const specimIQ = "specim iq"

// Normalize rescales an integer cube into unit-range float64 reflectance.
//
// 8-bit cubes divide every sample by 255. 16-bit unsigned cubes divide by
// 65535, after a 4-bit left shift when the header's sensor type names the
// Specim IQ; the shift wraps in 16-bit arithmetic, matching the
// detector's word layout. Other element types have no defined policy and
// fail with ErrUnsupportedDType. The input cube is left untouched.
func Normalize(h *Header, c *Cube) (*Cube, error) {
	switch d := c.data.(type) {
	case []uint8:
		out := make([]float64, len(d))
		for i, v := range d {
			out[i] = float64(v) / 255
		}
		return NewCube(c.lines, c.samples, c.bands, out)

	case []uint16:
		shift := isSpecimIQ(h)
		out := make([]float64, len(d))
		for i, v := range d {
			if shift {
				v <<= 4
			}
			out[i] = float64(v) / 65535
		}
		return NewCube(c.lines, c.samples, c.bands, out)

	default:
		return nil, fmt.Errorf("no normalization policy for %s cubes: %w", c.desc.Kind, ErrUnsupportedDType)
	}
}

// isSpecimIQ reports whether the header's sensor type names the Specim
// IQ. Quoted sensor names keep their quotes through parsing, so strip
// them before comparing.
func isSpecimIQ(h *Header) bool {
	v, ok := h.Get("sensor type")
	if !ok || v.Kind != KindString {
		return false
	}
	name := strings.Trim(strings.TrimSpace(v.Str), `"`)
	return strings.EqualFold(name, specimIQ)
}
