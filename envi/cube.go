package envi

import (
	"fmt"

	"github.com/jhyttinen/go-envi/internal/dtype"
)

// Cube is the canonical in-memory sample cube: axis order (lines,
// samples, bands) regardless of the on-disk interleave, stored as one
// flat slice in row-major order with the band axis varying fastest.
type Cube struct {
	lines   int
	samples int
	bands   int
	desc    dtype.Descriptor
	data    any // flat []T, len == lines*samples*bands
}

// NewCube builds a cube over a flat canonical-order slice. The slice
// length must equal lines*samples*bands.
func NewCube[T dtype.Element](lines, samples, bands int, data []T) (*Cube, error) {
	if lines <= 0 || samples <= 0 || bands <= 0 {
		return nil, fmt.Errorf("invalid cube shape (%d, %d, %d)", lines, samples, bands)
	}
	if len(data) != lines*samples*bands {
		return nil, fmt.Errorf("cube data has %d elements, shape (%d, %d, %d) needs %d",
			len(data), lines, samples, bands, lines*samples*bands)
	}
	return &Cube{
		lines:   lines,
		samples: samples,
		bands:   bands,
		desc:    dtype.FromKind(dtype.KindOf[T]()),
		data:    data,
	}, nil
}

// CubeData returns the cube's flat canonical-order storage as []T. ok is
// false when the cube holds a different element type.
func CubeData[T dtype.Element](c *Cube) ([]T, bool) {
	s, ok := c.data.([]T)
	return s, ok
}

// Lines returns the number of spatial rows.
func (c *Cube) Lines() int { return c.lines }

// Samples returns the number of spatial columns.
func (c *Cube) Samples() int { return c.samples }

// Bands returns the number of spectral bands.
func (c *Cube) Bands() int { return c.bands }

// Shape returns (lines, samples, bands).
func (c *Cube) Shape() (lines, samples, bands int) {
	return c.lines, c.samples, c.bands
}

// NumElements returns the total sample count.
func (c *Cube) NumElements() int {
	return c.lines * c.samples * c.bands
}

// TypeCode returns the cube's ENVI data-type code.
func (c *Cube) TypeCode() int { return c.desc.Code }

// TypeName returns a short name for the element type, such as "u16".
func (c *Cube) TypeName() string { return c.desc.Kind.String() }

// ElemSize returns the width of one sample in bytes.
func (c *Cube) ElemSize() int { return c.desc.Size }

// index maps (line, sample, band) to the flat canonical position.
func (c *Cube) index(line, sample, band int) int {
	return (line*c.samples+sample)*c.bands + band
}

// Float64At returns the sample at (line, sample, band) widened to
// float64. Complex cubes yield the real part.
func (c *Cube) Float64At(line, sample, band int) (float64, error) {
	if line < 0 || line >= c.lines ||
		sample < 0 || sample >= c.samples ||
		band < 0 || band >= c.bands {
		return 0, fmt.Errorf("index (%d, %d, %d) out of range for shape (%d, %d, %d)",
			line, sample, band, c.lines, c.samples, c.bands)
	}
	i := c.index(line, sample, band)
	switch d := c.data.(type) {
	case []uint8:
		return float64(d[i]), nil
	case []int16:
		return float64(d[i]), nil
	case []int32:
		return float64(d[i]), nil
	case []float32:
		return float64(d[i]), nil
	case []float64:
		return d[i], nil
	case []complex64:
		return float64(real(d[i])), nil
	case []uint16:
		return float64(d[i]), nil
	case []uint32:
		return float64(d[i]), nil
	case []int64:
		return float64(d[i]), nil
	case []uint64:
		return float64(d[i]), nil
	}
	return 0, fmt.Errorf("cube holds unexpected storage %T", c.data)
}
