package envi

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/jhyttinen/go-envi/internal/dtype"
)

// geometry carries the header fields that determine the raw data layout.
type geometry struct {
	lines      int
	samples    int
	bands      int
	order      binary.ByteOrder
	desc       dtype.Descriptor
	interleave string
}

// byteSize is lines*samples*bands*element size; ok is false when the
// product does not fit in an int. Dimensions are already positive here.
func (g geometry) byteSize() (int, bool) {
	n := g.lines
	for _, f := range []int{g.samples, g.bands, g.desc.Size} {
		if n > math.MaxInt/f {
			return 0, false
		}
		n *= f
	}
	return n, true
}

func readGeometry(h *Header) (geometry, error) {
	var g geometry
	var err error
	if g.samples, err = h.Int("samples"); err != nil {
		return g, fmt.Errorf("reading geometry: %w", err)
	}
	if g.lines, err = h.Int("lines"); err != nil {
		return g, fmt.Errorf("reading geometry: %w", err)
	}
	if g.bands, err = h.Int("bands"); err != nil {
		return g, fmt.Errorf("reading geometry: %w", err)
	}
	if g.lines <= 0 || g.samples <= 0 || g.bands <= 0 {
		return g, fmt.Errorf("geometry (%d, %d, %d) has a non-positive dimension: %w",
			g.lines, g.samples, g.bands, ErrUnsupportedValue)
	}

	orderCode, err := h.Int("byte order")
	if err != nil {
		return g, fmt.Errorf("reading geometry: %w", err)
	}
	switch orderCode {
	case 0:
		g.order = binary.LittleEndian
	case 1:
		g.order = binary.BigEndian
	default:
		return g, fmt.Errorf("byte order %d: %w", orderCode, ErrUnknownFormat)
	}

	code, err := h.Int("data type")
	if err != nil {
		return g, fmt.Errorf("reading geometry: %w", err)
	}
	if g.desc, err = dtype.FromCode(code); err != nil {
		return g, err
	}

	il, err := h.Str("interleave")
	if err != nil {
		return g, fmt.Errorf("reading geometry: %w", err)
	}
	g.interleave = strings.ToLower(strings.TrimSpace(il))
	return g, nil
}

// Decode decodes header text and the raw companion bytes into the
// canonical cube. The wavelength list, when present, is returned as
// float64s parallel to the band axis (nil when the header has none).
// normalize toggles the reflectance normalization stage, see Normalize.
func Decode(headerText, raw []byte, normalize bool) (*Cube, []float64, *Header, error) {
	h, err := ParseHeader(headerText)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing header: %w", err)
	}

	c, err := DecodeCube(h, raw)
	if err != nil {
		return nil, nil, nil, err
	}
	if normalize {
		if c, err = Normalize(h, c); err != nil {
			return nil, nil, nil, err
		}
	}

	wl, err := wavelengthVector(h, c.Bands())
	if err != nil {
		return nil, nil, nil, err
	}
	return c, wl, h, nil
}

// wavelengthVector extracts the wavelength field; nil when absent.
func wavelengthVector(h *Header, bands int) ([]float64, error) {
	if !h.Has("wavelength") {
		return nil, nil
	}
	wl, err := h.Floats("wavelength")
	if err != nil {
		return nil, err
	}
	if len(wl) != bands {
		return nil, fmt.Errorf("wavelength has %d entries for %d bands", len(wl), bands)
	}
	return wl, nil
}

// DecodeCube reinterprets raw bytes as the canonical cube described by
// the header, undoing the on-disk interleave.
func DecodeCube(h *Header, raw []byte) (*Cube, error) {
	g, err := readGeometry(h)
	if err != nil {
		return nil, err
	}

	need, ok := g.byteSize()
	if !ok {
		return nil, fmt.Errorf("geometry (%d, %d, %d) x %d bytes overflows: %w",
			g.lines, g.samples, g.bands, g.desc.Size, ErrUnsupportedValue)
	}
	if len(raw) < need {
		return nil, fmt.Errorf("raw data has %d bytes, geometry needs %d: %w", len(raw), need, ErrSizeMismatch)
	}

	switch g.desc.Kind {
	case dtype.Uint8:
		return decodeCube[uint8](g, raw)
	case dtype.Int16:
		return decodeCube[int16](g, raw)
	case dtype.Int32:
		return decodeCube[int32](g, raw)
	case dtype.Float32:
		return decodeCube[float32](g, raw)
	case dtype.Float64:
		return decodeCube[float64](g, raw)
	case dtype.Complex64:
		return decodeCube[complex64](g, raw)
	case dtype.Uint16:
		return decodeCube[uint16](g, raw)
	case dtype.Uint32:
		return decodeCube[uint32](g, raw)
	case dtype.Int64:
		return decodeCube[int64](g, raw)
	default:
		return decodeCube[uint64](g, raw)
	}
}

// decodeCube converts flat file-order elements into canonical order with
// an explicit strided copy per interleave.
func decodeCube[T dtype.Element](g geometry, raw []byte) (*Cube, error) {
	n := g.lines * g.samples * g.bands
	flat := dtype.DecodeSlice[T](raw, n, g.order)
	data := make([]T, n)
	L, S, B := g.lines, g.samples, g.bands

	switch g.interleave {
	case "bil":
		// File order: line outermost, then band, sample fastest.
		for line := 0; line < L; line++ {
			for band := 0; band < B; band++ {
				for sample := 0; sample < S; sample++ {
					data[(line*S+sample)*B+band] = flat[(line*B+band)*S+sample]
				}
			}
		}
	case "bip":
		// File order: line, sample, band — already canonical.
		copy(data, flat)
	case "bsq":
		// File order: band outermost, then line, sample fastest.
		for band := 0; band < B; band++ {
			for line := 0; line < L; line++ {
				for sample := 0; sample < S; sample++ {
					data[(line*S+sample)*B+band] = flat[(band*L+line)*S+sample]
				}
			}
		}
	default:
		return nil, fmt.Errorf("interleave %q: %w", g.interleave, ErrUnknownFormat)
	}
	return NewCube(L, S, B, data)
}

// Encode serializes a cube and its wavelengths alongside a header.
//
// The emitted layout is always band-sequential (BSQ) in the host's byte
// order, whatever layout the data came from. The returned header text
// carries the geometry, byte order, data type, interleave, and
// reflectance scale factor derived from the cube; the caller's header is
// not modified.
func Encode(h *Header, c *Cube, wavelengths []float64) (headerText, raw []byte, err error) {
	hh := h.Clone()
	injectWavelengths(hh, wavelengths)

	raw, err = EncodeCube(hh, c)
	if err != nil {
		return nil, nil, err
	}
	headerText, err = SerializeHeader(hh)
	if err != nil {
		return nil, nil, err
	}
	return headerText, raw, nil
}

// injectWavelengths replaces the header's wavelength field so it stays
// parallel to the cube's band axis.
func injectWavelengths(h *Header, wl []float64) {
	if wl == nil {
		return
	}
	elems := make([]Value, len(wl))
	for i, w := range wl {
		elems[i] = FloatValue(w)
	}
	h.Set("wavelength", ListValue(elems...))
}

// EncodeCube writes the cube's samples in BSQ order and records the
// derived layout fields in the header, overwriting any previous values.
func EncodeCube(h *Header, c *Cube) ([]byte, error) {
	order, orderCode := dtype.NativeOrder()

	h.Set("samples", IntValue(int64(c.samples)))
	h.Set("lines", IntValue(int64(c.lines)))
	h.Set("bands", IntValue(int64(c.bands)))
	h.Set("byte order", IntValue(int64(orderCode)))
	h.Set("data type", IntValue(int64(c.desc.Code)))
	h.Set("interleave", StringValue("BSQ"))
	h.Set("reflectance scale factor", FloatValue(c.desc.ScaleFactor()))

	switch d := c.data.(type) {
	case []uint8:
		return encodeBSQ(c, d, order), nil
	case []int16:
		return encodeBSQ(c, d, order), nil
	case []int32:
		return encodeBSQ(c, d, order), nil
	case []float32:
		return encodeBSQ(c, d, order), nil
	case []float64:
		return encodeBSQ(c, d, order), nil
	case []complex64:
		return encodeBSQ(c, d, order), nil
	case []uint16:
		return encodeBSQ(c, d, order), nil
	case []uint32:
		return encodeBSQ(c, d, order), nil
	case []int64:
		return encodeBSQ(c, d, order), nil
	case []uint64:
		return encodeBSQ(c, d, order), nil
	}
	return nil, fmt.Errorf("cube holds unexpected storage %T: %w", c.data, ErrUnsupportedDType)
}

// encodeBSQ performs the canonical to band-sequential strided copy.
func encodeBSQ[T dtype.Element](c *Cube, data []T, order binary.ByteOrder) []byte {
	L, S, B := c.lines, c.samples, c.bands
	out := make([]T, len(data))
	for band := 0; band < B; band++ {
		for line := 0; line < L; line++ {
			for sample := 0; sample < S; sample++ {
				out[(band*L+line)*S+sample] = data[(line*S+sample)*B+band]
			}
		}
	}
	return dtype.EncodeSlice(out, order)
}
