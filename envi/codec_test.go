package envi

import (
	"fmt"
	"math"
	"testing"

	"github.com/jhyttinen/go-envi/internal/dtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geometryHeader builds a minimal header for a raw u8 cube.
func geometryHeader(lines, samples, bands, dataType, byteOrder int, interleave string) *Header {
	h := NewHeader()
	h.Set("samples", IntValue(int64(samples)))
	h.Set("lines", IntValue(int64(lines)))
	h.Set("bands", IntValue(int64(bands)))
	h.Set("data type", IntValue(int64(dataType)))
	h.Set("byte order", IntValue(int64(byteOrder)))
	h.Set("interleave", StringValue(interleave))
	return h
}

func TestDecodeCubeBSQScenario(t *testing.T) {
	// 2 lines x 2 samples x 1 band, u8, BSQ.
	h := geometryHeader(2, 2, 1, 1, 0, "bsq")
	c, err := DecodeCube(h, []byte{10, 20, 30, 40})
	require.NoError(t, err)

	lines, samples, bands := c.Shape()
	assert.Equal(t, [3]int{2, 2, 1}, [3]int{lines, samples, bands})

	data, ok := CubeData[uint8](c)
	require.True(t, ok)
	assert.Equal(t, []uint8{10, 20, 30, 40}, data)

	v, err := c.Float64At(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)
}

// canonicalU8 returns the canonical-order samples for a 2x2x2 cube whose
// value at (line, sample, band) is line*100 + sample*10 + band.
func canonicalU8() []uint8 {
	return []uint8{0, 1, 10, 11, 100, 101, 110, 111}
}

func TestDecodeCubeInterleaves(t *testing.T) {
	tests := []struct {
		interleave string
		file       []uint8
	}{
		// file order (line, band, sample)
		{"bil", []uint8{0, 10, 1, 11, 100, 110, 101, 111}},
		// file order (line, sample, band)
		{"bip", []uint8{0, 1, 10, 11, 100, 101, 110, 111}},
		// file order (band, line, sample)
		{"bsq", []uint8{0, 10, 100, 110, 1, 11, 101, 111}},
	}

	for _, tt := range tests {
		t.Run(tt.interleave, func(t *testing.T) {
			h := geometryHeader(2, 2, 2, 1, 0, tt.interleave)
			c, err := DecodeCube(h, tt.file)
			require.NoError(t, err)

			data, ok := CubeData[uint8](c)
			require.True(t, ok)
			assert.Equal(t, canonicalU8(), data)
		})
	}
}

func TestDecodeCubeInterleaveCaseInsensitive(t *testing.T) {
	h := geometryHeader(2, 2, 2, 1, 0, "BSQ")
	c, err := DecodeCube(h, []byte{0, 10, 100, 110, 1, 11, 101, 111})
	require.NoError(t, err)

	data, _ := CubeData[uint8](c)
	assert.Equal(t, canonicalU8(), data)
}

func TestDecodeCubeBigEndianU16(t *testing.T) {
	h := geometryHeader(1, 2, 1, 12, 1, "bsq")
	c, err := DecodeCube(h, []byte{0x01, 0x02, 0xff, 0xfe})
	require.NoError(t, err)

	data, ok := CubeData[uint16](c)
	require.True(t, ok)
	assert.Equal(t, []uint16{0x0102, 0xfffe}, data)
}

func TestDecodeCubeSizeMismatch(t *testing.T) {
	h := geometryHeader(2, 2, 1, 1, 0, "bsq")
	_, err := DecodeCube(h, []byte{10, 20, 30})
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestDecodeCubeUnknownFormats(t *testing.T) {
	t.Run("data type", func(t *testing.T) {
		h := geometryHeader(1, 1, 1, 99, 0, "bsq")
		_, err := DecodeCube(h, []byte{0})
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
	t.Run("byte order", func(t *testing.T) {
		h := geometryHeader(1, 1, 1, 1, 2, "bsq")
		_, err := DecodeCube(h, []byte{0})
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
	t.Run("interleave", func(t *testing.T) {
		h := geometryHeader(1, 1, 1, 1, 0, "interleaved")
		_, err := DecodeCube(h, []byte{0})
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestDecodeCubeRejectsNonPositiveDimensions(t *testing.T) {
	tests := []struct {
		name                  string
		lines, samples, bands int
	}{
		{"negative lines", -1, 2, 1},
		{"zero samples", 2, 0, 1},
		{"negative bands", 2, 2, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := geometryHeader(tt.lines, tt.samples, tt.bands, 1, 0, "bsq")
			_, err := DecodeCube(h, []byte{10, 20, 30, 40})
			assert.ErrorIs(t, err, ErrUnsupportedValue)
		})
	}
}

func TestDecodeRejectsNegativeLines(t *testing.T) {
	text := "ENVI\n" +
		"samples = 2\nlines = -1\nbands = 1\n" +
		"data type = 1\nbyte order = 0\ninterleave = bsq\n"
	_, _, _, err := Decode([]byte(text), []byte{10, 20, 30, 40}, false)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestDecodeCubeRejectsOverflowingGeometry(t *testing.T) {
	// f64 elements push lines*samples*bands*8 past the int range.
	h := geometryHeader(math.MaxInt/2, 3, 4, 5, 0, "bsq")
	_, err := DecodeCube(h, []byte{})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestDecodeCubeMissingGeometry(t *testing.T) {
	h := NewHeader()
	h.Set("samples", IntValue(2))
	_, err := DecodeCube(h, []byte{0, 0})
	assert.Error(t, err)
}

func TestDecodeWavelengths(t *testing.T) {
	text := "ENVI\n" +
		"samples = 2\nlines = 2\nbands = 2\ndata type = 1\nbyte order = 0\ninterleave = bip\n" +
		"wavelength = {500.5, 600.5}\n"
	raw := canonicalU8()

	_, wl, _, err := Decode([]byte(text), raw, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{500.5, 600.5}, wl)
}

func TestDecodeWavelengthsAbsent(t *testing.T) {
	text := "ENVI\nsamples = 1\nlines = 1\nbands = 1\ndata type = 1\nbyte order = 0\ninterleave = bsq\n"
	_, wl, _, err := Decode([]byte(text), []byte{7}, false)
	require.NoError(t, err)
	assert.Nil(t, wl)
}

func TestDecodeWavelengthsLengthMismatch(t *testing.T) {
	text := "ENVI\n" +
		"samples = 1\nlines = 1\nbands = 1\ndata type = 1\nbyte order = 0\ninterleave = bsq\n" +
		"wavelength = {500.5, 600.5}\n"
	_, _, _, err := Decode([]byte(text), []byte{7}, false)
	assert.Error(t, err)
}

func TestEncodeCubeHeaderFields(t *testing.T) {
	data := make([]uint16, 2*3*4)
	for i := range data {
		data[i] = uint16(i)
	}
	c, err := NewCube(2, 3, 4, data)
	require.NoError(t, err)

	h := NewHeader()
	h.Set("sensor type", StringValue("Specim IQ"))
	h.Set("interleave", StringValue("bil")) // overwritten by encode

	raw, err := EncodeCube(h, c)
	require.NoError(t, err)
	assert.Len(t, raw, 2*3*4*2)

	for key, want := range map[string]int{
		"samples":   3,
		"lines":     2,
		"bands":     4,
		"data type": 12,
	} {
		got, err := h.Int(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	il, err := h.Str("interleave")
	require.NoError(t, err)
	assert.Equal(t, "BSQ", il)

	sf, err := h.Float("reflectance scale factor")
	require.NoError(t, err)
	assert.Equal(t, 65535.0, sf)

	_, code := dtype.NativeOrder()
	bo, err := h.Int("byte order")
	require.NoError(t, err)
	assert.Equal(t, code, bo)
}

func TestEncodeCubeBSQOrder(t *testing.T) {
	c, err := NewCube(2, 2, 2, canonicalU8())
	require.NoError(t, err)

	raw, err := EncodeCube(NewHeader(), c)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 10, 100, 110, 1, 11, 101, 111}, raw)
}

func TestEncodeScaleFactorFloatKind(t *testing.T) {
	c, err := NewCube(1, 1, 1, []float32{0.5})
	require.NoError(t, err)

	h := NewHeader()
	_, err = EncodeCube(h, c)
	require.NoError(t, err)

	sf, err := h.Float("reflectance scale factor")
	require.NoError(t, err)
	assert.Equal(t, 1.0, sf)
}

func roundTrip[T dtype.Element](t *testing.T, data []T) {
	t.Helper()
	c, err := NewCube(2, 1, 2, data)
	require.NoError(t, err)

	headerText, raw, err := Encode(NewHeader(), c, []float64{500, 600})
	require.NoError(t, err)

	c2, wl, _, err := Decode(headerText, raw, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{500, 600}, wl)

	got, ok := CubeData[T](c2)
	require.True(t, ok)
	assert.Equal(t, data, got)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Run("u8", func(t *testing.T) { roundTrip(t, []uint8{1, 2, 3, 255}) })
	t.Run("i16", func(t *testing.T) { roundTrip(t, []int16{-32768, -1, 0, 32767}) })
	t.Run("i32", func(t *testing.T) { roundTrip(t, []int32{-5, 0, 7, 1 << 30}) })
	t.Run("f32", func(t *testing.T) { roundTrip(t, []float32{-1.5, 0, 0.25, 1e20}) })
	t.Run("f64", func(t *testing.T) { roundTrip(t, []float64{-1.5, 0, 0.25, 1e300}) })
	t.Run("c64", func(t *testing.T) {
		roundTrip(t, []complex64{complex(1, -2), 0, complex(0.5, 3), complex(-4, 0)})
	})
	t.Run("u16", func(t *testing.T) { roundTrip(t, []uint16{0, 4095, 4096, 65535}) })
	t.Run("u32", func(t *testing.T) { roundTrip(t, []uint32{0, 1, 2, 4294967295}) })
	t.Run("i64", func(t *testing.T) { roundTrip(t, []int64{-1 << 40, -1, 0, 1 << 40}) })
	t.Run("u64", func(t *testing.T) { roundTrip(t, []uint64{0, 1, 2, 1 << 63}) })
}

func TestEncodeDoesNotMutateCaller(t *testing.T) {
	h := NewHeader()
	h.Set("description", StringValue("untouched"))

	c, err := NewCube(1, 1, 1, []uint8{9})
	require.NoError(t, err)

	_, _, err = Encode(h, c, []float64{500})
	require.NoError(t, err)

	assert.Equal(t, []string{"description"}, h.Keys())
	assert.False(t, h.Has("wavelength"))
}

func TestNewCubeValidation(t *testing.T) {
	_, err := NewCube(0, 2, 2, []uint8{})
	assert.Error(t, err)

	_, err = NewCube(2, 2, 2, []uint8{1, 2, 3})
	assert.Error(t, err)
}

func TestCubeFloat64AtBounds(t *testing.T) {
	c, err := NewCube(1, 1, 1, []uint8{5})
	require.NoError(t, err)

	_, err = c.Float64At(1, 0, 0)
	assert.Error(t, err)
	_, err = c.Float64At(0, 0, -1)
	assert.Error(t, err)
}

func ExampleDecode() {
	headerText := []byte("ENVI\n" +
		"samples = 2\nlines = 2\nbands = 1\n" +
		"data type = 1\nbyte order = 0\ninterleave = bsq\n")
	raw := []byte{10, 20, 30, 40}

	cube, _, _, err := Decode(headerText, raw, false)
	if err != nil {
		panic(err)
	}
	lines, samples, bands := cube.Shape()
	fmt.Println(lines, samples, bands)
	v, _ := cube.Float64At(1, 1, 0)
	fmt.Println(v)
	// Output:
	// 2 2 1
	// 40
}
