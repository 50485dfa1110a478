package envi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderInsertionOrder(t *testing.T) {
	h := NewHeader()
	h.Set("samples", IntValue(2))
	h.Set("lines", IntValue(3))
	h.Set("bands", IntValue(4))

	assert.Equal(t, []string{"samples", "lines", "bands"}, h.Keys())
	assert.Equal(t, 3, h.Len())
}

func TestHeaderOverwriteKeepsPosition(t *testing.T) {
	h := NewHeader()
	h.Set("samples", IntValue(2))
	h.Set("lines", IntValue(3))
	h.Set("samples", IntValue(99))

	assert.Equal(t, []string{"samples", "lines"}, h.Keys())
	n, err := h.Int("samples")
	require.NoError(t, err)
	assert.Equal(t, 99, n)
}

func TestHeaderCaseInsensitiveAccess(t *testing.T) {
	h := NewHeader()
	h.Set("Sensor Type", StringValue("Specim IQ"))

	assert.True(t, h.Has("sensor type"))
	s, err := h.Str("SENSOR TYPE")
	require.NoError(t, err)
	assert.Equal(t, "Specim IQ", s)
}

func TestHeaderMissingField(t *testing.T) {
	h := NewHeader()
	_, err := h.Int("samples")
	assert.Error(t, err)
	_, err = h.Str("interleave")
	assert.Error(t, err)
	_, err = h.Floats("wavelength")
	assert.Error(t, err)
}

func TestHeaderKindMismatch(t *testing.T) {
	h := NewHeader()
	h.Set("samples", StringValue("many"))

	_, err := h.Int("samples")
	assert.Error(t, err)
}

func TestHeaderFloatsAcceptsScalar(t *testing.T) {
	h := NewHeader()
	h.Set("wavelength", FloatValue(550.5))

	wl, err := h.Floats("wavelength")
	require.NoError(t, err)
	assert.Equal(t, []float64{550.5}, wl)
}

func TestHeaderClone(t *testing.T) {
	h := NewHeader()
	h.Set("samples", IntValue(2))
	h.Set("wavelength", ListValue(FloatValue(1), FloatValue(2)))

	c := h.Clone()
	c.Set("samples", IntValue(5))
	c.Set("extra", StringValue("x"))

	n, err := h.Int("samples")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, h.Has("extra"))
	assert.Equal(t, []string{"samples", "wavelength"}, h.Keys())
}
