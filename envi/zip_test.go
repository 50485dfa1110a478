package envi

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, entries map[string][]byte) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return zr
}

func TestReadZip(t *testing.T) {
	zr := buildZip(t, map[string][]byte{
		"capture/scene.hdr": []byte(smallHeader),
		"capture/scene.raw": {10, 20, 30, 40},
	})

	c, _, _, err := ReadZip(zr, "capture/scene.hdr", WithNormalize(false))
	require.NoError(t, err)

	data, ok := CubeData[uint8](c)
	require.True(t, ok)
	assert.Equal(t, []uint8{10, 20, 30, 40}, data)
}

func TestReadZipDatFallback(t *testing.T) {
	zr := buildZip(t, map[string][]byte{
		"scene.hdr": []byte(smallHeader),
		"scene.dat": {1, 2, 3, 4},
	})

	c, _, _, err := ReadZip(zr, "scene.hdr", WithNormalize(false))
	require.NoError(t, err)

	data, _ := CubeData[uint8](c)
	assert.Equal(t, []uint8{1, 2, 3, 4}, data)
}

func TestReadZipPrefersRaw(t *testing.T) {
	zr := buildZip(t, map[string][]byte{
		"scene.hdr": []byte(smallHeader),
		"scene.raw": {1, 2, 3, 4},
		"scene.dat": {9, 9, 9, 9},
	})

	c, _, _, err := ReadZip(zr, "scene.hdr", WithNormalize(false))
	require.NoError(t, err)

	data, _ := CubeData[uint8](c)
	assert.Equal(t, []uint8{1, 2, 3, 4}, data)
}

func TestReadZipExplicitEntry(t *testing.T) {
	zr := buildZip(t, map[string][]byte{
		"scene.hdr":  []byte(smallHeader),
		"scene.raw":  {9, 9, 9, 9},
		"frames.bin": {5, 6, 7, 8},
	})

	c, _, _, err := ReadZip(zr, "scene.hdr", WithDataFile("frames.bin"), WithNormalize(false))
	require.NoError(t, err)

	data, _ := CubeData[uint8](c)
	assert.Equal(t, []uint8{5, 6, 7, 8}, data)
}

func TestReadZipMissingDataFile(t *testing.T) {
	zr := buildZip(t, map[string][]byte{
		"scene.hdr": []byte(smallHeader),
		"scene.img": {1, 2, 3, 4}, // .img is not probed inside archives
	})

	_, _, _, err := ReadZip(zr, "scene.hdr")
	assert.ErrorIs(t, err, ErrMissingDataFile)
}

func TestReadZipMissingHeader(t *testing.T) {
	zr := buildZip(t, map[string][]byte{
		"scene.raw": {1, 2, 3, 4},
	})

	_, _, _, err := ReadZip(zr, "scene.hdr")
	assert.Error(t, err)
}
