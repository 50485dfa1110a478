package envi

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// zipRawSuffixes: inside an archive only .raw and .dat are probed.
var zipRawSuffixes = []string{".raw", ".dat"}

// ReadZip reads an ENVI image whose header and raw file live inside a
// zip archive, addressed by the header's entry name. The raw companion
// is probed with .raw then .dat unless WithDataFile names an entry.
func ReadZip(zr *zip.Reader, headerName string, opts ...ReadOption) (*Cube, []float64, *Header, error) {
	o := defaultReadOptions()
	for _, opt := range opts {
		opt(o)
	}

	headerText, err := readZipEntry(zr, headerName)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading header entry: %w", err)
	}

	rawName := o.dataFile
	if rawName == "" {
		for _, suffix := range zipRawSuffixes {
			if candidate := withSuffix(headerName, suffix); zipHas(zr, candidate) {
				rawName = candidate
				break
			}
		}
		if rawName == "" {
			return nil, nil, nil, fmt.Errorf("no %s entry for %s: %w",
				strings.Join(zipRawSuffixes, "/"), headerName, ErrMissingDataFile)
		}
	}
	raw, err := readZipEntry(zr, rawName)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading raw entry: %w", err)
	}

	return Decode(headerText, raw, o.normalize)
}

func zipHas(zr *zip.Reader, name string) bool {
	for _, f := range zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

func readZipEntry(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
