package envi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// rawSuffixes is the probe order for a header's raw companion file.
var rawSuffixes = []string{".raw", ".dat", ".img"}

// ReadFile reads an ENVI image given its header path. When no
// WithDataFile override is given, sibling files with the header's base
// name and extensions .raw, .dat, .img are probed in that order; none
// found fails with ErrMissingDataFile. Normalization is on by default;
// disable it with WithNormalize(false).
func ReadFile(headerPath string, opts ...ReadOption) (*Cube, []float64, *Header, error) {
	o := defaultReadOptions()
	for _, opt := range opts {
		opt(o)
	}

	headerText, err := os.ReadFile(headerPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading header file: %w", err)
	}

	dataPath := o.dataFile
	if dataPath == "" {
		if dataPath, err = probeRawFile(headerPath); err != nil {
			return nil, nil, nil, err
		}
	}
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading raw data file: %w", err)
	}

	return Decode(headerText, raw, o.normalize)
}

// WriteFile writes the header and cube to disk. The raw companion
// defaults to the header path with a .dat extension; override with
// WithRawFile. The returned header is the one actually written, with
// geometry and layout fields derived from the cube.
func WriteFile(headerPath string, h *Header, c *Cube, wavelengths []float64, opts ...WriteOption) (*Header, error) {
	o := defaultWriteOptions()
	for _, opt := range opts {
		opt(o)
	}
	dataPath := o.dataFile
	if dataPath == "" {
		dataPath = withSuffix(headerPath, ".dat")
	}

	hh := h.Clone()
	injectWavelengths(hh, wavelengths)
	raw, err := EncodeCube(hh, c)
	if err != nil {
		return nil, err
	}
	text, err := SerializeHeader(hh)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(headerPath, text, 0o644); err != nil {
		return nil, fmt.Errorf("writing header file: %w", err)
	}
	if err := os.WriteFile(dataPath, raw, 0o644); err != nil {
		return nil, fmt.Errorf("writing raw data file: %w", err)
	}
	return hh, nil
}

// probeRawFile locates the raw companion next to the header file.
func probeRawFile(headerPath string) (string, error) {
	for _, suffix := range rawSuffixes {
		candidate := withSuffix(headerPath, suffix)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no %s companion for %s: %w",
		strings.Join(rawSuffixes, "/"), headerPath, ErrMissingDataFile)
}

// withSuffix replaces the path's extension.
func withSuffix(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}
