package envi

// ReadOption configures the file- and archive-level read entry points.
type ReadOption func(*readOptions)

type readOptions struct {
	dataFile  string
	normalize bool
}

func defaultReadOptions() *readOptions {
	return &readOptions{normalize: true}
}

// WithDataFile bypasses raw-companion probing with an explicit path (or,
// for ReadZip, an explicit archive entry name).
func WithDataFile(path string) ReadOption {
	return func(o *readOptions) { o.dataFile = path }
}

// WithNormalize toggles reflectance normalization of the decoded cube.
// The default is on.
func WithNormalize(enabled bool) ReadOption {
	return func(o *readOptions) { o.normalize = enabled }
}

// WriteOption configures WriteFile.
type WriteOption func(*writeOptions)

type writeOptions struct {
	dataFile string
}

func defaultWriteOptions() *writeOptions {
	return &writeOptions{}
}

// WithRawFile sets an explicit raw data path instead of the default
// header path with a .dat extension.
func WithRawFile(path string) WriteOption {
	return func(o *writeOptions) { o.dataFile = path }
}
