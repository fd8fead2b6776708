package suppress

// Config defines parameters for Non-Maximum Suppression.
type Config struct {
	// ScoreThreshold is the exclusive minimum score: a candidate must
	// score strictly above it to be considered at all. The default of 0
	// excludes nothing with a positive score.
	ScoreThreshold float32

	// IoUThreshold is the exclusive overlap bound: a remaining candidate
	// survives an accepted box only while their IoU stays strictly below
	// it. At the default of 1.0 the epsilon-padded IoU of even two
	// identical boxes lands just under the threshold, so exact
	// duplicates are never fully suppressed at default settings. That is
	// a quirk of the original design and is preserved, not fixed.
	IoUThreshold float32

	// Workers is the number of goroutines suppressing classes
	// concurrently. Values below 2 run classes serially. Output is
	// identical either way.
	Workers int
}

// DefaultConfig returns the default suppression parameters: keep every
// positively scored box, suppress only near-duplicate overlaps, serial.
func DefaultConfig() *Config {
	return &Config{
		ScoreThreshold: 0.0,
		IoUThreshold:   1.0,
		Workers:        1,
	}
}
