package generator

import "github.com/sirupsen/logrus"

// Options configures puzzle generation behavior.
type Options struct {
	Size        int   // Board dimension n
	Seed        int64 // Seed for reproducible puzzles (0 = random)
	MaxAttempts int   // Random draws per tree before falling back to a sweep
	// Logger receives debug output. nil means logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// DefaultOptions returns standard generator options.
func DefaultOptions(size int) *Options {
	return &Options{
		Size:        size,
		Seed:        0,
		MaxAttempts: DefaultMaxAttempts,
		Logger:      nil,
	}
}
