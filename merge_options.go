package vecmerge

import (
	"fmt"
	"strings"

	"github.com/arloliu/vecmerge/internal/options"
	"github.com/arloliu/vecmerge/vec"
)

// MergeOption configures a single Merge call.
type MergeOption = options.Option[*mergeConfig]

// mergeConfig holds the merge settings controlled by MergeOption values.
type mergeConfig struct {
	extension         string
	keepPartialOutput bool
}

func newMergeConfig() *mergeConfig {
	return &mergeConfig{extension: vec.Extension}
}

// WithExtension overrides the file name suffix used to discover input
// archives. The suffix must start with a dot, e.g. ".vec".
func WithExtension(ext string) MergeOption {
	return options.New(func(c *mergeConfig) error {
		if !strings.HasPrefix(ext, ".") || len(ext) == 1 {
			return fmt.Errorf("invalid archive extension %q", ext)
		}
		c.extension = ext

		return nil
	})
}

// WithKeepPartialOutput disables the write-to-temp-then-rename strategy and
// writes directly to the destination path. On failure, whatever bytes were
// already written remain on disk. This matches the behavior of the classic
// mergevec tools this package replaces.
func WithKeepPartialOutput(keep bool) MergeOption {
	return options.NoError(func(c *mergeConfig) {
		c.keepPartialOutput = keep
	})
}
