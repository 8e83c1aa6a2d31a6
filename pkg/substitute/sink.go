package substitute

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/Lambdaspire/action-substitute-secrets-in-file/pkg/format"
)

// WriteOutput writes contents to path, replacing any existing file. An existing
// file keeps its permissions, a new one is created with mode.
func WriteOutput(path string, contents string, mode fs.FileMode) error {
	if mode == 0 {
		mode = format.FilePublicRead
	}

	// #nosec G306 - mode is taken from the input file
	if err := os.WriteFile(path, []byte(contents), mode); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileWrite, path, err)
	}
	return nil
}
