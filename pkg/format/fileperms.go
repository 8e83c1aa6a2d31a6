package format

import "io/fs"

// File permission constants used for files this tool creates.
const (
	// FilePublicRead is used for output files when no mode can be carried over (rw-r--r--)
	FilePublicRead fs.FileMode = 0644

	// FileUserReadWrite is for log files that may reveal token names (rw-------)
	FileUserReadWrite fs.FileMode = 0600
)
