// Package errs defines the sentinel errors returned by vecmerge.
//
// Callers match against these with errors.Is; the returned errors are
// wrapped with contextual detail such as the offending file path.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize indicates the archive is too short to contain a
	// complete 12-byte header, or a decode was attempted on a byte slice of
	// the wrong length.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrNoInputFiles indicates the input directory contains no files with
	// the archive extension.
	ErrNoInputFiles = errors.New("no input files")

	// ErrSingleInputFile indicates the input directory contains exactly one
	// matching file. Merging requires at least two sources.
	ErrSingleInputFile = errors.New("cannot merge a single file")

	// ErrInconsistentRecordSize indicates an input declares a record size
	// different from the reference size established by the first input.
	ErrInconsistentRecordSize = errors.New("inconsistent record size")

	// ErrInvalidRecordSize indicates the first input declares a non-positive
	// record size, which would make the cross-file consistency check
	// meaningless.
	ErrInvalidRecordSize = errors.New("invalid record size")

	// ErrNotDirectory indicates the input path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)
