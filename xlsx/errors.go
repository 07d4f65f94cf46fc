package xlsx

import "errors"

// Error kinds returned by the decoder. Every failure aborts the whole
// decode; use errors.Is against these to tell the classes apart.
var (
	// ErrArchive reports a failure to open or read the package archive.
	ErrArchive = errors.New("cannot read package archive")

	// ErrFormat reports a structurally malformed package: a missing
	// required part, bad relationships, missing addresses, a wrong
	// declared string count, or an unknown sparse column.
	ErrFormat = errors.New("malformed spreadsheet package")

	// ErrValue reports cell text that does not fully parse as the type
	// the cell claims to hold.
	ErrValue = errors.New("malformed cell value")

	// ErrTooLarge reports a grid whose size cannot be allocated safely.
	ErrTooLarge = errors.New("worksheet grid too large")
)
