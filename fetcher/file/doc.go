// Package file provides a file-based DataFetcher for fieldpath.
//
// The document file is read once at construction time and cached, so every
// Fetch returns the same bytes regardless of later filesystem changes. That
// matches the lookup model: an Accessor is built over one immutable snapshot
// of the document.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/invoice.yml")()
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect directory paths.
package file
