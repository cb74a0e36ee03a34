// Package file provides a file-backed data source for the di package.
//
// The Fetcher validates its path at construction time (the file must exist
// and not be a directory), reads the file once on first use, and serves
// copies of the cached contents afterwards.
package file
