// Package fetch downloads dataset source files.
//
// It provides a thin HTTP client with a timeout and user agent from
// configuration, and a helper for extracting a single member from an
// in-memory ZIP archive (the GeoNames postal dumps ship as ZIP files
// containing one text file per country).
package fetch
