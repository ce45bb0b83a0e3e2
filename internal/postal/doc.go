// Package postal parses GeoNames postal-code country dumps.
//
// A dump is a headerless tab-separated file with exactly twelve fields per
// line. Parsing keeps every value verbatim; the only transformation in the
// pipeline is dropping the trailing accuracy column on output.
package postal
