// Package exporter provides CSV export functionality for the prepared
// datasets.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// streaming, and an optional UTF-8 BOM for spreadsheet-bound exports.
// Dataset exports write plain text without a BOM.
//
// BillboardExporter: Writes the tidy songs and ranks tables derived from
// the wide chart file.
//
// PostalExporter: Streams GeoNames postal records to CSV with the accuracy
// column dropped.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(paths)
//	bb := exporter.NewBillboardExporter(writer)
//	err := bb.ExportSongs(songs, exporter.SongsFileName)
package exporter
