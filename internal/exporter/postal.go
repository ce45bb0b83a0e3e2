package exporter

import (
	"tidyprep/internal/postal"
)

// PostalFileName is the default output file name for postal codes
const PostalFileName = "postal_codes.csv"

// PostalExporter writes the postal-code table
type PostalExporter struct {
	csv *CSVWriter
}

// NewPostalExporter creates a postal exporter on top of a CSV writer
func NewPostalExporter(csv *CSVWriter) *PostalExporter {
	return &PostalExporter{csv: csv}
}

// ExportRecords streams the postal records to CSV, dropping the accuracy
// column. Row order follows the source file.
func (e *PostalExporter) ExportRecords(records []postal.Record, filePath string) error {
	stream, err := e.csv.CreateStreamWriter(filePath, postal.Header())
	if err != nil {
		return err
	}

	for _, r := range records {
		if err := stream.WriteRecord(r.Fields()); err != nil {
			stream.Close()
			return err
		}
	}

	return stream.Close()
}
