package postal

import (
	"encoding/csv"
	"fmt"
	"io"
)

// SourceColumnCount is the fixed number of tab-separated fields per line in
// a GeoNames postal dump.
const SourceColumnCount = 12

// Record is one postal-code line from a GeoNames country dump. All fields
// are kept as strings; latitude and longitude pass through unmodified so
// the output preserves the source formatting.
type Record struct {
	CountryCode      string
	PostalCode       string
	PlaceName        string
	Province         string
	ProvinceCode     string
	District         string
	DistrictCode     string
	Municipality     string
	MunicipalityCode string
	Latitude         string
	Longitude        string
	Accuracy         string
}

// Header returns the output CSV header. The accuracy column is dropped, so
// the output always has one column fewer than the source.
func Header() []string {
	return []string{
		"country",
		"postal_code",
		"name",
		"province",
		"province_code",
		"district",
		"district_code",
		"municipality",
		"municipality_code",
		"latitude",
		"longitude",
	}
}

// Fields returns the output projection of the record, in Header order.
func (r Record) Fields() []string {
	return []string{
		r.CountryCode,
		r.PostalCode,
		r.PlaceName,
		r.Province,
		r.ProvinceCode,
		r.District,
		r.DistrictCode,
		r.Municipality,
		r.MunicipalityCode,
		r.Latitude,
		r.Longitude,
	}
}

// Parse reads a GeoNames postal dump: headerless, tab-separated, exactly
// twelve fields per line. A line with the wrong field count fails the whole
// batch; there is no row-level recovery.
func Parse(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = SourceColumnCount
	// GeoNames place names may contain stray quote characters
	reader.LazyQuotes = true

	var records []Record
	line := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to parse postal line %d: %w", line, err)
		}

		records = append(records, Record{
			CountryCode:      fields[0],
			PostalCode:       fields[1],
			PlaceName:        fields[2],
			Province:         fields[3],
			ProvinceCode:     fields[4],
			District:         fields[5],
			DistrictCode:     fields[6],
			Municipality:     fields[7],
			MunicipalityCode: fields[8],
			Latitude:         fields[9],
			Longitude:        fields[10],
			Accuracy:         fields[11],
		})
	}

	return records, nil
}
