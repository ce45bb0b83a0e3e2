package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidyprep/internal/postal"
)

func TestPostalExporter_ExportRecords(t *testing.T) {
	writer, tempDir := setupTestEnv(t)
	pe := NewPostalExporter(writer)

	records := []postal.Record{
		{
			CountryCode: "PL", PostalCode: "00-001", PlaceName: "Warszawa",
			Province: "Mazowieckie", ProvinceCode: "78",
			District: "Warszawa", DistrictCode: "1465",
			Municipality: "Warszawa", MunicipalityCode: "146501",
			Latitude: "52.2394", Longitude: "21.0362", Accuracy: "4",
		},
	}

	require.NoError(t, pe.ExportRecords(records, PostalFileName))

	f, err := os.Open(filepath.Join(tempDir, PostalFileName))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Output has one column fewer than the source and no accuracy anywhere
	assert.Len(t, rows[0], postal.SourceColumnCount-1)
	assert.NotContains(t, rows[0], "accuracy")
	assert.Equal(t, postal.Header(), rows[0])
	assert.Equal(t, records[0].Fields(), rows[1])
}

func TestPostalExporter_EmptyInput(t *testing.T) {
	writer, tempDir := setupTestEnv(t)
	pe := NewPostalExporter(writer)

	require.NoError(t, pe.ExportRecords(nil, PostalFileName))

	content := readFile(t, filepath.Join(tempDir, PostalFileName))
	assert.Equal(t, "country,postal_code,name,province,province_code,district,district_code,municipality,municipality_code,latitude,longitude\n", content)
}
