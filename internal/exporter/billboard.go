package exporter

import (
	"strconv"

	"tidyprep/internal/billboard"
)

// Default output file names expected by the tutorial notebook
const (
	SongsFileName = "billboard_songs.csv"
	RanksFileName = "billboard_ranks.csv"
)

// rankDateLayout is how derived calendar dates appear in the output
const rankDateLayout = "2006-01-02"

// BillboardExporter writes the two tidy billboard tables
type BillboardExporter struct {
	csv *CSVWriter
}

// NewBillboardExporter creates a billboard exporter on top of a CSV writer
func NewBillboardExporter(csv *CSVWriter) *BillboardExporter {
	return &BillboardExporter{csv: csv}
}

// ExportSongs writes the songs table: one row per song, source order.
func (e *BillboardExporter) ExportSongs(songs []billboard.Song, filePath string) error {
	records := make([][]string, 0, len(songs))
	for _, s := range songs {
		records = append(records, []string{
			strconv.Itoa(s.ID),
			s.Artist,
			s.Track,
			s.Duration,
			s.Genre,
		})
	}

	return e.csv.WriteSimpleCSV(filePath, []string{"id", "artist", "track", "time", "genre"}, records)
}

// ExportRanks writes the ranks table: one row per observation, already
// sorted by (id, date) by the reshape.
func (e *BillboardExporter) ExportRanks(obs []billboard.RankObservation, filePath string) error {
	records := make([][]string, 0, len(obs))
	for _, o := range obs {
		records = append(records, []string{
			strconv.Itoa(o.ID),
			o.Date.Format(rankDateLayout),
			strconv.Itoa(o.Rank),
		})
	}

	return e.csv.WriteSimpleCSV(filePath, []string{"id", "date", "rank"}, records)
}
