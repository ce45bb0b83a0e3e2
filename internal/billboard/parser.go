package billboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/text/encoding/charmap"
)

// enteredDateLayout is the date format used by the source file
const enteredDateLayout = "2006-01-02"

// ParseWide reads the wide-format billboard chart CSV. The source is
// ISO-8859-1 encoded (artist names carry accented characters), so the
// reader is decoded before CSV parsing.
//
// Header columns are classified by name: the five attribute columns and
// date.entered are required, an id column is optional (row ordinals are
// assigned when it is absent), week columns are those matching the
// x<N><suffix>.week pattern, and anything else (year, date.peaked) is
// ignored. A missing required column aborts the run.
func ParseWide(r io.Reader) (*WideTable, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read billboard header: %w", err)
	}

	cols, err := classifyHeader(header)
	if err != nil {
		return nil, err
	}

	table := &WideTable{WeekLabels: cols.weekLabels}
	rowNum := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse billboard row %d: %w", rowNum+1, err)
		}

		row, err := cols.buildRow(fields, rowNum)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
		rowNum++
	}

	return table, nil
}

// columnMap holds the resolved positions of the source columns
type columnMap struct {
	id         int // -1 when the source has no id column
	artist     int
	track      int
	duration   int
	genre      int
	entered    int
	weekLabels []string
	weekIdx    []int
}

func classifyHeader(header []string) (*columnMap, error) {
	cols := &columnMap{id: -1, artist: -1, track: -1, duration: -1, genre: -1, entered: -1}

	for i, name := range header {
		switch name {
		case "id", "index":
			cols.id = i
		case "artist", "artist.inverted":
			cols.artist = i
		case "track":
			cols.track = i
		case "time":
			cols.duration = i
		case "genre":
			cols.genre = i
		case "date.entered", "date_entered":
			cols.entered = i
		default:
			if weekLabelRe.MatchString(name) {
				cols.weekLabels = append(cols.weekLabels, name)
				cols.weekIdx = append(cols.weekIdx, i)
			}
			// year, date.peaked and any other column are not needed
		}
	}

	required := map[string]int{
		"artist":       cols.artist,
		"track":        cols.track,
		"time":         cols.duration,
		"genre":        cols.genre,
		"date.entered": cols.entered,
	}
	for name, idx := range required {
		if idx < 0 {
			return nil, fmt.Errorf("billboard source is missing required column %q", name)
		}
	}

	return cols, nil
}

func (c *columnMap) buildRow(fields []string, ordinal int) (WideRow, error) {
	row := WideRow{
		Artist:   fields[c.artist],
		Track:    fields[c.track],
		Duration: fields[c.duration],
		Genre:    fields[c.genre],
	}

	if c.id >= 0 {
		id, err := strconv.Atoi(fields[c.id])
		if err != nil {
			return WideRow{}, fmt.Errorf("row %d: invalid song id %q: %w", ordinal+1, fields[c.id], err)
		}
		row.ID = id
	} else {
		row.ID = ordinal
	}

	entered, err := time.Parse(enteredDateLayout, fields[c.entered])
	if err != nil {
		return WideRow{}, fmt.Errorf("row %d: invalid entry date %q: %w", ordinal+1, fields[c.entered], err)
	}
	row.Entered = entered

	row.Cells = make([]string, len(c.weekIdx))
	for i, idx := range c.weekIdx {
		row.Cells[i] = fields[idx]
	}

	return row, nil
}
