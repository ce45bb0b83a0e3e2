package billboard

import "time"

// Song holds the static attributes of one charted song.
type Song struct {
	ID       int
	Artist   string
	Track    string
	Duration string // track length as mm:ss, source column "time"
	Genre    string
}

// RankObservation is one tidy rank row: the chart position of a song on one
// calendar date. Every observation's ID references a Song by convention; the
// link is not enforced.
type RankObservation struct {
	ID   int
	Date time.Time
	Rank int
}

// WideRow is one source row of the wide-format chart table: the song
// attributes plus one rank cell per week column. An empty cell means the
// song was off the chart that week.
type WideRow struct {
	ID       int
	Artist   string
	Track    string
	Duration string
	Genre    string
	Entered  time.Time
	Cells    []string // aligned with WideTable.WeekLabels
}

// WideTable is the parsed wide-format chart file. WeekLabels preserves the
// source column order, Rows the source row order.
type WideTable struct {
	WeekLabels []string
	Rows       []WideRow
}
