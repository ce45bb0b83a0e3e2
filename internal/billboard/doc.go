// Package billboard parses and reshapes the Billboard 2000 chart dataset.
//
// The source file is wide: one row per song, one column per week the chart
// was observed, with the song's position as the cell value. The package
// splits it into two tidy tables following Wickham's tidy-data layout:
//
// Songs: one row per song with its static attributes
// {id, artist, track, time, genre}.
//
// Ranks: one row per (song, charted week) with a derived calendar date
// {id, date, rank}, sorted by (id, date).
//
// The two tables share the song id; referential integrity holds by
// construction but is not enforced anywhere downstream.
package billboard
