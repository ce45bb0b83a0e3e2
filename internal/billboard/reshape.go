package billboard

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// weekLabelRe matches the source's week column names, e.g. "x1st.week",
// "x22nd.week", "x63rd.week", "x76th.week". The label convention is
// validated explicitly instead of sliced by position, so a schema change
// upstream fails loudly.
var weekLabelRe = regexp.MustCompile(`^x(\d+)(?:st|nd|rd|th)\.week$`)

// ParseWeekLabel extracts the 1-based week number from a week column label.
func ParseWeekLabel(label string) (int, error) {
	m := weekLabelRe.FindStringSubmatch(label)
	if m == nil {
		return 0, fmt.Errorf("unrecognized week column label %q", label)
	}
	week, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("invalid week number in label %q: %w", label, err)
	}
	if week < 1 {
		return 0, fmt.Errorf("week number must be at least 1 in label %q", label)
	}
	return week, nil
}

// Songs projects the static song attributes, one Song per source row,
// in source order.
func Songs(t *WideTable) []Song {
	songs := make([]Song, 0, len(t.Rows))
	for _, row := range t.Rows {
		songs = append(songs, Song{
			ID:       row.ID,
			Artist:   row.Artist,
			Track:    row.Track,
			Duration: row.Duration,
			Genre:    row.Genre,
		})
	}
	return songs
}

// Ranks melts the wide rank matrix into tidy observations:
// each non-empty (row, week) cell becomes one row with a derived calendar
// date of entry date + 7 days x (week - 1), so week 1 lands exactly on the
// entry date. Empty cells are skipped; a non-integer rank aborts. The
// result is sorted ascending by (id, date) with a stable sort, so equal
// keys keep their melt order.
func Ranks(t *WideTable) ([]RankObservation, error) {
	weeks := make([]int, len(t.WeekLabels))
	for i, label := range t.WeekLabels {
		week, err := ParseWeekLabel(label)
		if err != nil {
			return nil, err
		}
		weeks[i] = week
	}

	var obs []RankObservation
	for _, row := range t.Rows {
		for i, cell := range row.Cells {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			rank, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("song %d, column %s: non-integer rank %q: %w",
					row.ID, t.WeekLabels[i], cell, err)
			}
			obs = append(obs, RankObservation{
				ID:   row.ID,
				Date: row.Entered.AddDate(0, 0, 7*(weeks[i]-1)),
				Rank: rank,
			})
		}
	}

	sort.SliceStable(obs, func(i, j int) bool {
		if obs[i].ID != obs[j].ID {
			return obs[i].ID < obs[j].ID
		}
		return obs[i].Date.Before(obs[j].Date)
	})

	return obs, nil
}
