// Package shows classifies a venue's or artist's shows into past and
// upcoming buckets relative to a reference time.
package shows

import (
	"time"

	"fyyur/internal/models"
)

// StartTimeLayout is the display format for show start times.
const StartTimeLayout = "Mon Jan 02, 2006 03:04PM"

func FormatStartTime(t time.Time) string {
	return t.Format(StartTimeLayout)
}

// Partition splits rows into past and upcoming relative to now. The
// comparisons are strict on both sides: a show starting exactly at now
// lands in neither bucket.
func Partition(rows []models.ShowWithArtist, now time.Time) (past, upcoming []models.ShowView) {
	for _, s := range rows {
		view := models.ShowView{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       FormatStartTime(s.StartTime),
		}
		switch {
		case s.StartTime.Before(now):
			past = append(past, view)
		case s.StartTime.After(now):
			upcoming = append(upcoming, view)
		}
	}
	return past, upcoming
}

// NumUpcoming is the length of the upcoming bucket. Counts are always
// derived from the bucket itself so count and list cannot drift apart.
func NumUpcoming(rows []models.ShowWithArtist, now time.Time) int {
	_, upcoming := Partition(rows, now)
	return len(upcoming)
}
