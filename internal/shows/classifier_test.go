package shows

import (
	"testing"
	"time"

	"fyyur/internal/models"
)

func showAt(artistID int, start time.Time) models.ShowWithArtist {
	return models.ShowWithArtist{
		ID:              artistID,
		VenueID:         1,
		ArtistID:        artistID,
		StartTime:       start,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.com/guns.jpg",
	}
}

func TestPartitionSplitsPastAndUpcoming(t *testing.T) {
	now := time.Date(2026, time.June, 15, 20, 0, 0, 0, time.UTC)
	rows := []models.ShowWithArtist{
		showAt(1, now.Add(-48*time.Hour)),
		showAt(2, now.Add(-time.Minute)),
		showAt(3, now.Add(time.Minute)),
		showAt(4, now.Add(72*time.Hour)),
	}

	past, upcoming := Partition(rows, now)

	if len(past) != 2 {
		t.Fatalf("expected 2 past shows, got %d", len(past))
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming shows, got %d", len(upcoming))
	}
	if past[0].ArtistID != 1 || past[1].ArtistID != 2 {
		t.Fatalf("unexpected past bucket: %+v", past)
	}
	if upcoming[0].ArtistID != 3 || upcoming[1].ArtistID != 4 {
		t.Fatalf("unexpected upcoming bucket: %+v", upcoming)
	}
}

func TestPartitionExcludesShowStartingExactlyNow(t *testing.T) {
	now := time.Date(2026, time.June, 15, 20, 0, 0, 0, time.UTC)
	rows := []models.ShowWithArtist{
		showAt(1, now.Add(-time.Hour)),
		showAt(2, now),
		showAt(3, now.Add(time.Hour)),
	}

	past, upcoming := Partition(rows, now)

	if len(past)+len(upcoming) != 2 {
		t.Fatalf("show at the boundary must land in neither bucket: past=%d upcoming=%d", len(past), len(upcoming))
	}
	for _, v := range append(past, upcoming...) {
		if v.ArtistID == 2 {
			t.Fatalf("boundary show leaked into a bucket: %+v", v)
		}
	}
}

func TestPartitionProjectsArtistFields(t *testing.T) {
	now := time.Now().UTC()
	start := time.Date(2026, time.September, 1, 21, 30, 0, 0, time.UTC)
	rows := []models.ShowWithArtist{showAt(7, start)}

	_, upcoming := Partition(rows, now.Add(-365*24*time.Hour))
	if len(upcoming) != 1 {
		t.Fatalf("expected 1 upcoming show, got %d", len(upcoming))
	}

	got := upcoming[0]
	if got.ArtistID != 7 {
		t.Errorf("artist_id: got %d, want 7", got.ArtistID)
	}
	if got.ArtistName != "Guns N Petals" {
		t.Errorf("artist_name: got %q", got.ArtistName)
	}
	if got.ArtistImageLink != "https://example.com/guns.jpg" {
		t.Errorf("artist_image_link: got %q", got.ArtistImageLink)
	}
	if got.StartTime != start.Format(StartTimeLayout) {
		t.Errorf("start_time: got %q, want %q", got.StartTime, start.Format(StartTimeLayout))
	}
}

func TestPartitionEmptyInput(t *testing.T) {
	past, upcoming := Partition(nil, time.Now())
	if len(past) != 0 || len(upcoming) != 0 {
		t.Fatalf("expected empty buckets, got past=%d upcoming=%d", len(past), len(upcoming))
	}
}

func TestNumUpcomingMatchesBucketLength(t *testing.T) {
	now := time.Date(2026, time.June, 15, 20, 0, 0, 0, time.UTC)
	rows := []models.ShowWithArtist{
		showAt(1, now.Add(-time.Hour)),
		showAt(2, now),
		showAt(3, now.Add(time.Hour)),
		showAt(4, now.Add(2*time.Hour)),
	}

	_, upcoming := Partition(rows, now)
	if got := NumUpcoming(rows, now); got != len(upcoming) {
		t.Fatalf("NumUpcoming=%d but upcoming bucket has %d", got, len(upcoming))
	}
	if got := NumUpcoming(rows, now); got != 2 {
		t.Fatalf("expected 2 upcoming, got %d", got)
	}
}
