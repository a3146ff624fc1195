package models

import "time"

type Show struct {
	ID        int       `json:"id" db:"id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateShowRequest struct {
	VenueID   int    `json:"venue_id" validate:"required"`
	ArtistID  int    `json:"artist_id" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
}

// ShowWithArtist is a show row joined with its artist, so past/upcoming
// classification can project the artist fields without further queries.
type ShowWithArtist struct {
	ID              int       `db:"id"`
	VenueID         int       `db:"venue_id"`
	ArtistID        int       `db:"artist_id"`
	StartTime       time.Time `db:"start_time"`
	ArtistName      string    `db:"artist_name"`
	ArtistImageLink string    `db:"artist_image_link"`
}

// ShowView is the display projection of a classified show.
type ShowView struct {
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ShowListingRow is a show joined with both parents for the shows page.
type ShowListingRow struct {
	VenueID         int       `db:"venue_id"`
	VenueName       string    `db:"venue_name"`
	ArtistID        int       `db:"artist_id"`
	ArtistName      string    `db:"artist_name"`
	ArtistImageLink string    `db:"artist_image_link"`
	StartTime       time.Time `db:"start_time"`
}

// ShowListing is the serialized form of a ShowListingRow.
type ShowListing struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
