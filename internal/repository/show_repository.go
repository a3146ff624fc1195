package repository

import (
	"context"
	"database/sql"
	"fmt"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

type showRepository struct {
	db *sql.DB
}

func NewShowRepository(db *sql.DB) interfaces.ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	query := `INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &interfaces.PersistenceError{Op: "create show", Err: err}
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, query, show.VenueID, show.ArtistID, show.StartTime).
		Scan(&show.ID, &show.CreatedAt)
	if err != nil {
		return &interfaces.PersistenceError{Op: "create show", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &interfaces.PersistenceError{Op: "create show", Err: err}
	}
	return nil
}

func (r *showRepository) ListWithNames(ctx context.Context, upcomingOnly bool) ([]models.ShowListingRow, error) {
	query := `SELECT s.venue_id, v.name AS venue_name,
			s.artist_id, a.name AS artist_name, a.image_link AS artist_image_link,
			s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id`
	if upcomingOnly {
		query += ` WHERE s.start_time > NOW()`
	}
	query += ` ORDER BY s.start_time`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	var listings []models.ShowListingRow
	for rows.Next() {
		var row models.ShowListingRow
		if err := rows.Scan(
			&row.VenueID, &row.VenueName, &row.ArtistID,
			&row.ArtistName, &row.ArtistImageLink, &row.StartTime,
		); err != nil {
			return nil, fmt.Errorf("scan show listing: %w", err)
		}
		listings = append(listings, row)
	}
	return listings, rows.Err()
}

func (r *showRepository) ForVenue(ctx context.Context, venueID int) ([]models.ShowWithArtist, error) {
	query := `SELECT s.id, s.venue_id, s.artist_id, s.start_time,
			a.name AS artist_name, a.image_link AS artist_image_link
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.start_time`
	return r.queryShowsWithArtist(ctx, "shows for venue", query, venueID)
}

func (r *showRepository) ForArtist(ctx context.Context, artistID int) ([]models.ShowWithArtist, error) {
	query := `SELECT s.id, s.venue_id, s.artist_id, s.start_time,
			a.name AS artist_name, a.image_link AS artist_image_link
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.artist_id = $1
		ORDER BY s.start_time`
	return r.queryShowsWithArtist(ctx, "shows for artist", query, artistID)
}

func (r *showRepository) queryShowsWithArtist(ctx context.Context, op, query string, args ...any) ([]models.ShowWithArtist, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var shows []models.ShowWithArtist
	for rows.Next() {
		var show models.ShowWithArtist
		if err := rows.Scan(
			&show.ID, &show.VenueID, &show.ArtistID, &show.StartTime,
			&show.ArtistName, &show.ArtistImageLink,
		); err != nil {
			return nil, fmt.Errorf("%s: scan show: %w", op, err)
		}
		shows = append(shows, show)
	}
	return shows, rows.Err()
}
