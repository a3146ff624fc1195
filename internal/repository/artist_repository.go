package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

type artistRepository struct {
	db *sql.DB
}

func NewArtistRepository(db *sql.DB) interfaces.ArtistRepository {
	return &artistRepository{db: db}
}

const artistColumns = `id, name, city, state, COALESCE(phone, ''), genres,
	image_link, facebook_link, website_link, seeking_venue, seeking_description,
	created_at, updated_at`

func scanArtist(row interface{ Scan(...any) error }) (*models.Artist, error) {
	var artist models.Artist
	err := row.Scan(
		&artist.ID, &artist.Name, &artist.City, &artist.State, &artist.Phone,
		pq.Array(&artist.Genres), &artist.ImageLink, &artist.FacebookLink,
		&artist.WebsiteLink, &artist.SeekingVenue, &artist.SeekingDescription,
		&artist.CreatedAt, &artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	genres := artist.Genres
	if genres == nil {
		genres = []string{}
	}

	query := `INSERT INTO artists (
			name, city, state, phone, genres,
			image_link, facebook_link, website_link,
			seeking_venue, seeking_description, created_at, updated_at
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &interfaces.PersistenceError{Op: "create artist", Err: err}
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	err = tx.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone,
		pq.Array(genres), artist.ImageLink, artist.FacebookLink,
		artist.WebsiteLink, artist.SeekingVenue, artist.SeekingDescription,
		now, now,
	).Scan(&artist.ID)
	if err != nil {
		return &interfaces.PersistenceError{Op: "create artist", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &interfaces.PersistenceError{Op: "create artist", Err: err}
	}

	artist.CreatedAt = now
	artist.UpdatedAt = now
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("get artist by id: %w", err)
	}
	return artist, nil
}

func (r *artistRepository) List(ctx context.Context) ([]models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY id`
	return r.queryArtists(ctx, "list artists", query)
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE name ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryArtists(ctx, "search artists", query, term)
}

func (r *artistRepository) queryArtists(ctx context.Context, op, query string, args ...any) ([]models.Artist, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan artist: %w", op, err)
		}
		artists = append(artists, *artist)
	}
	return artists, rows.Err()
}

func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	query := `UPDATE artists SET
			name = $1, city = $2, state = $3, phone = NULLIF($4, ''),
			genres = $5, image_link = $6, facebook_link = $7, website_link = $8,
			seeking_venue = $9, seeking_description = $10, updated_at = $11
		WHERE id = $12`

	genres := artist.Genres
	if genres == nil {
		genres = []string{}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &interfaces.PersistenceError{Op: "update artist", Err: err}
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone,
		pq.Array(genres), artist.ImageLink, artist.FacebookLink,
		artist.WebsiteLink, artist.SeekingVenue, artist.SeekingDescription,
		now, artist.ID,
	)
	if err != nil {
		return &interfaces.PersistenceError{Op: "update artist", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &interfaces.PersistenceError{Op: "update artist", Err: err}
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return &interfaces.PersistenceError{Op: "update artist", Err: err}
	}

	artist.UpdatedAt = now
	return nil
}
