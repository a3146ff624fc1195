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

type venueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) interfaces.VenueRepository {
	return &venueRepository{db: db}
}

const venueColumns = `id, name, city, state, address, COALESCE(phone, ''), genres,
	image_link, facebook_link, website_link, seeking_talent, seeking_description,
	created_at, updated_at`

func scanVenue(row interface{ Scan(...any) error }) (*models.Venue, error) {
	var venue models.Venue
	err := row.Scan(
		&venue.ID, &venue.Name, &venue.City, &venue.State, &venue.Address,
		&venue.Phone, pq.Array(&venue.Genres), &venue.ImageLink,
		&venue.FacebookLink, &venue.WebsiteLink, &venue.SeekingTalent,
		&venue.SeekingDescription, &venue.CreatedAt, &venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	genres := venue.Genres
	if genres == nil {
		genres = []string{}
	}

	query := `INSERT INTO venues (
			name, city, state, address, phone, genres,
			image_link, facebook_link, website_link,
			seeking_talent, seeking_description, created_at, updated_at
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &interfaces.PersistenceError{Op: "create venue", Err: err}
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	err = tx.QueryRowContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		pq.Array(genres), venue.ImageLink, venue.FacebookLink,
		venue.WebsiteLink, venue.SeekingTalent, venue.SeekingDescription,
		now, now,
	).Scan(&venue.ID)
	if err != nil {
		return &interfaces.PersistenceError{Op: "create venue", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &interfaces.PersistenceError{Op: "create venue", Err: err}
	}

	venue.CreatedAt = now
	venue.UpdatedAt = now
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("get venue by id: %w", err)
	}
	return venue, nil
}

func (r *venueRepository) List(ctx context.Context) ([]models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`
	return r.queryVenues(ctx, "list venues", query)
}

func (r *venueRepository) DistinctCityStates(ctx context.Context) ([]models.CityState, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT city, state FROM venues`)
	if err != nil {
		return nil, fmt.Errorf("distinct city/states: %w", err)
	}
	defer rows.Close()

	var pairs []models.CityState
	for rows.Next() {
		var cs models.CityState
		if err := rows.Scan(&cs.City, &cs.State); err != nil {
			return nil, fmt.Errorf("scan city/state: %w", err)
		}
		pairs = append(pairs, cs)
	}
	return pairs, rows.Err()
}

func (r *venueRepository) ListByCityState(ctx context.Context, city, state string) ([]models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE city = $1 AND state = $2 ORDER BY id`
	return r.queryVenues(ctx, "list venues by city/state", query, city, state)
}

// SearchByName matches case-insensitively on a substring of the name. An
// empty term expands to '%%' and so matches every venue.
func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE name ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryVenues(ctx, "search venues", query, term)
}

func (r *venueRepository) queryVenues(ctx context.Context, op, query string, args ...any) ([]models.Venue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan venue: %w", op, err)
		}
		venues = append(venues, *venue)
	}
	return venues, rows.Err()
}

func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	query := `UPDATE venues SET
			name = $1, city = $2, state = $3, address = $4, phone = NULLIF($5, ''),
			genres = $6, image_link = $7, facebook_link = $8, website_link = $9,
			seeking_talent = $10, seeking_description = $11, updated_at = $12
		WHERE id = $13`

	genres := venue.Genres
	if genres == nil {
		genres = []string{}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &interfaces.PersistenceError{Op: "update venue", Err: err}
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		pq.Array(genres), venue.ImageLink, venue.FacebookLink,
		venue.WebsiteLink, venue.SeekingTalent, venue.SeekingDescription,
		now, venue.ID,
	)
	if err != nil {
		return &interfaces.PersistenceError{Op: "update venue", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &interfaces.PersistenceError{Op: "update venue", Err: err}
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return &interfaces.PersistenceError{Op: "update venue", Err: err}
	}

	venue.UpdatedAt = now
	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &interfaces.PersistenceError{Op: "delete venue", Err: err}
	}
	defer tx.Rollback()

	var showCount int64
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = $1`, id).Scan(&showCount)
	if err != nil {
		return &interfaces.PersistenceError{Op: "delete venue", Err: err}
	}
	if showCount > 0 {
		return &interfaces.DeletionBlockedError{
			Resource: "venue",
			References: map[string]int64{
				"shows": showCount,
			},
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return &interfaces.PersistenceError{Op: "delete venue", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &interfaces.PersistenceError{Op: "delete venue", Err: err}
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return &interfaces.PersistenceError{Op: "delete venue", Err: err}
	}
	return nil
}
