package interfaces

import (
	"context"

	"fyyur/internal/models"
)

// VenueRepository reads and writes venues. Lookups that find no row
// return sql.ErrNoRows; write failures return *PersistenceError with the
// transaction rolled back.
type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	List(ctx context.Context) ([]models.Venue, error)
	DistinctCityStates(ctx context.Context) ([]models.CityState, error)
	ListByCityState(ctx context.Context, city, state string) ([]models.Venue, error)
	// SearchByName matches the name case-insensitively against a
	// substring; an empty term matches every venue.
	SearchByName(ctx context.Context, term string) ([]models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	// Delete returns *DeletionBlockedError while shows still reference
	// the venue.
	Delete(ctx context.Context, id int) error
}
