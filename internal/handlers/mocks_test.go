package handlers

import (
	"context"
	"database/sql"
	"strings"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

type mockVenueRepo struct {
	venues    []models.Venue
	createErr error
	updateErr error
	deleteErr error
}

var _ interfaces.VenueRepository = (*mockVenueRepo)(nil)

func (m *mockVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	if m.createErr != nil {
		return m.createErr
	}
	venue.ID = len(m.venues) + 1
	m.venues = append(m.venues, *venue)
	return nil
}

func (m *mockVenueRepo) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	for i := range m.venues {
		if m.venues[i].ID == id {
			venue := m.venues[i]
			return &venue, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockVenueRepo) List(ctx context.Context) ([]models.Venue, error) {
	return m.venues, nil
}

func (m *mockVenueRepo) DistinctCityStates(ctx context.Context) ([]models.CityState, error) {
	var pairs []models.CityState
	seen := map[models.CityState]bool{}
	for _, venue := range m.venues {
		pair := models.CityState{City: venue.City, State: venue.State}
		if !seen[pair] {
			seen[pair] = true
			pairs = append(pairs, pair)
		}
	}
	return pairs, nil
}

func (m *mockVenueRepo) ListByCityState(ctx context.Context, city, state string) ([]models.Venue, error) {
	var out []models.Venue
	for _, venue := range m.venues {
		if venue.City == city && venue.State == state {
			out = append(out, venue)
		}
	}
	return out, nil
}

func (m *mockVenueRepo) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	var out []models.Venue
	for _, venue := range m.venues {
		if strings.Contains(strings.ToLower(venue.Name), strings.ToLower(term)) {
			out = append(out, venue)
		}
	}
	return out, nil
}

func (m *mockVenueRepo) Update(ctx context.Context, venue *models.Venue) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.venues {
		if m.venues[i].ID == venue.ID {
			m.venues[i] = *venue
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *mockVenueRepo) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i := range m.venues {
		if m.venues[i].ID == id {
			m.venues = append(m.venues[:i], m.venues[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type mockArtistRepo struct {
	artists   []models.Artist
	createErr error
	updateErr error
}

var _ interfaces.ArtistRepository = (*mockArtistRepo)(nil)

func (m *mockArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	if m.createErr != nil {
		return m.createErr
	}
	artist.ID = len(m.artists) + 1
	m.artists = append(m.artists, *artist)
	return nil
}

func (m *mockArtistRepo) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	for i := range m.artists {
		if m.artists[i].ID == id {
			artist := m.artists[i]
			return &artist, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockArtistRepo) List(ctx context.Context) ([]models.Artist, error) {
	return m.artists, nil
}

func (m *mockArtistRepo) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	var out []models.Artist
	for _, artist := range m.artists {
		if strings.Contains(strings.ToLower(artist.Name), strings.ToLower(term)) {
			out = append(out, artist)
		}
	}
	return out, nil
}

func (m *mockArtistRepo) Update(ctx context.Context, artist *models.Artist) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.artists {
		if m.artists[i].ID == artist.ID {
			m.artists[i] = *artist
			return nil
		}
	}
	return sql.ErrNoRows
}

type mockShowRepo struct {
	rows             []models.ShowWithArtist
	listRows         []models.ShowListingRow
	createErr        error
	lastUpcomingOnly bool
}

var _ interfaces.ShowRepository = (*mockShowRepo)(nil)

func (m *mockShowRepo) Create(ctx context.Context, show *models.Show) error {
	if m.createErr != nil {
		return m.createErr
	}
	show.ID = len(m.rows) + 1
	return nil
}

func (m *mockShowRepo) ListWithNames(ctx context.Context, upcomingOnly bool) ([]models.ShowListingRow, error) {
	m.lastUpcomingOnly = upcomingOnly
	return m.listRows, nil
}

func (m *mockShowRepo) ForVenue(ctx context.Context, venueID int) ([]models.ShowWithArtist, error) {
	var out []models.ShowWithArtist
	for _, row := range m.rows {
		if row.VenueID == venueID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockShowRepo) ForArtist(ctx context.Context, artistID int) ([]models.ShowWithArtist, error) {
	var out []models.ShowWithArtist
	for _, row := range m.rows {
		if row.ArtistID == artistID {
			out = append(out, row)
		}
	}
	return out, nil
}
