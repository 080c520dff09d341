package db

import (
	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/model"
)

func (s *pgStore) ListLocations() ([]model.Location, error) {
	locations := []model.Location{}
	err := s.db.Select(&locations, `
		SELECT id, name, code, country, city, timezone, created_at
		FROM locations
		ORDER BY name ASC
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list locations")
		return nil, translateError(err)
	}
	return locations, nil
}

func (s *pgStore) GetLocationByID(id int) (model.Location, error) {
	var location model.Location
	err := s.db.Get(&location, `
		SELECT id, name, code, country, city, timezone, created_at
		FROM locations
		WHERE id = $1
		`, id)
	return location, translateError(err)
}

func (s *pgStore) CreateLocation(name, code, country, city, timezone string) (model.Location, error) {
	var l model.Location
	q := `
	INSERT INTO locations (name, code, country, city, timezone, created_at)
	VALUES ($1, $2, $3, $4, $5, now())
	RETURNING id, name, code, country, city, timezone, created_at;`
	if err := s.db.Get(&l, q, name, code, country, city, timezone); err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to create location")
		return model.Location{}, translateError(err)
	}
	return l, nil
}

func (s *pgStore) UpdateLocation(id int, name, code, country, city, timezone *string) (model.Location, error) {
	var l model.Location
	err := s.db.Get(&l, `
		UPDATE locations
		SET name = COALESCE($2, name),
		code = COALESCE($3, code),
		country = COALESCE($4, country),
		city = COALESCE($5, city),
		timezone = COALESCE($6, timezone)
		WHERE id = $1
		RETURNING id, name, code, country, city, timezone, created_at
		`, id, name, code, country, city, timezone)
	if err != nil {
		log.Error().Err(err).Int("location_id", id).Msg("failed to update location")
		return model.Location{}, translateError(err)
	}
	return l, nil
}

func (s *pgStore) DeleteLocation(id int) error {
	res, err := s.db.Exec(`DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		// deleting a location that still has stations trips the FK restrict
		log.Error().Err(err).Int("location_id", id).Msg("failed to delete location")
		return translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
