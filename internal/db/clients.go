package db

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/model"
)

// station_ids is derived from stations.client_id on every read; the list is
// never stored on the clients row itself.
const clientColumns = `
	id, name, email, company, website, logo,
	ARRAY(SELECT s.id FROM stations s WHERE s.client_id = clients.id ORDER BY s.id) AS station_ids,
	status, api_key, api_key_last_generated, created_at, updated_at`

func (s *pgStore) ListClients() ([]model.Client, error) {
	clients := []model.Client{}
	err := s.db.Select(&clients, `
		SELECT `+clientColumns+`
		FROM clients
		ORDER BY name ASC
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list clients")
		return nil, translateError(err)
	}
	return clients, nil
}

func (s *pgStore) GetClientByID(id int) (model.Client, error) {
	var client model.Client
	err := s.db.Get(&client, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE id = $1
		`, id)
	return client, translateError(err)
}

func (s *pgStore) GetClientByAPIKey(apiKey string) (model.Client, error) {
	var client model.Client
	err := s.db.Get(&client, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE api_key = $1
		`, apiKey)
	return client, translateError(err)
}

func (s *pgStore) CreateClient(name, email, company string, website, logo *string, status string) (model.Client, error) {
	var id int
	q := `
	INSERT INTO clients (name, email, company, website, logo, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	RETURNING id;`
	if err := s.db.Get(&id, q, name, email, company, website, logo, status); err != nil {
		log.Error().Err(err).Msg("failed to create client")
		return model.Client{}, translateError(err)
	}
	return s.GetClientByID(id)
}

func (s *pgStore) UpdateClient(id int, name, email, company, website, logo, status *string) (model.Client, error) {
	res, err := s.db.Exec(`
		UPDATE clients
		SET name = COALESCE($2, name),
		email = COALESCE($3, email),
		company = COALESCE($4, company),
		website = COALESCE($5, website),
		logo = COALESCE($6, logo),
		status = COALESCE($7, status),
		updated_at = now()
		WHERE id = $1
		`, id, name, email, company, website, logo, status)
	if err != nil {
		log.Error().Err(err).Int("client_id", id).Msg("failed to update client")
		return model.Client{}, translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Client{}, ErrNotFound
	}
	return s.GetClientByID(id)
}

func (s *pgStore) DeleteClient(id int) error {
	res, err := s.db.Exec(`DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("client_id", id).Msg("failed to delete client")
		return translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetClientAPIKey overwrites the client's API key. There is no rotation
// window: the previous key stops working immediately.
func (s *pgStore) SetClientAPIKey(id int, apiKey string, generatedAt time.Time) (model.Client, error) {
	res, err := s.db.Exec(`
		UPDATE clients
		SET api_key = $2,
		api_key_last_generated = $3,
		updated_at = now()
		WHERE id = $1
		`, id, apiKey, generatedAt)
	if err != nil {
		log.Error().Err(err).Int("client_id", id).Msg("failed to set client api key")
		return model.Client{}, translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Client{}, ErrNotFound
	}
	return s.GetClientByID(id)
}
