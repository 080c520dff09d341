package db

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/model"
)

const stationColumns = `
	id, name, location_id, website, status, omniplayer_url, client_id,
	client_secret, username, password,
	system_prompt, hourly_prompt_0, hourly_prompt_10, hourly_prompt_20,
	hourly_prompt_30, hourly_prompt_40, hourly_prompt_50, hourly_prompt_55,
	news_prompt, weather_prompt, traffic_prompt,
	created_at, updated_at`

const promptColumns = `
	id, system_prompt, hourly_prompt_0, hourly_prompt_10, hourly_prompt_20,
	hourly_prompt_30, hourly_prompt_40, hourly_prompt_50, hourly_prompt_55,
	news_prompt, weather_prompt, traffic_prompt`

func (s *pgStore) ListStations(filter StationFilter) ([]model.Station, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.LocationID != nil {
		args = append(args, *filter.LocationID)
		clauses = append(clauses, "location_id = $"+strconv.Itoa(len(args)))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		clauses = append(clauses, "client_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, "status = $"+strconv.Itoa(len(args)))
	}

	q := `SELECT ` + stationColumns + ` FROM stations`
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	q += " ORDER BY name ASC"

	stations := []model.Station{}
	if err := s.db.Select(&stations, q, args...); err != nil {
		log.Error().Err(err).Msg("failed to list stations")
		return nil, translateError(err)
	}
	return stations, nil
}

func (s *pgStore) GetStationByID(id int) (model.Station, error) {
	var station model.Station
	err := s.db.Get(&station, `
		SELECT `+stationColumns+`
		FROM stations
		WHERE id = $1
		`, id)
	return station, translateError(err)
}

func (s *pgStore) CreateStation(in NewStation) (model.Station, error) {
	var st model.Station
	q := `
	INSERT INTO stations (
		name, location_id, website, status, omniplayer_url, client_id,
		client_secret, username, password,
		system_prompt, hourly_prompt_0, hourly_prompt_10, hourly_prompt_20,
		hourly_prompt_30, hourly_prompt_40, hourly_prompt_50, hourly_prompt_55,
		news_prompt, weather_prompt, traffic_prompt,
		created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
		$10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		now(), now())
	RETURNING ` + stationColumns + `;`
	err := s.db.Get(&st, q,
		in.Name, in.LocationID, in.Website, in.Status, in.OmniplayerURL, in.ClientID,
		in.ClientSecret, in.Username, in.Password,
		in.Prompts.SystemPrompt,
		in.Prompts.HourlyPrompt0, in.Prompts.HourlyPrompt10, in.Prompts.HourlyPrompt20,
		in.Prompts.HourlyPrompt30, in.Prompts.HourlyPrompt40, in.Prompts.HourlyPrompt50,
		in.Prompts.HourlyPrompt55,
		in.Prompts.NewsPrompt, in.Prompts.WeatherPrompt, in.Prompts.TrafficPrompt)
	if err != nil {
		log.Error().Err(err).Str("name", in.Name).Msg("failed to create station")
		return model.Station{}, translateError(err)
	}
	return st, nil
}

func (s *pgStore) UpdateStation(id int, in StationUpdate) (model.Station, error) {
	var st model.Station
	q := `
	UPDATE stations
	SET name = COALESCE($2, name),
	location_id = COALESCE($3, location_id),
	website = COALESCE($4, website),
	status = COALESCE($5, status),
	omniplayer_url = COALESCE($6, omniplayer_url),
	client_id = COALESCE($7, client_id),
	client_secret = COALESCE($8, client_secret),
	username = COALESCE($9, username),
	password = COALESCE($10, password),
	system_prompt = COALESCE($11, system_prompt),
	hourly_prompt_0 = COALESCE($12, hourly_prompt_0),
	hourly_prompt_10 = COALESCE($13, hourly_prompt_10),
	hourly_prompt_20 = COALESCE($14, hourly_prompt_20),
	hourly_prompt_30 = COALESCE($15, hourly_prompt_30),
	hourly_prompt_40 = COALESCE($16, hourly_prompt_40),
	hourly_prompt_50 = COALESCE($17, hourly_prompt_50),
	hourly_prompt_55 = COALESCE($18, hourly_prompt_55),
	news_prompt = COALESCE($19, news_prompt),
	weather_prompt = COALESCE($20, weather_prompt),
	traffic_prompt = COALESCE($21, traffic_prompt),
	updated_at = now()
	WHERE id = $1
	RETURNING ` + stationColumns + `;`
	err := s.db.Get(&st, q, id,
		in.Name, in.LocationID, in.Website, in.Status, in.OmniplayerURL, in.ClientID,
		in.ClientSecret, in.Username, in.Password,
		in.Prompts.SystemPrompt,
		in.Prompts.HourlyPrompt0, in.Prompts.HourlyPrompt10, in.Prompts.HourlyPrompt20,
		in.Prompts.HourlyPrompt30, in.Prompts.HourlyPrompt40, in.Prompts.HourlyPrompt50,
		in.Prompts.HourlyPrompt55,
		in.Prompts.NewsPrompt, in.Prompts.WeatherPrompt, in.Prompts.TrafficPrompt)
	if err != nil {
		log.Error().Err(err).Int("station_id", id).Msg("failed to update station")
		return model.Station{}, translateError(err)
	}
	return st, nil
}

func (s *pgStore) DeleteStation(id int) error {
	res, err := s.db.Exec(`DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("station_id", id).Msg("failed to delete station")
		return translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListStationPrompts returns the prompts-only view, for one station when
// stationID is set, otherwise for all of them.
func (s *pgStore) ListStationPrompts(stationID *int) ([]model.StationPromptSet, error) {
	prompts := []model.StationPromptSet{}
	var err error
	if stationID != nil {
		err = s.db.Select(&prompts, `
			SELECT `+promptColumns+`
			FROM stations
			WHERE id = $1
			`, *stationID)
	} else {
		err = s.db.Select(&prompts, `
			SELECT `+promptColumns+`
			FROM stations
			ORDER BY name ASC
			`)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to list station prompts")
		return nil, translateError(err)
	}
	return prompts, nil
}

func (s *pgStore) UpdateStationPrompts(id int, prompts model.StationPrompts) (model.StationPromptSet, error) {
	var out model.StationPromptSet
	q := `
	UPDATE stations
	SET system_prompt = COALESCE($2, system_prompt),
	hourly_prompt_0 = COALESCE($3, hourly_prompt_0),
	hourly_prompt_10 = COALESCE($4, hourly_prompt_10),
	hourly_prompt_20 = COALESCE($5, hourly_prompt_20),
	hourly_prompt_30 = COALESCE($6, hourly_prompt_30),
	hourly_prompt_40 = COALESCE($7, hourly_prompt_40),
	hourly_prompt_50 = COALESCE($8, hourly_prompt_50),
	hourly_prompt_55 = COALESCE($9, hourly_prompt_55),
	news_prompt = COALESCE($10, news_prompt),
	weather_prompt = COALESCE($11, weather_prompt),
	traffic_prompt = COALESCE($12, traffic_prompt),
	updated_at = now()
	WHERE id = $1
	RETURNING ` + promptColumns + `;`
	err := s.db.Get(&out, q, id,
		prompts.SystemPrompt,
		prompts.HourlyPrompt0, prompts.HourlyPrompt10, prompts.HourlyPrompt20,
		prompts.HourlyPrompt30, prompts.HourlyPrompt40, prompts.HourlyPrompt50,
		prompts.HourlyPrompt55,
		prompts.NewsPrompt, prompts.WeatherPrompt, prompts.TrafficPrompt)
	if err != nil {
		log.Error().Err(err).Int("station_id", id).Msg("failed to update station prompts")
		return model.StationPromptSet{}, translateError(err)
	}
	return out, nil
}
