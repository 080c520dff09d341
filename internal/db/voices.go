package db

import (
	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/model"
)

const voiceColumns = `id, name, voice_id, gender, language, accent, age, category, country, status, created_at`

func (s *pgStore) ListVoices() ([]model.Voice, error) {
	voices := []model.Voice{}
	err := s.db.Select(&voices, `
		SELECT `+voiceColumns+`
		FROM voices
		ORDER BY name ASC
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list voices")
		return nil, translateError(err)
	}
	return voices, nil
}

func (s *pgStore) GetVoiceByID(id int) (model.Voice, error) {
	var voice model.Voice
	err := s.db.Get(&voice, `
		SELECT `+voiceColumns+`
		FROM voices
		WHERE id = $1
		`, id)
	return voice, translateError(err)
}

func (s *pgStore) CreateVoice(in NewVoice) (model.Voice, error) {
	var v model.Voice
	q := `
	INSERT INTO voices (name, voice_id, gender, language, accent, age, category, country, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
	RETURNING ` + voiceColumns + `;`
	err := s.db.Get(&v, q,
		in.Name, in.VoiceID, in.Gender, in.Language, in.Accent, in.Age,
		in.Category, in.Country, in.Status)
	if err != nil {
		log.Error().Err(err).Str("name", in.Name).Msg("failed to create voice")
		return model.Voice{}, translateError(err)
	}
	return v, nil
}

func (s *pgStore) UpdateVoice(id int, in VoiceUpdate) (model.Voice, error) {
	var v model.Voice
	q := `
	UPDATE voices
	SET name = COALESCE($2, name),
	voice_id = COALESCE($3, voice_id),
	gender = COALESCE($4, gender),
	language = COALESCE($5, language),
	accent = COALESCE($6, accent),
	age = COALESCE($7, age),
	category = COALESCE($8, category),
	country = COALESCE($9, country),
	status = COALESCE($10, status)
	WHERE id = $1
	RETURNING ` + voiceColumns + `;`
	err := s.db.Get(&v, q, id,
		in.Name, in.VoiceID, in.Gender, in.Language, in.Accent, in.Age,
		in.Category, in.Country, in.Status)
	if err != nil {
		log.Error().Err(err).Int("voice_id", id).Msg("failed to update voice")
		return model.Voice{}, translateError(err)
	}
	return v, nil
}

func (s *pgStore) DeleteVoice(id int) error {
	res, err := s.db.Exec(`DELETE FROM voices WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("voice_id", id).Msg("failed to delete voice")
		return translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
