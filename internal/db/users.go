package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/model"
)

func (s *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	var id int
	q := `
	INSERT INTO users (email, hashed_password, name, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id;`
	if err := s.db.Get(&id, q, email, hashedPassword, name); err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to create user")
		return 0, translateError(err)
	}
	return id, nil
}

func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := s.db.Get(&user, `
		SELECT id, email, hashed_password, name, created_at, updated_at
		FROM users
		WHERE email = $1
		`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var user model.User
	err := s.db.Get(&user, `
		SELECT id, email, hashed_password, name, created_at, updated_at
		FROM users
		WHERE id = $1
		`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
