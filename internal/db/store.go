// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/aircast-fm/aircast/internal/model"
)

type Store interface {
	// client functions
	ListClients() ([]model.Client, error)
	GetClientByID(id int) (model.Client, error)
	GetClientByAPIKey(apiKey string) (model.Client, error)
	CreateClient(name, email, company string, website, logo *string, status string) (model.Client, error)
	UpdateClient(id int, name, email, company, website, logo, status *string) (model.Client, error)
	DeleteClient(id int) error
	SetClientAPIKey(id int, apiKey string, generatedAt time.Time) (model.Client, error)

	// location functions
	ListLocations() ([]model.Location, error)
	GetLocationByID(id int) (model.Location, error)
	CreateLocation(name, code, country, city, timezone string) (model.Location, error)
	UpdateLocation(id int, name, code, country, city, timezone *string) (model.Location, error)
	DeleteLocation(id int) error

	// station functions
	ListStations(filter StationFilter) ([]model.Station, error)
	GetStationByID(id int) (model.Station, error)
	CreateStation(in NewStation) (model.Station, error)
	UpdateStation(id int, in StationUpdate) (model.Station, error)
	DeleteStation(id int) error
	ListStationPrompts(stationID *int) ([]model.StationPromptSet, error)
	UpdateStationPrompts(id int, prompts model.StationPrompts) (model.StationPromptSet, error)

	// voice functions
	ListVoices() ([]model.Voice, error)
	GetVoiceByID(id int) (model.Voice, error)
	CreateVoice(in NewVoice) (model.Voice, error)
	UpdateVoice(id int, in VoiceUpdate) (model.Voice, error)
	DeleteVoice(id int) error

	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)

	// maintenance (seed command and tests)
	TruncateAll() error
}

// StationFilter narrows ListStations; nil fields match everything.
type StationFilter struct {
	LocationID *int
	ClientID   *int
	Status     *string
}

// NewStation carries the validated fields for a station insert.
type NewStation struct {
	Name          string
	LocationID    int
	Website       *string
	Status        string
	OmniplayerURL *string
	ClientID      int
	ClientSecret  string
	Username      string
	Password      string
	Prompts       model.StationPrompts
}

// StationUpdate carries a partial station update; nil fields keep their
// prior values.
type StationUpdate struct {
	Name          *string
	LocationID    *int
	Website       *string
	Status        *string
	OmniplayerURL *string
	ClientID      *int
	ClientSecret  *string
	Username      *string
	Password      *string
	Prompts       model.StationPrompts
}

// NewVoice carries the validated fields for a voice insert.
type NewVoice struct {
	Name     string
	VoiceID  string
	Gender   string
	Language string
	Accent   *string
	Age      *int
	Category string
	Country  string
	Status   string
}

// VoiceUpdate carries a partial voice update; nil fields keep their prior values.
type VoiceUpdate struct {
	Name     *string
	VoiceID  *string
	Gender   *string
	Language *string
	Accent   *string
	Age      *int
	Category *string
	Country  *string
	Status   *string
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

// NewStore wraps an open connection. The store is constructed once at
// process start and handed to route handlers explicitly.
func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}

// TruncateAll removes every row from every entity table. Used by the seed
// command before inserting demo data.
func (s *pgStore) TruncateAll() error {
	_, err := s.db.Exec(`TRUNCATE stations, clients, locations, voices RESTART IDENTITY CASCADE`)
	return translateError(err)
}
