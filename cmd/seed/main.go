// Seeds the database with the demo dataset: one client, five studio
// locations, one station, and one voice. Existing rows are wiped first.
// Each insert is an independent validated create; no cross-row atomicity
// is needed or attempted.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/model"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db open")
	}
	if err := db.RunMigrations(conn, migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(conn)

	if err := store.TruncateAll(); err != nil {
		log.Fatal().Err(err).Msg("failed to clear existing data")
	}

	website := "https://demo.radiogroup.com"
	client, err := store.CreateClient(
		"Demo Radio Group", "demo@radiogroup.com", "Demo Radio Group",
		&website, nil, "active")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create demo client")
	}

	amsterdam, err := store.CreateLocation("Amsterdam Studio", "NL", "Netherlands", "Amsterdam", "Europe/Amsterdam")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create demo location")
	}

	locations := []struct {
		name, code, country, city, timezone string
	}{
		{"London Studio", "GB", "United Kingdom", "London", "Europe/London"},
		{"Berlin Studio", "DE", "Germany", "Berlin", "Europe/Berlin"},
		{"Paris Studio", "FR", "France", "Paris", "Europe/Paris"},
		{"Madrid Studio", "ES", "Spain", "Madrid", "Europe/Madrid"},
	}
	for _, l := range locations {
		if _, err := store.CreateLocation(l.name, l.code, l.country, l.city, l.timezone); err != nil {
			log.Fatal().Err(err).Str("code", l.code).Msg("failed to create location")
		}
	}

	stationWebsite := "https://radiodemo.com"
	omniplayerURL := "https://demo.omniplayer.fm"
	systemPrompt := "You are a radio host for Demo Radio..."
	hourlyPrompt0 := "It's the top of the hour..."
	newsPrompt := "Here are the latest news updates..."
	weatherPrompt := "The weather forecast for today..."
	trafficPrompt := "Traffic update for the Amsterdam area..."

	_, err = store.CreateStation(db.NewStation{
		Name:          "Radio Demo",
		LocationID:    amsterdam.ID,
		Website:       &stationWebsite,
		Status:        "active",
		OmniplayerURL: &omniplayerURL,
		ClientID:      client.ID,
		ClientSecret:  "demo_secret",
		Username:      "demo_user",
		Password:      "demo_pass",
		Prompts: model.StationPrompts{
			SystemPrompt:  &systemPrompt,
			HourlyPrompt0: &hourlyPrompt0,
			NewsPrompt:    &newsPrompt,
			WeatherPrompt: &weatherPrompt,
			TrafficPrompt: &trafficPrompt,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create demo station")
	}

	accent := "American"
	age := 35
	if _, err := store.CreateVoice(db.NewVoice{
		Name:     "John Smith",
		VoiceID:  "en-US-1",
		Gender:   "male",
		Language: "en-US",
		Accent:   &accent,
		Age:      &age,
		Category: "news",
		Country:  "United States",
		Status:   "active",
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to create demo voice")
	}

	log.Info().Msg("seed data inserted successfully")
}
