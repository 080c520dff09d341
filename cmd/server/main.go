package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/middleware"
	"github.com/aircast-fm/aircast/internal/notify"
	"github.com/aircast-fm/aircast/internal/redis"
	"github.com/aircast-fm/aircast/internal/storage"
)

func main() {
	// .env is optional; real deployments set the variables directly
	_ = godotenv.Load()
	env := LoadEnvironment()

	// initialize PostgreSQL
	conn, err := db.Open(env.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db open")
	}

	// run pending migrations
	if err := db.RunMigrations(conn, env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(conn)

	// redis backs session revocation and the api-key cache; optional
	if env.RedisAddress != "" {
		redis.Init(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	// prompt-update fanout; no-op unless a broker is configured
	var publisher notify.Publisher = notify.NoopPublisher{}
	if env.MQTTBrokerURL != "" {
		mqttPublisher, err := notify.NewMQTTPublisher(env.MQTTBrokerURL, "aircast-server")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt connect")
		}
		defer mqttPublisher.Close()
		publisher = mqttPublisher
	}

	var storageSystem storage.Storage
	if env.UseSpaces {
		storageSystem, err = storage.NewSpacesStorage(
			env.SpacesEndpoint, env.SpacesRegion, env.SpacesBucket,
			env.SpacesCDNURL, env.SpacesAccessKey, env.SpacesSecretKey)
		if err != nil {
			log.Fatal().Err(err).Msg("spaces storage init")
		}
	} else {
		storageSystem = storage.NewLocalStorage(env.UploadDir)
	}

	sessions := middleware.NewSessionManager(env.SecretKey, store)

	// set up gin router
	r := gin.Default()
	RegisterRoutes(r, env, store, sessions, storageSystem, publisher)

	// start
	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
