package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/openummah/masjidmap/internal/db"
	"github.com/openummah/masjidmap/internal/prayer"
	"github.com/openummah/masjidmap/internal/push"
	"github.com/openummah/masjidmap/internal/redis"
	"github.com/openummah/masjidmap/internal/session"
	"github.com/openummah/masjidmap/internal/sheet"
)

func main() {
	// .env is optional; real deployments use the process environment
	_ = godotenv.Load()

	env := LoadEnvironment()

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	// session snapshot cache
	redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)

	// timetable push to paired boards; a missing broker is not fatal
	if env.MQTTBrokerURL != "" {
		push.SetBrokerURL(env.MQTTBrokerURL)
	}
	if err := push.InitMQTT("masjidmap-server"); err != nil {
		log.Warn().Err(err).Msg("MQTT unavailable, timetable push disabled")
	}
	defer push.CleanupMQTT()

	// bundled venue dataset, loaded once for the process lifetime
	mosques := LoadDataset(env)
	sessions := session.NewManager(mosques, sheet.DefaultOffsets)

	store := db.NewStore()
	aladhan := prayer.NewClient()

	r := gin.Default()
	RegisterRoutes(r, env, store, sessions, aladhan)

	log.Info().Str("address", env.ServerAddress).Int("mosques", len(mosques)).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
