// The seed command wipes the database and reloads it from a JSON fixture.
//
// Unlike the server, it has no default database location: DB_DSN must be
// set explicitly so that a database is never created by accident.
package main

import (
	"flag"
	"os"

	"github.com/campusfin/backend/internal/config"
	"github.com/campusfin/backend/internal/models"
	"github.com/campusfin/backend/internal/seed"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	file := flag.String("file", "data/fixture.json", "path to the fixture file")
	check := flag.Bool("check", false, "only check database connectivity, do not seed")
	flag.Parse()

	dsn, ok := config.RequireDSN()
	if !ok {
		log.Fatal().Msg("DB_DSN is not set in the environment. Copy .env.example to .env and set it.")
	}

	if err := models.Connect(dsn); err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if *check {
		sqlDB, err := models.DB.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			log.Fatal().Err(err).Msg("connectivity check failed")
		}

		log.Info().Str("dsn", dsn).Msg("connected and pinged the database")
		return
	}

	fixture, err := seed.Read(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("fixture could not be loaded")
	}

	if err := seed.Load(models.DB, fixture); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Str("file", *file).Msg("database seeded successfully")
}
