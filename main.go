package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/campusfin/backend/internal/config"
	"github.com/campusfin/backend/internal/models"
	"github.com/campusfin/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	conf := config.Load()

	// Create the directory the database lives in
	if dir := filepath.Dir(conf.DBDSN); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	// Connect to the database and migrate the schema. Request handling
	// does not start before this succeeded.
	if err := models.Connect(conf.DBDSN); err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"), conf)

	log.Info().Str("port", conf.Port).Msg("backend startup complete")

	if err := r.Run(":" + conf.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
