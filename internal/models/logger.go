package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// dbLogger routes gorm's log output into zerolog. The log level is
// controlled globally through zerolog, so LogMode is a no-op.
type dbLogger struct {
	log zerolog.Logger
}

func (l *dbLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *dbLogger) Info(_ context.Context, format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l *dbLogger) Warn(_ context.Context, format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l *dbLogger) Error(_ context.Context, format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// Trace logs every statement with its duration. Missing records are not
// errors here, the request layer decides whether a miss is a 404 or a
// null response.
func (l *dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	if err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.log.Error().Err(err).Str("sql", sql).Dur("duration", time.Since(begin)).Msg("query failed")
		return
	}

	l.log.Debug().Str("sql", sql).Int64("rows", rows).Dur("duration", time.Since(begin)).Msg("query")
}
