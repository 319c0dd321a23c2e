package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"citycard/config"
	deliverycontext "citycard/internal/delivery/context"
	"citycard/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Wallet debits hold a row lock; anything slower than this is worth a warning.
const slowStatementThreshold = 200 * time.Millisecond

// sqlLogger sends gorm output through slog. Statements run inside a dispatched
// call are logged with that call's request_id.
type sqlLogger struct {
	base   *slog.Logger
	schema string
	level  gormlogger.LogLevel
}

func newSQLLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &sqlLogger{base: base, level: gormlogger.Warn}
	if cfg != nil {
		l.schema = cfg.Store.Schema
		if cfg.Env.Debug {
			l.level = gormlogger.Info
		}
	}

	return l
}

func (l *sqlLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

// Trace logs failed statements, slow statements, and in debug mode everything.
// A missing row is an expected lookup result, not a failure.
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		level, msg = slog.LevelError, "SQL statement failed"
	case elapsed > slowStatementThreshold && l.level >= gormlogger.Warn:
		level, msg = slog.LevelWarn, "SQL statement slow"
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelInfo, "SQL statement"
	default:
		return
	}

	stmt, rows := fc()
	attrs := []slog.Attr{
		slog.String("schema", l.schema),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", stmt),
	}
	if level == slog.LevelError {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *sqlLogger) emit(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < min {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *sqlLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
