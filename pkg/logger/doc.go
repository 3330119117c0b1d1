// Package logger provides a small factory around log/slog configured through
// functional options.
//
// The defaults suit a command-line tool: human-readable text output on
// stderr at info level, so stdout stays reserved for program output. Switch
// to JSON for log aggregation, raise or lower the level, or attach static
// attributes applied to every record:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithAttr(slog.String("app", "passkit")),
//	)
//	logger.SetAsDefault(log)
//
// ParseLevel converts user-supplied level names ("debug", "warn", ...) into
// slog levels, defaulting to info for anything unrecognized.
package logger
