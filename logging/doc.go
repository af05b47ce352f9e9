// Package logging builds structured loggers on Go's standard log/slog.
// Loggers emit JSON and parse their level from a plain string, which keeps
// log configuration a single field in module configs.
package logging
