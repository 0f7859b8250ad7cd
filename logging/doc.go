// Package logging provides the slog JSON logger used by the config module.
//
// New builds a *slog.Logger with a JSON handler and a level parsed from a
// string ("debug", "info", "warn", "error"), which is how the level arrives
// from configuration options. Unrecognized or empty levels fall back to info.
package logging
