// Package env provides a configuration source backed by environment
// variables.
//
// Property keys are mapped to variable names by replacing dashes and dots
// with underscores and upper-casing: "app.http-enabled" reads
// APP_HTTP_ENABLED. The lookup function is injectable so tests can run in
// parallel without mutating the process environment.
package env
