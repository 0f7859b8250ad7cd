// Package keys provides the property-key conventions shared by the
// configuration sources.
//
// Values are stored under canonical dotted keys ("http.enabled"); callers may
// query with dash-separated spellings ("http-enabled"), which sources
// translate with DashToDot before the exact-match lookup. Normalize produces
// the case-insensitive canonical form inserted alongside every parsed entry.
//
// Mapping models an externally owned alias table as a pure function, so a
// source can emit alternate spellings without depending on global state:
//
//	aliases := keys.Mapping{"app.db.url": "quarkus.datasource.jdbc.url"}
//	src, err := args.New(raw, args.WithAliasFunc(aliases.Func()))
package keys
