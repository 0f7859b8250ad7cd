// Package args provides a configuration source backed by CLI-style arguments
// captured as a single comma-separated string.
//
// The raw string typically comes from an environment variable or system
// property set when a process re-invokes itself, e.g.:
//
//	--http-enabled=true,--http-port=8180,--db-url=jdbc:mariadb://localhost/kc?a=1
//
// Every token must start with "--". A token is split on its first '=' into
// key and value; later '=' characters belong to the value. A token with no
// '=' at all is a bare flag and is silently skipped. Tokens without the "--"
// prefix, or with an empty key, abort construction with a
// *MalformedArgumentError.
//
// Each parsed key is stored under up to three spellings: the namespaced
// dotted key itself, the result of the injected alias function, and the
// normalized form from the injected normalize function. Later tokens
// overwrite earlier ones on collision.
//
// Lookups translate dashes in the query key to dots before an exact match,
// so both "http-enabled" and "http.enabled" resolve the same entry.
package args
