// Package yamlfile provides a configuration source backed by a YAML file.
//
// This package uses github.com/goccy/go-yaml to parse the document and
// flattens nested mappings into canonical dotted property keys:
//
//	http:
//	  enabled: true
//	  port: 8180
//
// yields "http.enabled" -> "true" and "http.port" -> "8180" (with the
// configured namespace prefix, if any). Scalars are stored in their string
// form; sequences and explicit nulls are skipped.
//
// The file is read once at construction and never re-read, so the source
// reflects the file contents at startup for the lifetime of the resolver.
//
// Error Handling:
//   - Construction returns an error if the file cannot be read or the path
//     points to a directory; errors include the filepath for easier debugging
//   - Use errors.Is(err, yamlfile.ErrPathIsDirectory) to check for directory errors
//   - A document whose root is not a mapping fails with ErrNotMapping
package yamlfile
