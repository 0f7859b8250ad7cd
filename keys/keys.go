package keys

import "strings"

// Normalize returns the lookup-friendly canonical form of a property key:
// lower-case, with dashes collapsed into dots.
func Normalize(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "-", "."))
}

// DashToDot translates a dash-separated key into the dotted form under which
// values are stored. Queries arriving in either convention hit the same entry.
func DashToDot(key string) string {
	return strings.ReplaceAll(key, "-", ".")
}

// Identity is an alias function that returns its input unchanged.
func Identity(key string) string {
	return key
}

// Mapping is an alias table from canonical property keys to alternate
// spellings under which the same value must also resolve.
type Mapping map[string]string

// Func returns a pure alias function backed by the mapping.
// Keys without an entry map to themselves.
func (m Mapping) Func() func(string) string {
	return func(key string) string {
		alias, ok := m[key]
		if !ok {
			return key
		}

		return alias
	}
}
