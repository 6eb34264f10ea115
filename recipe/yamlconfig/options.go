package yamlconfig

import "fmt"

// StringOption extracts a required string-valued option, the shape
// every constructor in this module needs (a single import path, an
// old/new package name): yaml.v3 decodes map[string]any scalars as
// plain Go strings already, so no further conversion is needed beyond
// the type assertion and a clear error when it's missing or the wrong
// type.
func StringOption(options map[string]any, key string) (string, error) {
	v, ok := options[key]
	if !ok {
		return "", fmt.Errorf("yamlconfig: missing required option %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("yamlconfig: option %q must be a string, got %T", key, v)
	}
	return s, nil
}

// StringOptionOr is StringOption with a default for a missing key.
func StringOptionOr(options map[string]any, key, fallback string) string {
	v, ok := options[key]
	if !ok {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}
