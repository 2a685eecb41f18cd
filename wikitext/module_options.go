package wikitext

import (
	"strconv"
	"strings"
)

// ModuleOptions is the parsed form of a module option string "key=value|flag".
// Keys are lowercase, flags map to an empty value.
type ModuleOptions map[string]string

// ParseModuleOptions parses the raw option string. Segments without a name are skipped,
// the parser reports them with [IssueMalformedModuleOption]. The last duplicate wins.
func ParseModuleOptions(raw string) ModuleOptions {
	opts := make(ModuleOptions)

	if raw == "" {
		return opts
	}

	for _, seg := range strings.Split(raw, "|") {
		key, value, _ := strings.Cut(seg, "=")

		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}

		opts[key] = strings.TrimSpace(value)
	}

	return opts
}

// Has reports whether the option or the flag is present.
func (o ModuleOptions) Has(key string) bool {
	_, ok := o[strings.ToLower(key)]
	return ok
}

// String returns the value of the option or def if it's missing or empty.
func (o ModuleOptions) String(key, def string) string {
	v := o[strings.ToLower(key)]
	if v == "" {
		return def
	}
	return v
}

// Int returns the integer value of the option or def if it's missing or not an integer.
func (o ModuleOptions) Int(key string, def int) int {
	v, err := strconv.Atoi(o[strings.ToLower(key)])
	if err != nil {
		return def
	}
	return v
}

// Bool returns true for a flag or for the values "true", "yes" and "1".
func (o ModuleOptions) Bool(key string) bool {
	v, ok := o[strings.ToLower(key)]
	if !ok {
		return false
	}

	switch strings.ToLower(v) {
	case "", "true", "yes", "1":
		return true
	}
	return false
}
