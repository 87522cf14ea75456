// Package env compares the logical environment tags carried by devices and
// requests, so that an update issued in one environment never lands on a
// device that belongs to another.
package env

import "strings"

var aliases = map[string]string{
	"prod":        "prod",
	"prd":         "prod",
	"production":  "prod",
	"live":        "prod",
	"stage":       "stage",
	"stg":         "stage",
	"staging":     "stage",
	"dev":         "dev",
	"develop":     "dev",
	"development": "dev",
	"test":        "test",
	"tst":         "test",
	"qa":          "test",
	"local":       "local",
}

// Canonical returns the canonical form of an environment tag. Unknown tags are
// returned trimmed and lower-cased.
func Canonical(tag string) string {
	t := strings.ToLower(strings.TrimSpace(tag))
	if c, ok := aliases[t]; ok {
		return c
	}
	return t
}

// InSameEnv reports whether two environment tags name the same environment.
func InSameEnv(a, b string) bool {
	return Canonical(a) == Canonical(b)
}

// IsKnown reports whether tag is one of the recognised environment names or aliases.
func IsKnown(tag string) bool {
	_, ok := aliases[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}
