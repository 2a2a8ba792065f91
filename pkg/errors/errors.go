package errors

import (
	"fmt"
	"sort"
	"strings"
)

// MissingEnvErr reports required environment variables that were not set.
// EnvMap holds every required key with the value found, empty when missing.
type MissingEnvErr struct {
	EnvMap map[string]string
}

func (e MissingEnvErr) Error() string {
	if missing := e.Missing(); len(missing) > 0 {
		return fmt.Sprintf("insufficient env variables: [%s]", strings.Join(missing, ", "))
	}
	return "insufficient env variables"
}

// Missing returns the sorted keys of the unset variables.
func (e MissingEnvErr) Missing() []string {
	keys := make([]string, 0, len(e.EnvMap))
	for key, val := range e.EnvMap {
		if val == "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
