package logenv

import (
	"fmt"
	"sort"

	"github.com/Azhovan/logenv/internal/normalize"
)

// CookProperties returns the entries of src whose key starts with PropertyPrefix,
// with the prefix removed. Values are obtained through resolve (LookupValue if nil).
func CookProperties(src PropertySource, resolve ValueResolver) (map[string]string, error) {
	cooked, _, err := cookPropertiesWithKeys(src, resolve)
	return cooked, err
}

// cookPropertiesWithKeys cooks src and also returns the original key of every cooked key.
func cookPropertiesWithKeys(src PropertySource, resolve ValueResolver) (map[string]string, map[string]string, error) {
	if src == nil {
		return nil, nil, fmt.Errorf("%w: property source is nil", ErrInvalidArgument)
	}
	if resolve == nil {
		resolve = LookupValue
	}

	cooked := make(map[string]string)
	originalKeys := make(map[string]string)
	for _, key := range src.Keys() {
		stripped, ok := normalize.StripPrefix(key, PropertyPrefix)
		if !ok {
			continue
		}
		cooked[stripped] = resolve(src, key)
		originalKeys[stripped] = key
	}

	return cooked, originalKeys, nil
}

// CookEnvironment sanitizes every key of env (APP_LOGGING_ROOTLOGGER_LEVEL →
// app.logging.rootLogger.level) and returns the entries whose sanitized key
// starts with PropertyPrefix, with the prefix removed. Values are kept as-is.
//
// Sanitization is lossy. When two original keys sanitize to the same cooked
// key, the lexicographically greatest original key wins.
func CookEnvironment(env map[string]string) (map[string]string, error) {
	cooked, _, err := cookEnvironmentWithKeys(env)
	return cooked, err
}

func cookEnvironmentWithKeys(env map[string]string) (map[string]string, map[string]string, error) {
	if env == nil {
		return nil, nil, fmt.Errorf("%w: environment map is nil", ErrInvalidArgument)
	}

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cooked := make(map[string]string)
	originalKeys := make(map[string]string)
	for _, key := range keys {
		stripped, ok := normalize.StripPrefix(normalize.SanitizeEnvKey(key), PropertyPrefix)
		if !ok {
			continue
		}
		cooked[stripped] = env[key]
		originalKeys[stripped] = key
	}

	return cooked, originalKeys, nil
}
