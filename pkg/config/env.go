package config

import (
	"os"
	"strconv"
)

// GetEnv returns the environment variable value for key, or def if unset or empty.
func GetEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// GetEnvInt returns the environment variable value for key parsed as int, or def if unset or invalid.
func GetEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

// GetEnvIntBounded returns the environment variable value for key parsed as int
// and clamped to [min, max]. Unset or invalid values yield def.
func GetEnvIntBounded(key string, def, min, max int) int {
	v := GetEnvInt(key, def)
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// GetEnvBool returns the environment variable value for key parsed as bool, or def if unset or invalid.
func GetEnvBool(key string, def bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return def
}
