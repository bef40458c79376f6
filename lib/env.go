package lib

import (
	"os"
	"strconv"
)

func GetEnvDefault(key, defaultValue string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return val
}

// GetEnvBool returns true for 1, t, true (any case) etc.
// Unparsable value returns defaultValue
func GetEnvBool(key string, defaultValue bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return b
}

func IsDevelopment() bool {
	return os.Getenv("GO_ENV") == "development"
}
