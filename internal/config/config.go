// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The booking policy fields stay in their
// textual form here; validate.NewPolicy turns them into typed values at
// startup so a bad zone or weekday fails fast.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBName         string // database name
	JWTSecret      string // secret used to sign JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing

	RestaurantTZ    string // restaurant's local time zone (IANA name)
	ClosedWeekday   string // weekday on which no reservation may be booked
	OpenTime        string // first seating of the day, HH:MM
	LastSeatingTime string // last seating of the day, HH:MM (inclusive)
}

// Load reads configuration from environment variables.  Required
// variables are enforced by must() and missing values cause the program
// to exit with a fatal log message; booking policy values fall back to
// the reference deployment's defaults.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     mustInt("BCRYPT_COST"),

		RestaurantTZ:    getenv("RESTAURANT_TZ", "America/New_York"),
		ClosedWeekday:   getenv("CLOSED_WEEKDAY", "Tuesday"),
		OpenTime:        getenv("OPEN_TIME", "10:30"),
		LastSeatingTime: getenv("LAST_SEATING_TIME", "21:30"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string to an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
