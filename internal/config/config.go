package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/joho/godotenv" // godotenv loads a local .env file during development
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	MongoURI     string // MongoDB connection string
	MongoDB      string // MongoDB database name
	JWTSecret    string // secret used to sign session tokens
	AccessTTLMin int    // session token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
	OMDbBaseURL  string // base URL of the external movie metadata API
	OMDbAPIKey   string // API key for the external movie metadata API
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is loaded first when
// present.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	_ = godotenv.Load() // a missing .env is fine; real env vars win either way

	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "3001"),
		MongoURI:     must("MONGO_URI"),
		MongoDB:      getenv("MONGO_DB", "violetview"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: getenvInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:   getenvInt("BCRYPT_COST", 10),
		OMDbBaseURL:  getenv("OMDB_BASE_URL", "https://www.omdbapi.com"),
		OMDbAPIKey:   must("OMDB_API_KEY"),
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

// getenv returns the value of an optional environment variable, falling
// back to def when the variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt is like getenv() but converts the retrieved string into an
// integer.  Invalid values are treated as a configuration error.
func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
