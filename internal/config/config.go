package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings splits the CORS origin list
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable. Strings for identifiers and secrets, ints for TTLs and
// costs, a slice for the CORS allow-list.
type Config struct {
	Env         string   // application environment (e.g. "dev", "prod")
	Port        string   // HTTP port to listen on
	DBUser      string   // database username
	DBPass      string   // database password (optional)
	DBHost      string   // database host address
	DBPort      string   // database port number
	DBName      string   // database name
	JWTSecret   string   // secret used to sign access tokens
	TokenTTLMin int      // access token time-to-live in minutes
	BcryptCost  int      // bcrypt cost for password hashing
	CORSOrigins []string // allowed CORS origins, "*" permits all
	UploadDir   string   // directory image uploads are written to
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values cause
// the program to exit with a fatal log message. Optional values fall back to
// defaults that match a local development setup.
func Load() Config {
	return Config{
		Env:         must("APP_ENV"),                 // environment (dev/test/prod)
		Port:        must("APP_PORT"),                // port to bind the HTTP server
		DBUser:      must("DB_USER"),                 // database user
		DBPass:      os.Getenv("DB_PASS"),            // database password (empty allowed)
		DBHost:      must("DB_HOST"),                 // database host
		DBPort:      must("DB_PORT"),                 // database port
		DBName:      must("DB_NAME"),                 // database name
		JWTSecret:   must("JWT_SECRET"),              // secret used for signing tokens
		TokenTTLMin: intOr("TOKEN_TTL_MIN", 60),      // tokens expire after one hour unless overridden
		BcryptCost:  intOr("BCRYPT_COST", 10),        // bcrypt cost factor
		CORSOrigins: origins("CORS_ORIGINS"),         // comma separated, defaults to "*"
		UploadDir:   strOr("UPLOAD_DIR", "uploads"),  // where POST /api/public/upload stores files
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// strOr returns the value of the environment variable or the fallback when it
// is unset or empty.
func strOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// intOr is like strOr for integers. A value that does not parse is treated
// the same as an unset one.
func intOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: ignoring non-integer %s=%q", key, v)
		return def
	}
	return n
}

// origins splits a comma separated origin list, trimming whitespace and
// dropping empty entries. An unset variable allows every origin.
func origins(key string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
