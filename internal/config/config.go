package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	JWTSecret        string
	JWTExpirySeconds int

	ExchangeRateAPIKey string

	RateLimitPerMinute int
	OperatorWorkers    int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		HTTPPort:           "9446",
		PostgresAddress:    "localhost",
		PostgresPort:       "5433",
		PostgresDB:         "postgres",
		PostgresUsername:   "postgres",
		PostgresPassword:   "testpassword",
		JWTSecret:          "dev_jwt_key",
		JWTExpirySeconds:   3600,
		RateLimitPerMinute: 60,
		OperatorWorkers:    4,
	}

	if v := os.Getenv("HTTP_PORT"); v != "" {
		env.HTTPPort = v
	}

	if v := os.Getenv("POSTGRES_ADDRESS"); v != "" {
		env.PostgresAddress = v
	}

	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		env.PostgresPort = v
	}

	if v := os.Getenv("POSTGRES_DB"); v != "" {
		env.PostgresDB = v
	}

	if v := os.Getenv("POSTGRES_USERNAME"); v != "" {
		env.PostgresUsername = v
	}

	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		env.PostgresPassword = v
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		env.JWTSecret = v
	}

	if v := os.Getenv("JWT_EXPIRY_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.JWTExpirySeconds = seconds
	}

	if v := os.Getenv("EXCHANGE_RATE_API_KEY"); v != "" {
		env.ExchangeRateAPIKey = v
	}

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.RateLimitPerMinute = limit
	}

	if v := os.Getenv("OPERATOR_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	return &env, nil
}

// PostgresURL builds the connection string used by both the server and the
// migration runner.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" + c.PostgresPassword +
		"@" + c.PostgresAddress + ":" + c.PostgresPort + "/" + c.PostgresDB +
		"?sslmode=disable"
}
