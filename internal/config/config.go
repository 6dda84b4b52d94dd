package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultSyncFetchLimit = 100

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string

	// Gmail session state. The token and its expiry are provided by the
	// environment; the server never performs an OAuth flow itself.
	GmailAccessToken string
	GmailTokenExpiry time.Time

	SyncFetchLimit int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Optional local .env, ignored when absent.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		SyncFetchLimit:   defaultSyncFetchLimit,
	}

	if v := os.Getenv("POSTGRES_ADDRESS"); len(v) != 0 {
		env.PostgresAddress = v
	}

	if v := os.Getenv("POSTGRES_PORT"); len(v) != 0 {
		env.PostgresPort = v
	}

	if v := os.Getenv("POSTGRES_DB"); len(v) != 0 {
		env.PostgresDB = v
	}

	if v := os.Getenv("POSTGRES_USERNAME"); len(v) != 0 {
		env.PostgresUsername = v
	}

	if v := os.Getenv("POSTGRES_PASSWORD"); len(v) != 0 {
		env.PostgresPassword = v
	}

	if v := os.Getenv("HTTP_PORT"); len(v) != 0 {
		env.HTTPPort = v
	}

	env.GmailAccessToken = os.Getenv("GMAIL_ACCESS_TOKEN")

	if v := os.Getenv("GMAIL_TOKEN_EXPIRY"); len(v) != 0 {
		expiry, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, err
		}
		env.GmailTokenExpiry = expiry
	}

	if v := os.Getenv("SYNC_FETCH_LIMIT"); len(v) != 0 {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		if limit > 0 {
			env.SyncFetchLimit = limit
		}
	}

	return &env, nil
}
