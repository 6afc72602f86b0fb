package postgres

//nolint:revive
import (
	"frontdesk/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  connect(config, "read", config.DB.Postgres.Read),
		Write: connect(config, "write", config.DB.Postgres.Write),
	}
}

// Close releases both pools. The read and write pools may be the same database.
func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed closing database connection")
		}
	}
}

// Descriptor builds the lib/pq connection URL for node. Credentials are escaped, extra
// query parameters are merged in after sslmode and timezone.
func Descriptor(node config.PostgresNode, dbName string, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", node.SSLMode)

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     "/" + dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect opens a pool for node, retrying MaxRetry times before giving up.
func connect(config *config.Config, name string, node config.PostgresNode) *sqlx.DB {
	dbName := config.DatabaseName(node)
	descriptor := Descriptor(node, dbName, nil)

	maxRetry := max(config.DB.Postgres.MaxRetry, 1)
	waitTime := time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second

	logger := log.With().
		Str("name", name).
		Str("host", node.Host).
		Str("port", node.Port).
		Str("dbName", dbName).
		Logger()

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			logger.Info().Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		logger.Error().Err(err).Int("attempt", retry+1).Msg("Failed connecting to database, retrying")

		time.Sleep(waitTime)
	}

	logger.Fatal().Msg("Could not connect to database")

	return nil
}
