package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/pkg/config"
)

func TestNewDatabaseConfig(t *testing.T) {
	cfg := &config.Config{
		Repositories: config.RepositoriesConfig{
			Postgres: config.PostgresConfig{
				Host: "db", Port: "5432", DB: "facturation",
				Username: "postgres", Password: "s3cret", SSLMode: "disable",
				MaxConns: 10, MinConns: 2,
			},
		},
	}

	dbCfg, err := NewDatabaseConfig(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dbCfg.ConnectionURL, "postgresql://postgres:s3cret@db:5432/facturation?"))
	assert.Contains(t, dbCfg.ConnectionURL, "sslmode=disable")
	assert.Equal(t, int32(10), dbCfg.MaxConns)

	_, err = NewDatabaseConfig(&config.Config{}, zap.NewNop())
	assert.Error(t, err)
}

func TestMigrationURL(t *testing.T) {
	got, err := migrationURL("postgresql://u:p@h:1/db?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "postgresql://u:p@h:1/db?sslmode=disable", got)

	got, err = migrationURL("postgres://u:p@h:1/db")
	require.NoError(t, err)
	assert.Equal(t, "postgresql://u:p@h:1/db", got)

	_, err = migrationURL("mysql://u:p@h:1/db")
	assert.Error(t, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrationFS.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	var ups, downs int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	assert.Equal(t, ups, downs, "every migration has a down step")
}
