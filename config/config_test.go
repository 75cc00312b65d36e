package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("SCHEMAC_SERVER_PORT", "9090")
	os.Setenv("SCHEMAC_CACHE_MONGO_CONNECTION_STRING", "mongodb://test:27017")
	os.Setenv("SCHEMAC_CACHE_MONGO_DATABASE_NAME", "testdb")
	defer os.Unsetenv("SCHEMAC_SERVER_PORT")
	defer os.Unsetenv("SCHEMAC_CACHE_MONGO_CONNECTION_STRING")
	defer os.Unsetenv("SCHEMAC_CACHE_MONGO_DATABASE_NAME")

	f, err := os.Create("config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.WriteString("server:\n  port: 8080\ncache:\n  mode: mongo\n  mongo:\n    connection_string: \"default\"\n    database_name: \"default\"\n")
	assert.NoError(t, err)
	f.Close()
	defer os.Remove("config.yaml")

	viper.Reset()

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mongodb://test:27017", cfg.Cache.Mongo.ConnectionString)
	assert.Equal(t, "testdb", cfg.Cache.Mongo.DatabaseName)
}
