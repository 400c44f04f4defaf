package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/farhanyp/woordenlijst/client"
	"github.com/stretchr/testify/assert"
)

func TestConfigFile_Profiles(t *testing.T) {
	t.Run("get by name", func(t *testing.T) {
		cfg := &client.ConfigFile{Profiles: []client.Profile{
			{Name: "dev", Endpoint: "http://localhost:8572"},
			{Name: "prod", Endpoint: "https://woordenlijst.example.com", Default: true},
		}}

		p, err := cfg.GetProfile("dev")
		assert.NoError(t, err)
		assert.Equal(t, "http://localhost:8572", p.Endpoint)
	})

	t.Run("empty name resolves the default", func(t *testing.T) {
		cfg := &client.ConfigFile{Profiles: []client.Profile{
			{Name: "dev", Endpoint: "http://localhost:8572"},
			{Name: "prod", Endpoint: "https://woordenlijst.example.com", Default: true},
		}}

		p, err := cfg.GetProfile("")
		assert.NoError(t, err)
		assert.Equal(t, "prod", p.Name)
	})

	t.Run("first profile is the fallback default", func(t *testing.T) {
		cfg := &client.ConfigFile{Profiles: []client.Profile{
			{Name: "dev", Endpoint: "http://localhost:8572"},
			{Name: "prod", Endpoint: "https://woordenlijst.example.com"},
		}}

		p, err := cfg.GetDefaultProfile()
		assert.NoError(t, err)
		assert.Equal(t, "dev", p.Name)
	})

	t.Run("unknown profile", func(t *testing.T) {
		cfg := &client.ConfigFile{Profiles: []client.Profile{{Name: "dev"}}}

		_, err := cfg.GetProfile("staging")
		assert.Error(t, err)
		assert.ErrorIs(t, err, client.ErrProfileNotFound)
	})

	t.Run("no profiles configured", func(t *testing.T) {
		cfg := &client.ConfigFile{}

		_, err := cfg.GetProfile("")
		assert.Error(t, err)
		assert.ErrorIs(t, err, client.ErrNoProfiles)
	})

	t.Run("add rejects duplicates", func(t *testing.T) {
		cfg := &client.ConfigFile{}

		assert.NoError(t, cfg.AddProfile(client.Profile{Name: "dev"}))
		err := cfg.AddProfile(client.Profile{Name: "dev"})
		assert.Error(t, err)
		assert.ErrorIs(t, err, client.ErrProfileExists)
	})

	t.Run("update requires an existing profile", func(t *testing.T) {
		cfg := &client.ConfigFile{}

		err := cfg.UpdateProfile(client.Profile{Name: "dev"})
		assert.Error(t, err)
		assert.ErrorIs(t, err, client.ErrProfileNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		cfg := &client.ConfigFile{Profiles: []client.Profile{{Name: "dev"}, {Name: "prod"}}}

		assert.NoError(t, cfg.RemoveProfile("dev"))
		assert.Equal(t, []string{"prod"}, cfg.ProfileNames())

		err := cfg.RemoveProfile("dev")
		assert.ErrorIs(t, err, client.ErrProfileNotFound)
	})

	t.Run("set default clears other defaults", func(t *testing.T) {
		cfg := &client.ConfigFile{Profiles: []client.Profile{
			{Name: "dev", Default: true},
			{Name: "prod"},
		}}

		assert.NoError(t, cfg.SetDefault("prod"))
		assert.False(t, cfg.Profiles[0].Default)
		assert.True(t, cfg.Profiles[1].Default)
	})
}

func TestConfigFile_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &client.ConfigFile{Profiles: []client.Profile{
		{Name: "dev", Endpoint: "http://localhost:8572", Default: true},
	}}
	assert.NoError(t, cfg.Save(path))

	loaded, err := client.LoadConfigFile(path)
	assert.NoError(t, err)
	assert.Len(t, loaded.Profiles, 1)
	assert.Equal(t, "dev", loaded.Profiles[0].Name)
	assert.Equal(t, "http://localhost:8572", loaded.Profiles[0].Endpoint)
	assert.True(t, loaded.Profiles[0].Default)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := client.LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Run("fills empty endpoint", func(t *testing.T) {
		cfg := (&client.Config{}).WithDefaults()
		assert.Equal(t, client.DefaultEndpoint, cfg.Endpoint)
	})

	t.Run("keeps explicit endpoint", func(t *testing.T) {
		cfg := (&client.Config{Endpoint: "http://elsewhere:9999"}).WithDefaults()
		assert.Equal(t, "http://elsewhere:9999", cfg.Endpoint)
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("WOORDENLIJST_SERVER", "http://env-server:8572")

	cfg := client.ConfigFromEnv()
	assert.Equal(t, "http://env-server:8572", cfg.Endpoint)
}

func TestProfileFromEnv(t *testing.T) {
	t.Setenv("WOORDENLIJST_PROFILE", "staging")
	assert.Equal(t, "staging", client.ProfileFromEnv())
}

func TestMergeConfig(t *testing.T) {
	t.Run("later configs win", func(t *testing.T) {
		merged := client.MergeConfig(
			&client.Config{Endpoint: "http://first"},
			&client.Config{Endpoint: "http://second"},
		)
		assert.Equal(t, "http://second", merged.Endpoint)
	})

	t.Run("empty values do not override", func(t *testing.T) {
		merged := client.MergeConfig(
			&client.Config{Endpoint: "http://first"},
			&client.Config{},
		)
		assert.Equal(t, "http://first", merged.Endpoint)
	})

	t.Run("nil configs are skipped", func(t *testing.T) {
		merged := client.MergeConfig(nil, &client.Config{Endpoint: "http://only"})
		assert.Equal(t, "http://only", merged.Endpoint)
	})
}
