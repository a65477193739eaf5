package main

import (
	"context"
	"testing"

	"HospitalHub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_ServeUsesMemoryFlag(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("PORT", "8000")
	t.Setenv("MONGO_DB", "hospital_db")

	var gotMemory bool
	var gotCfg *config.Config
	orig := startServer
	startServer = func(cfg *config.Config, memory bool) error {
		gotCfg = cfg
		gotMemory = memory
		return nil
	}
	defer func() { startServer = orig }()

	cmd := rootCmd()
	cmd.SetArgs([]string{"serve", "--memory"})
	require.NoError(t, cmd.Execute())

	assert.True(t, gotMemory)
	require.NotNil(t, gotCfg)
	assert.Equal(t, "8000", gotCfg.Port)
}

func TestRootCommand_DefaultsToServe(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("PORT", "8000")
	t.Setenv("MONGO_DB", "hospital_db")

	called := false
	orig := startServer
	startServer = func(cfg *config.Config, memory bool) error {
		called = true
		assert.False(t, memory)
		return nil
	}
	defer func() { startServer = orig }()

	cmd := rootCmd()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.True(t, called)
}

func TestRootCommand_Migrate(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("PORT", "8000")
	t.Setenv("MONGO_DB", "hospital_db")

	called := false
	orig := runMigrate
	runMigrate = func(ctx context.Context, cfg *config.Config) error {
		called = true
		assert.Equal(t, "hospital_db", cfg.MongoDB)
		return nil
	}
	defer func() { runMigrate = orig }()

	cmd := rootCmd()
	cmd.SetArgs([]string{"migrate"})
	require.NoError(t, cmd.Execute())
	assert.True(t, called)
}
