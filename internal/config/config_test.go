package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/casefolio")
	t.Setenv("STORAGE_BLOB_BUCKET", "casefolio-docs")
	t.Setenv("STORAGE_BLOB_REGION", "us-east-1")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("WORKERS_PREVIEW_TTL", "2h")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/casefolio", cfg.Storage.DB.DSN)
	assert.Equal(t, "casefolio-docs", cfg.Storage.Blob.Bucket)
	assert.Equal(t, "us-east-1", cfg.Storage.Blob.Region)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Hour, cfg.Workers.PreviewTTL)
}

func TestParseJSON_StringDurations(t *testing.T) {
	raw := map[string]any{
		"storage": map[string]any{
			"db":   map[string]any{"dsn": "postgres://json"},
			"blob": map[string]any{"bucket": "json-bucket", "region": "eu-west-1"},
		},
		"server": map[string]any{
			"http_address":    "localhost:7070",
			"request_timeout": "1m",
		},
		"workers": map[string]any{
			"preview_sweep_interval": "5m",
		},
	}

	path := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, "json-bucket", cfg.Storage.Blob.Bucket)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.PreviewSweepInterval)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{
			DB:   DB{DSN: "postgres://localhost/casefolio"},
			Blob: Blob{Bucket: "docs"},
		},
	}

	require.NoError(t, cfg.validate())

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultPreviewSweepInterval, cfg.Workers.PreviewSweepInterval)
	assert.Equal(t, defaultPreviewTTL, cfg.Workers.PreviewTTL)
}

func TestValidate_MissingRequired(t *testing.T) {
	err := (&StructuredConfig{}).validate()
	assert.ErrorIs(t, err, errNoDatabaseDSN)

	cfg := &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://x"}}}
	assert.ErrorIs(t, cfg.validate(), errNoBlobBucket)
}

func TestNetAddress_Set(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", addr.String())

	assert.Error(t, addr.Set("no-port"))
	assert.Error(t, addr.Set("localhost:0"))
	assert.Error(t, addr.Set("not-an-ip:8080"))
}
