package config

import "time"

// Defaults applied by validate when a value is missing from every layer.
const (
	defaultHTTPAddress          = "localhost:8080"
	defaultRequestTimeout       = 30 * time.Second
	defaultPreviewSweepInterval = 10 * time.Minute
	defaultPreviewTTL           = time.Hour
)

// validate fills defaults and rejects configurations the service cannot
// start with. The database DSN and the blob bucket are the only hard
// requirements; everything else has a sensible default.
func (c *StructuredConfig) validate() error {
	if c.Storage.DB.DSN == "" {
		return errNoDatabaseDSN
	}
	if c.Storage.Blob.Bucket == "" {
		return errNoBlobBucket
	}

	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Workers.PreviewSweepInterval <= 0 {
		c.Workers.PreviewSweepInterval = defaultPreviewSweepInterval
	}
	if c.Workers.PreviewTTL <= 0 {
		c.Workers.PreviewTTL = defaultPreviewTTL
	}

	return nil
}
