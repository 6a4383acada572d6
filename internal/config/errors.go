package config

import "errors"

var (
	// errNoDatabaseDSN is returned by validate when no database connection
	// string was provided by any configuration layer.
	errNoDatabaseDSN = errors.New("database DSN is required")

	// errNoBlobBucket is returned by validate when no blob store bucket
	// was provided by any configuration layer.
	errNoBlobBucket = errors.New("blob store bucket is required")
)
