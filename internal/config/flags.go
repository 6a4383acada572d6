package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-bucket blob store bucket name
//	-region blob store AWS region
//	-blob-endpoint custom S3 endpoint (MinIO/localstack)
//	-previews-dir preview scratch directory
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-preview-sweep-interval preview sweeper period (e.g., "10m")
//	-preview-ttl age after which abandoned previews are removed
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var blobBucket string
	var blobRegion string
	var blobEndpoint string
	var previewsDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var previewSweepInterval time.Duration
	var previewTTL time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&blobBucket, "bucket", "", "Blob store bucket")
	flag.StringVar(&blobRegion, "region", "", "Blob store region")
	flag.StringVar(&blobEndpoint, "blob-endpoint", "", "Custom S3 endpoint")
	flag.StringVar(&previewsDir, "previews-dir", "", "Preview scratch directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&previewSweepInterval, "preview-sweep-interval", 0, "Preview sweeper period (e.g., 10m)")
	flag.DurationVar(&previewTTL, "preview-ttl", 0, "Abandoned preview TTL (e.g., 1h)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Blob: Blob{
				Bucket:   blobBucket,
				Region:   blobRegion,
				Endpoint: blobEndpoint,
			},
			Previews: Previews{
				Dir: previewsDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PreviewSweepInterval: previewSweepInterval,
			PreviewTTL:           previewTTL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the merge
// step can fall through to other config layers.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
