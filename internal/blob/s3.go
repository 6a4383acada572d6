package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmarr/casefolio/internal/config"
	"github.com/jmarr/casefolio/internal/logger"
)

// s3Client is the slice of the S3 API the gateway uses. Narrowing the
// dependency keeps the gateway mockable without an S3 endpoint.
type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Gateway struct {
	client        s3Client
	bucket        string
	publicBaseURL string

	logger *logger.Logger
}

// NewS3Gateway constructs the production [Gateway] over S3. A non-empty
// cfg.Endpoint switches the client to path-style addressing for MinIO and
// localstack deployments.
func NewS3Gateway(ctx context.Context, cfg config.Blob, log *logger.Logger) (Gateway, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("blob gateway created")

	return &s3Gateway{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL(cfg),
		logger:        log,
	}, nil
}

func publicBaseURL(cfg config.Blob) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// Put implements [Gateway].
func (g *s3Gateway) Put(ctx context.Context, key string, data []byte, contentType string) (PutResult, error) {
	log := logger.FromContext(ctx)

	input := &s3.PutObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := g.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3Gateway.Put").Str("key", key).Msg("error putting object")
		return PutResult{}, fmt.Errorf("putting object %q: %w", key, err)
	}

	return PutResult{Key: key, URL: g.PublicURL(key)}, nil
}

// Delete implements [Gateway].
func (g *s3Gateway) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3Gateway.Delete").Str("key", key).Msg("error deleting object")
		return fmt.Errorf("deleting object %q: %w", key, err)
	}

	return nil
}

// PublicURL implements [Gateway].
func (g *s3Gateway) PublicURL(key string) string {
	return g.publicBaseURL + "/" + key
}
