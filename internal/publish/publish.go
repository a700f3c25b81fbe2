// Package publish pushes the assembled catalog bundle to S3, where both
// front ends fetch it at build time.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awsCreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	crownpages "github.com/phn-team/crown-pages-types"
	"github.com/phn-team/crown-pages-types/internal/bundle"
)

// Config controls where the bundle lands.
type Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string // set for MinIO-style deployments; empty means real S3
	DryRun   bool
}

// uploader is the slice of manager.Uploader the publisher needs; tests
// substitute a fake.
type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// Publisher uploads catalog bundles.
type Publisher struct {
	uploader uploader
	cfg      Config
	logger   *zap.Logger
}

// New builds a publisher backed by a real S3 client. Credentials come from
// the default AWS chain; AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY in the
// environment override it.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("publish: bucket is required")
	}

	loadOpts := []func(*config.LoadOptions) error{}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if envKey := os.Getenv("AWS_ACCESS_KEY_ID"); envKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			awsCreds.NewStaticCredentialsProvider(envKey, os.Getenv("AWS_SECRET_ACCESS_KEY"), "")))
	}
	if cfg.Endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(cfg.Endpoint))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true
		}
	})

	return &Publisher{
		uploader: manager.NewUploader(s3Client),
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// NewWithUploader wires a pre-built uploader. Used by tests.
func NewWithUploader(u uploader, cfg Config, logger *zap.Logger) *Publisher {
	return &Publisher{uploader: u, cfg: cfg, logger: logger}
}

// Publish uploads the bundle under two keys: a versioned object named after
// the bundle's schema version, and a stable latest.json alias. It returns
// the versioned key.
func (p *Publisher) Publish(ctx context.Context, b *bundle.Bundle) (string, error) {
	data, err := b.Marshal()
	if err != nil {
		return "", crownError("marshal bundle", err)
	}

	versionedKey := path.Join(p.cfg.Prefix, fmt.Sprintf("crown-pages-%s.json", b.SchemaVersion))
	latestKey := path.Join(p.cfg.Prefix, "latest.json")

	if p.cfg.DryRun {
		p.logger.Sugar().Infow("dry run, skipping upload",
			"bucket", p.cfg.Bucket, "key", versionedKey, "bytes", len(data))
		return versionedKey, nil
	}

	for _, key := range []string{versionedKey, latestKey} {
		if err := p.put(ctx, key, data); err != nil {
			return "", err
		}
	}

	p.logger.Sugar().Infow("published catalog bundle",
		"bucket", p.cfg.Bucket,
		"key", versionedKey,
		"schema_version", b.SchemaVersion,
		"sections", len(b.Sections),
		"full_pages", len(b.FullPages))
	return versionedKey, nil
}

func (p *Publisher) put(ctx context.Context, key string, data []byte) error {
	_, err := p.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			p.logger.Sugar().Errorw("s3 upload rejected",
				"bucket", p.cfg.Bucket, "key", key, "code", apiErr.ErrorCode())
		}
		return crownError(fmt.Sprintf("upload %s", key), err)
	}
	return nil
}

func crownError(message string, cause error) *crownpages.Error {
	return crownpages.NewError(crownpages.ErrorTypePublish, crownpages.ErrCodePublishFailed, message).
		WithCause(cause)
}
