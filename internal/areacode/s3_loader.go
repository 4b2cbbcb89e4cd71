// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package areacode

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"rulecheck/internal/resilience"
)

// ObjectGetter is the subset of the S3 client used by the loader
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Loader implements Loader for area code lists stored in AWS S3.
type s3Loader struct {
	client ObjectGetter
	bucket string
	retry  resilience.RetryConfig
	logger zerolog.Logger
}

// NewS3Loader creates an S3-based loader using the default AWS credential chain.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "areacode-s3-loader").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Debug().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 loader initialised")

	return NewS3LoaderWithClient(s3.NewFromConfig(cfg), bucket, logger), nil
}

// NewS3LoaderWithClient creates an S3-based loader around an existing client.
func NewS3LoaderWithClient(client ObjectGetter, bucket string, logger zerolog.Logger) Loader {
	return &s3Loader{
		client: client,
		bucket: bucket,
		retry:  resilience.DefaultRetryConfig(),
		logger: logger.With().Str("component", "areacode-s3-loader").Logger(),
	}
}

// Load fetches the object at key and parses it as an area code list.
// Transient S3 failures are retried with backoff.
func (l *s3Loader) Load(ctx context.Context, key string) (Set, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("loading area code list from S3")

	retry := l.retry
	retry.OnRetry = func(attempt int, err error) {
		l.logger.Warn().Err(err).Int("attempt", attempt).Str("key", key).Msg("retrying S3 fetch")
	}

	set, err := resilience.RetryWithResult(ctx, retry, func(ctx context.Context) (Set, error) {
		return l.fetch(ctx, key)
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to load area code list from S3")
		return nil, fmt.Errorf("failed to load area code list from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Int("codes_loaded", set.Size()).
		Msg("area code list loaded from S3")

	return set, nil
}

func (l *s3Loader) fetch(ctx context.Context, key string) (Set, error) {
	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, resilience.ClassifyError(err)
	}
	defer result.Body.Close()

	set, _, err := ReadSet(ctx, result.Body)
	if err != nil {
		return nil, resilience.NewTransientError(fmt.Sprintf("error reading S3 object %s: %v", key, err), err)
	}
	return set, nil
}

// fallbackLoader tries S3 first, then falls back to a local loader.
type fallbackLoader struct {
	primary   Loader
	secondary Loader
	key       string
	logger    zerolog.Logger
}

// NewFallbackLoader creates a loader that reads key through primary and,
// if that fails, reads the Load source through secondary. A nil primary
// always uses secondary.
func NewFallbackLoader(primary Loader, key string, secondary Loader, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		primary:   primary,
		secondary: secondary,
		key:       key,
		logger:    logger.With().Str("component", "areacode-fallback-loader").Logger(),
	}
}

func (l *fallbackLoader) Load(ctx context.Context, source string) (Set, error) {
	if l.primary != nil {
		set, err := l.primary.Load(ctx, l.key)
		if err == nil {
			return set, nil
		}
		l.logger.Warn().
			Err(err).
			Str("key", l.key).
			Str("fallback", source).
			Msg("failed to load from S3, falling back to local source")
	}
	return l.secondary.Load(ctx, source)
}
