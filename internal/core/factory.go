// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"

	"github.com/rs/zerolog"

	"rulecheck/internal/areacode"
	"rulecheck/internal/catalog"
	"rulecheck/internal/config"
	"rulecheck/internal/observability"
)

// BuildAreaCodeProvider assembles the area code loader chain from cfg.
// A configured file replaces the built-in list; when S3 is enabled the
// object is tried first and the local source is the fallback. Nothing is
// loaded until the first phone validation.
func BuildAreaCodeProvider(ctx context.Context, cfg config.AreaCodeConfig, logger zerolog.Logger) *areacode.Provider {
	var local areacode.Loader
	if cfg.File != "" {
		local = areacode.NewFileLoader(logger)
	} else {
		local = areacode.NewEmbeddedLoader(logger)
	}

	loader := local
	if cfg.S3.Enabled {
		s3Loader, err := areacode.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("S3 area code source unavailable, using local source")
		} else {
			loader = areacode.NewFallbackLoader(s3Loader, cfg.S3.Key, local, logger)
		}
	}

	return areacode.NewProvider(loader, cfg.File, logger)
}

// BuildCatalog constructs the rule catalog for the effective configuration
func BuildCatalog(ctx context.Context, eff config.Effective, logger zerolog.Logger, observer *observability.StandardObserver) *catalog.Catalog {
	return catalog.New(catalog.Options{
		AreaCodes: BuildAreaCodeProvider(ctx, eff.AreaCodes, logger),
		Gregorian: eff.Date.Gregorian,
		Logger:    logger,
		Observer:  observer,
	})
}
