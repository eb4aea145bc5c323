package cron

import (
	"context"
	"fmt"

	"github.com/andrebarceloschagas/sistema/pkg/logger"
	"github.com/andrebarceloschagas/sistema/pkg/metrics"
)

const expireListingsJobName = "expire_listings"

// listingExpirer is the slice of the listing service the sweep needs.
type listingExpirer interface {
	ExpireOverdue(ctx context.Context) (int64, error)
}

// ExpireListingsJobParams configure the listing expiration sweep.
type ExpireListingsJobParams struct {
	Logger   *logger.Logger
	Listings listingExpirer
	Metrics  *metrics.CronJobMetrics
}

type expireListingsJob struct {
	logg     *logger.Logger
	listings listingExpirer
	metrics  *metrics.CronJobMetrics
}

// NewExpireListingsJob builds the cron job that flips overdue active listings
// to expired. The same statement runs lazily before list reads; the job keeps
// idle rows from lingering between reads.
func NewExpireListingsJob(params ExpireListingsJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Listings == nil {
		return nil, fmt.Errorf("listing service required")
	}
	return &expireListingsJob{
		logg:     params.Logger,
		listings: params.Listings,
		metrics:  params.Metrics,
	}, nil
}

func (j *expireListingsJob) Name() string {
	return expireListingsJobName
}

func (j *expireListingsJob) Run(ctx context.Context) error {
	expired, err := j.listings.ExpireOverdue(ctx)
	if err != nil {
		return fmt.Errorf("expire overdue listings: %w", err)
	}
	if j.metrics != nil {
		j.metrics.AddProcessed(expireListingsJobName, expired)
	}
	ctx = j.logg.WithField(ctx, "expired", expired)
	j.logg.Info(ctx, "listing expiration sweep complete")
	return nil
}
