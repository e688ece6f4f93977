package review

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/udayanalone/BarberConnect/internal/catalog"
)

// Aggregator recomputes a barber's aggregate rating from the full review
// set. Every write recomputes from scratch, so concurrent recomputations
// converge; the result is eventually consistent, not serializable.
type Aggregator struct {
	repo    Repository
	catalog *catalog.Lookup
	log     *zap.Logger
}

func NewAggregator(repo Repository, cat *catalog.Lookup, log *zap.Logger) *Aggregator {
	return &Aggregator{
		repo:    repo,
		catalog: cat,
		log:     log.With(zap.String("service", "rating_aggregator")),
	}
}

// Recompute refreshes rating and totalReviews on the barber's profile.
// When the last review is gone the aggregate resets to 0/0 rather than
// keeping a stale value.
func (a *Aggregator) Recompute(ctx context.Context, barberID uint) error {
	avg, count, err := a.repo.RatingStats(ctx, barberID)
	if err != nil {
		return err
	}

	rating := 0.0
	if count > 0 {
		rating = math.Round(avg*10) / 10
	}

	profileID, err := a.repo.WriteAggregate(ctx, barberID, rating, count)
	if err != nil {
		return err
	}

	a.catalog.Invalidate(ctx, profileID)

	a.log.Debug("barber rating recomputed",
		zap.Uint("barber_id", barberID),
		zap.Float64("rating", rating),
		zap.Int64("total_reviews", count),
	)

	return nil
}
