package interfaces

import (
	"context"
	"remodeling_proposals/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IPricingRepository stores the six rate tables and the price history.
//
// Get and Update return a zero record when the key is absent and Delete
// returns false; EffectiveRate degrades to the dimension's neutral rate.
// Update and BulkUpdate append a PriceHistory row per applied change.

type IPricingRepository interface {
	List(ctx context.Context, dim entities.PricingDimension) ([]entities.PricingRecord, error)
	Get(ctx context.Context, dim entities.PricingDimension, key string) (entities.PricingRecord, error)
	Add(ctx context.Context, r entities.PricingRecord) (entities.PricingRecord, error)
	Update(ctx context.Context, dim entities.PricingDimension, key string, rate decimal.Decimal, actor, reason string) (entities.PricingRecord, error)
	Delete(ctx context.Context, dim entities.PricingDimension, key string) (bool, error)
	EffectiveRate(ctx context.Context, dim entities.PricingDimension, key string) (decimal.Decimal, error)
	BulkUpdate(ctx context.Context, dim entities.PricingDimension, rates map[string]decimal.Decimal, actor, reason string) (int, error)
	AddHistory(ctx context.Context, h entities.PriceHistory) (entities.PriceHistory, error)
	History(ctx context.Context, filter entities.PriceHistoryFilter) ([]entities.PriceHistory, error)
}
