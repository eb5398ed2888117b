package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"
	"remodeling_proposals/internal/infrastructure/documents"
	"remodeling_proposals/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPricingNotFound         = errors.New("pricing record not found")
	ErrPricingAlreadyExists    = errors.New("pricing record already exists")
	ErrInvalidPricingDimension = errors.New("invalid pricing dimension")
	ErrInvalidPricingKey       = errors.New("invalid pricing key")
	ErrInvalidPricingRate      = errors.New("invalid pricing rate")
	ErrInvalidHistoryRange     = errors.New("invalid history range")
)

// AddPricingInput creates one record in a dimension table.
type AddPricingInput struct {
	Dimension     string
	Key           string
	Rate          decimal.Decimal
	UnitOfMeasure string
	Description   string
	Actor         string
}

// QuoteInput selects the rates and multipliers of a combined price. An
// empty Season means the current one; empty item keys price to zero.
type QuoteInput struct {
	Region       string
	PropertyType string
	Season       string
	LaborKey     string
	MaterialKey  string
	ServiceKey   string
	Quantity     decimal.Decimal
}

// Quote is rate * quantity * (regional * property type * seasonal) per item.
// Total is labor plus material.
type Quote struct {
	Season     string
	Multiplier decimal.Decimal
	Labor      decimal.Decimal
	Material   decimal.Decimal
	Service    decimal.Decimal
	Total      decimal.Decimal
}

type IPricingUseCase interface {
	List(ctx context.Context, dimension string) ([]entities.PricingRecord, error)
	Get(ctx context.Context, dimension, key string) (entities.PricingRecord, error)
	Add(ctx context.Context, in AddPricingInput) (entities.PricingRecord, error)
	Update(ctx context.Context, dimension, key string, rate decimal.Decimal, actor, reason string) (entities.PricingRecord, error)
	Delete(ctx context.Context, dimension, key string) error
	BulkUpdate(ctx context.Context, dimension string, rates map[string]decimal.Decimal, actor, reason string) (int, error)
	History(ctx context.Context, filter entities.PriceHistoryFilter) ([]entities.PriceHistory, error)
	ExportHistory(ctx context.Context, filter entities.PriceHistoryFilter) ([]byte, error)
	Quote(ctx context.Context, in QuoteInput) (Quote, error)
	LaborPrice(ctx context.Context, region, propertyType, season, key string, quantity decimal.Decimal) (decimal.Decimal, error)
	MaterialPrice(ctx context.Context, region, propertyType, season, key string, quantity decimal.Decimal) (decimal.Decimal, error)
	ServicePrice(ctx context.Context, region, propertyType, season, key string, quantity decimal.Decimal) (decimal.Decimal, error)
	TotalPrice(ctx context.Context, region, propertyType, season, laborKey, materialKey string, quantity decimal.Decimal) (decimal.Decimal, error)
	LoadTables(ctx context.Context) (pricing.Tables, error)
}

type PricingUseCase struct {
	repo   interfaces.IPricingRepository
	cache  interfaces.ICatalogCache
	logger *zap.Logger
	now    func() time.Time
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

type PricingOption func(*PricingUseCase)

// WithCatalogCache evicts cached catalog reads after every successful write.
func WithCatalogCache(cache interfaces.ICatalogCache) PricingOption {
	return func(u *PricingUseCase) {
		u.cache = cache
	}
}

func WithPricingLogger(logger *zap.Logger) PricingOption {
	return func(u *PricingUseCase) {
		if logger != nil {
			u.logger = logger
		}
	}
}

func NewPricingUseCase(repo interfaces.IPricingRepository, opts ...PricingOption) *PricingUseCase {
	u := &PricingUseCase{
		repo:   repo,
		logger: zap.NewNop(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *PricingUseCase) List(ctx context.Context, dimension string) ([]entities.PricingRecord, error) {
	dim, err := parseDimension(dimension)
	if err != nil {
		return nil, err
	}
	return u.repo.List(ctx, dim)
}

func (u *PricingUseCase) Get(ctx context.Context, dimension, key string) (entities.PricingRecord, error) {
	dim, key, err := parseDimensionKey(dimension, key)
	if err != nil {
		return entities.PricingRecord{}, err
	}
	rec, err := u.repo.Get(ctx, dim, key)
	if err != nil {
		return entities.PricingRecord{}, err
	}
	if rec.ID == "" {
		return entities.PricingRecord{}, ErrPricingNotFound
	}
	return rec, nil
}

func (u *PricingUseCase) Add(ctx context.Context, in AddPricingInput) (entities.PricingRecord, error) {
	dim, key, err := parseDimensionKey(in.Dimension, in.Key)
	if err != nil {
		return entities.PricingRecord{}, err
	}
	if err := validateRate(dim, in.Rate); err != nil {
		return entities.PricingRecord{}, err
	}

	if existing, err := u.repo.Get(ctx, dim, key); err != nil {
		return entities.PricingRecord{}, err
	} else if existing.ID != "" {
		return entities.PricingRecord{}, ErrPricingAlreadyExists
	}

	rec, err := u.repo.Add(ctx, entities.PricingRecord{
		Dimension:     dim,
		Key:           key,
		Rate:          in.Rate,
		UnitOfMeasure: strings.TrimSpace(in.UnitOfMeasure),
		Description:   strings.TrimSpace(in.Description),
		LastUpdated:   u.now(),
		UpdatedBy:     strings.TrimSpace(in.Actor),
	})
	if err != nil {
		return entities.PricingRecord{}, err
	}
	u.invalidate(ctx)
	return rec, nil
}

func (u *PricingUseCase) Update(ctx context.Context, dimension, key string, rate decimal.Decimal, actor, reason string) (entities.PricingRecord, error) {
	dim, key, err := parseDimensionKey(dimension, key)
	if err != nil {
		return entities.PricingRecord{}, err
	}
	if err := validateRate(dim, rate); err != nil {
		return entities.PricingRecord{}, err
	}

	rec, err := u.repo.Update(ctx, dim, key, rate, strings.TrimSpace(actor), strings.TrimSpace(reason))
	if err != nil {
		return entities.PricingRecord{}, err
	}
	if rec.ID == "" {
		return entities.PricingRecord{}, ErrPricingNotFound
	}
	u.invalidate(ctx)
	return rec, nil
}

func (u *PricingUseCase) Delete(ctx context.Context, dimension, key string) error {
	dim, key, err := parseDimensionKey(dimension, key)
	if err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, dim, key)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPricingNotFound
	}
	u.invalidate(ctx)
	return nil
}

// BulkUpdate validates every rate before touching storage. Keys without a
// record are skipped and not counted.
func (u *PricingUseCase) BulkUpdate(ctx context.Context, dimension string, rates map[string]decimal.Decimal, actor, reason string) (int, error) {
	dim, err := parseDimension(dimension)
	if err != nil {
		return 0, err
	}
	if len(rates) == 0 {
		return 0, nil
	}
	normalized := make(map[string]decimal.Decimal, len(rates))
	for k, rate := range rates {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			return 0, ErrInvalidPricingKey
		}
		if err := validateRate(dim, rate); err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		normalized[key] = rate
	}
	updated, err := u.repo.BulkUpdate(ctx, dim, normalized, strings.TrimSpace(actor), strings.TrimSpace(reason))
	if err != nil {
		return 0, err
	}
	if updated > 0 {
		u.invalidate(ctx)
	}
	return updated, nil
}

func (u *PricingUseCase) History(ctx context.Context, filter entities.PriceHistoryFilter) ([]entities.PriceHistory, error) {
	if filter.ItemType != "" {
		if _, ok := entities.ParsePricingDimension(filter.ItemType); !ok {
			return nil, ErrInvalidPricingDimension
		}
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, ErrInvalidHistoryRange
	}
	out, err := u.repo.History(ctx, filter)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.PriceHistory{}
	}
	return out, nil
}

func (u *PricingUseCase) ExportHistory(ctx context.Context, filter entities.PriceHistoryFilter) ([]byte, error) {
	history, err := u.History(ctx, filter)
	if err != nil {
		return nil, err
	}
	return documents.PriceHistoryWorkbook(history)
}

func (u *PricingUseCase) Quote(ctx context.Context, in QuoteInput) (Quote, error) {
	if in.Quantity.IsNegative() {
		return Quote{}, fmt.Errorf("%w: quantity must not be negative", ErrInvalidPricingRate)
	}
	season := strings.ToLower(strings.TrimSpace(in.Season))
	if season == "" {
		season = pricing.SeasonFor(u.now())
	}

	multiplier, err := u.combinedMultiplier(ctx, in.Region, in.PropertyType, season)
	if err != nil {
		return Quote{}, err
	}
	labor, err := u.itemPrice(ctx, entities.DimensionLabor, in.LaborKey, in.Quantity, multiplier)
	if err != nil {
		return Quote{}, err
	}
	material, err := u.itemPrice(ctx, entities.DimensionMaterialBase, in.MaterialKey, in.Quantity, multiplier)
	if err != nil {
		return Quote{}, err
	}
	service, err := u.itemPrice(ctx, entities.DimensionServiceBase, in.ServiceKey, in.Quantity, multiplier)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Season:     season,
		Multiplier: multiplier,
		Labor:      labor,
		Material:   material,
		Service:    service,
		Total:      labor.Add(material),
	}, nil
}

// LaborPrice is laborRate * quantity * combined multiplier.
func (u *PricingUseCase) LaborPrice(ctx context.Context, region, propertyType, season, key string, quantity decimal.Decimal) (decimal.Decimal, error) {
	q, err := u.Quote(ctx, QuoteInput{Region: region, PropertyType: propertyType, Season: season, LaborKey: key, Quantity: quantity})
	return q.Labor, err
}

// MaterialPrice is materialRate * quantity * combined multiplier.
func (u *PricingUseCase) MaterialPrice(ctx context.Context, region, propertyType, season, key string, quantity decimal.Decimal) (decimal.Decimal, error) {
	q, err := u.Quote(ctx, QuoteInput{Region: region, PropertyType: propertyType, Season: season, MaterialKey: key, Quantity: quantity})
	return q.Material, err
}

// ServicePrice is serviceRate * quantity * combined multiplier.
func (u *PricingUseCase) ServicePrice(ctx context.Context, region, propertyType, season, key string, quantity decimal.Decimal) (decimal.Decimal, error) {
	q, err := u.Quote(ctx, QuoteInput{Region: region, PropertyType: propertyType, Season: season, ServiceKey: key, Quantity: quantity})
	return q.Service, err
}

// TotalPrice is LaborPrice(laborKey) + MaterialPrice(materialKey).
func (u *PricingUseCase) TotalPrice(ctx context.Context, region, propertyType, season, laborKey, materialKey string, quantity decimal.Decimal) (decimal.Decimal, error) {
	q, err := u.Quote(ctx, QuoteInput{
		Region:       region,
		PropertyType: propertyType,
		Season:       season,
		LaborKey:     laborKey,
		MaterialKey:  materialKey,
		Quantity:     quantity,
	})
	return q.Total, err
}

// LoadTables snapshots the stored multiplier tables for the pricing engine.
func (u *PricingUseCase) LoadTables(ctx context.Context) (pricing.Tables, error) {
	var records []entities.PricingRecord
	for _, dim := range []entities.PricingDimension{
		entities.DimensionRegional,
		entities.DimensionPropertyType,
		entities.DimensionSeasonal,
	} {
		recs, err := u.repo.List(ctx, dim)
		if err != nil {
			return pricing.Tables{}, fmt.Errorf("failed to load %s multipliers: %w", dim, err)
		}
		records = append(records, recs...)
	}
	return pricing.TablesFromRecords(records), nil
}

// invalidate never fails the write that triggered it.
func (u *PricingUseCase) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		u.logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}

func (u *PricingUseCase) combinedMultiplier(ctx context.Context, region, propertyType, season string) (decimal.Decimal, error) {
	regional, err := u.repo.EffectiveRate(ctx, entities.DimensionRegional, region)
	if err != nil {
		return decimal.Zero, err
	}
	ptype, err := u.repo.EffectiveRate(ctx, entities.DimensionPropertyType, propertyType)
	if err != nil {
		return decimal.Zero, err
	}
	seasonal, err := u.repo.EffectiveRate(ctx, entities.DimensionSeasonal, season)
	if err != nil {
		return decimal.Zero, err
	}
	return regional.Mul(ptype).Mul(seasonal), nil
}

func (u *PricingUseCase) itemPrice(ctx context.Context, dim entities.PricingDimension, key string, quantity, multiplier decimal.Decimal) (decimal.Decimal, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return decimal.Zero, nil
	}
	rate, err := u.repo.EffectiveRate(ctx, dim, key)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Mul(quantity).Mul(multiplier), nil
}

func parseDimension(raw string) (entities.PricingDimension, error) {
	dim, ok := entities.ParsePricingDimension(strings.ToLower(strings.TrimSpace(raw)))
	if !ok {
		return "", ErrInvalidPricingDimension
	}
	return dim, nil
}

func parseDimensionKey(rawDim, rawKey string) (entities.PricingDimension, string, error) {
	dim, err := parseDimension(rawDim)
	if err != nil {
		return "", "", err
	}
	key := strings.ToLower(strings.TrimSpace(rawKey))
	if key == "" {
		return "", "", ErrInvalidPricingKey
	}
	return dim, key, nil
}

// Multipliers must be positive; base rates may be zero.
func validateRate(dim entities.PricingDimension, rate decimal.Decimal) error {
	if dim.IsMultiplier() && !rate.IsPositive() {
		return fmt.Errorf("%w: %s multipliers must be positive", ErrInvalidPricingRate, dim)
	}
	if rate.IsNegative() {
		return fmt.Errorf("%w: rate must not be negative", ErrInvalidPricingRate)
	}
	return nil
}
