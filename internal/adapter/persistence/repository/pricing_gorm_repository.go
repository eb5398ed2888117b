package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"remodeling_proposals/internal/adapter/persistence/models"
	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PricingGormRepository stores one table per pricing dimension plus the
// shared price_history table.
type PricingGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

var _ interfaces.IPricingRepository = (*PricingGormRepository)(nil)

func NewPricingGormRepository(db *gorm.DB) *PricingGormRepository {
	return &PricingGormRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *PricingGormRepository) List(ctx context.Context, dim entities.PricingDimension) ([]entities.PricingRecord, error) {
	var rows []models.PricingModel
	if err := r.db.WithContext(ctx).Table(dim.Table()).Order("item_key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.PricingRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToEntity(dim))
	}
	return out, nil
}

func (r *PricingGormRepository) Get(ctx context.Context, dim entities.PricingDimension, key string) (entities.PricingRecord, error) {
	row, found, err := findPricing(r.db.WithContext(ctx), dim, key)
	if err != nil || !found {
		return entities.PricingRecord{}, err
	}
	return row.ToEntity(dim), nil
}

func (r *PricingGormRepository) Add(ctx context.Context, rec entities.PricingRecord) (entities.PricingRecord, error) {
	rec.Key = normalizeKey(rec.Key)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.LastUpdated.IsZero() {
		rec.LastUpdated = r.now()
	}
	row := models.PricingFromEntity(rec)
	if err := r.db.WithContext(ctx).Table(rec.Dimension.Table()).Create(&row).Error; err != nil {
		return entities.PricingRecord{}, err
	}
	return row.ToEntity(rec.Dimension), nil
}

// Update changes the rate of an existing key and records the change in
// price_history within the same transaction.
func (r *PricingGormRepository) Update(
	ctx context.Context,
	dim entities.PricingDimension,
	key string,
	rate decimal.Decimal,
	actor, reason string,
) (entities.PricingRecord, error) {
	var out entities.PricingRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, _, err := r.applyRate(tx, dim, key, rate, actor, reason)
		out = rec
		return err
	})
	if err != nil {
		return entities.PricingRecord{}, err
	}
	return out, nil
}

func (r *PricingGormRepository) Delete(ctx context.Context, dim entities.PricingDimension, key string) (bool, error) {
	res := r.db.WithContext(ctx).
		Table(dim.Table()).
		Where("item_key = ?", normalizeKey(key)).
		Delete(&models.PricingModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// EffectiveRate falls back to the dimension's neutral rate for unknown keys.
func (r *PricingGormRepository) EffectiveRate(ctx context.Context, dim entities.PricingDimension, key string) (decimal.Decimal, error) {
	row, found, err := findPricing(r.db.WithContext(ctx), dim, key)
	if err != nil {
		return decimal.Zero, err
	}
	if !found {
		return dim.Neutral(), nil
	}
	return row.Rate, nil
}

// BulkUpdate applies every rate in one transaction. Unknown keys are
// skipped; the count of applied changes is returned.
func (r *PricingGormRepository) BulkUpdate(
	ctx context.Context,
	dim entities.PricingDimension,
	rates map[string]decimal.Decimal,
	actor, reason string,
) (int, error) {
	keys := make([]string, 0, len(rates))
	for k := range rates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	applied := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			_, found, err := r.applyRate(tx, dim, k, rates[k], actor, reason)
			if err != nil {
				return err
			}
			if found {
				applied++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

func (r *PricingGormRepository) AddHistory(ctx context.Context, h entities.PriceHistory) (entities.PriceHistory, error) {
	row := r.newHistoryRow(h)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.PriceHistory{}, err
	}
	return row.ToEntity(), nil
}

// History returns matching rows newest first; From and To are inclusive.
func (r *PricingGormRepository) History(ctx context.Context, f entities.PriceHistoryFilter) ([]entities.PriceHistory, error) {
	q := r.db.WithContext(ctx).Model(&models.PriceHistoryModel{})
	if f.ItemID != "" {
		q = q.Where("item_id = ?", f.ItemID)
	}
	if f.ItemType != "" {
		q = q.Where("item_type = ?", f.ItemType)
	}
	if f.Region != "" {
		q = q.Where("LOWER(region) = ?", normalizeKey(f.Region))
	}
	if f.PropertyType != "" {
		q = q.Where("LOWER(property_type) = ?", normalizeKey(f.PropertyType))
	}
	if f.Season != "" {
		q = q.Where("LOWER(season) = ?", normalizeKey(f.Season))
	}
	if !f.From.IsZero() {
		q = q.Where("change_date >= ?", f.From.UTC())
	}
	if !f.To.IsZero() {
		q = q.Where("change_date <= ?", f.To.UTC())
	}

	var rows []models.PriceHistoryModel
	if err := q.Order("change_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.PriceHistory, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToEntity())
	}
	return out, nil
}

func (r *PricingGormRepository) applyRate(
	tx *gorm.DB,
	dim entities.PricingDimension,
	key string,
	rate decimal.Decimal,
	actor, reason string,
) (entities.PricingRecord, bool, error) {
	row, found, err := findPricing(tx, dim, key)
	if err != nil || !found {
		return entities.PricingRecord{}, false, err
	}

	now := r.now()
	old := row.Rate
	if err := tx.Table(dim.Table()).
		Where("id = ?", row.ID).
		Updates(map[string]interface{}{
			"rate":         rate,
			"last_updated": now,
			"updated_by":   actor,
		}).Error; err != nil {
		return entities.PricingRecord{}, false, err
	}
	row.Rate = rate
	row.LastUpdated = now
	row.UpdatedBy = actor

	h := entities.PriceHistory{
		ItemID:     row.ItemKey,
		ItemType:   string(dim),
		OldPrice:   old,
		NewPrice:   rate,
		ChangeDate: now,
		ChangedBy:  actor,
		Reason:     reason,
	}
	switch dim {
	case entities.DimensionRegional:
		h.Region = row.ItemKey
	case entities.DimensionPropertyType:
		h.PropertyType = row.ItemKey
	case entities.DimensionSeasonal:
		h.Season = row.ItemKey
	}
	hist := r.newHistoryRow(h)
	if err := tx.Create(&hist).Error; err != nil {
		return entities.PricingRecord{}, false, err
	}
	return row.ToEntity(dim), true, nil
}

func (r *PricingGormRepository) newHistoryRow(h entities.PriceHistory) models.PriceHistoryModel {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.ChangeDate.IsZero() {
		h.ChangeDate = r.now()
	}
	return models.PriceHistoryFromEntity(h)
}

func findPricing(db *gorm.DB, dim entities.PricingDimension, key string) (models.PricingModel, bool, error) {
	var row models.PricingModel
	err := db.Table(dim.Table()).Where("item_key = ?", normalizeKey(key)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PricingModel{}, false, nil
	}
	if err != nil {
		return models.PricingModel{}, false, err
	}
	return row, true, nil
}
