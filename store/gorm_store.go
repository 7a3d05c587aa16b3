package store

import (
	"context"
	"fmt"

	"content-humanizer/models"

	"gorm.io/gorm"
)

// GormStore is the PostgreSQL-backed ContentStore.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the content tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&models.Brand{}, &models.CarModel{}, &models.UpcomingCar{}, &models.Variant{})
}

func (s *GormStore) List(ctx context.Context, c models.Collection, limit int) ([]models.Document, error) {
	q := s.db.WithContext(ctx).Order("id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	switch c {
	case models.CollectionBrands:
		var rows []models.Brand
		if err := q.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("list brands: %w", err)
		}
		return toDocuments(rows), nil
	case models.CollectionModels:
		var rows []models.CarModel
		if err := q.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		return toDocuments(rows), nil
	case models.CollectionUpcoming:
		var rows []models.UpcomingCar
		if err := q.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("list upcoming cars: %w", err)
		}
		return toDocuments(rows), nil
	case models.CollectionVariants:
		var rows []models.Variant
		if err := q.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("list variants: %w", err)
		}
		return toDocuments(rows), nil
	}
	return nil, fmt.Errorf("list %q: unknown collection", c)
}

func (s *GormStore) Update(ctx context.Context, c models.Collection, id uint, fields map[string]string, engines models.EngineSummaryList) error {
	model := modelFor(c)
	if model == nil {
		return fmt.Errorf("update %q: unknown collection", c)
	}

	updates := make(map[string]any, len(fields)+1)
	allowed := map[string]bool{}
	for _, f := range models.HumanizableFields(c) {
		allowed[f] = true
	}
	for k, v := range fields {
		if !allowed[k] {
			return fmt.Errorf("update %s/%d: field %q is not humanizable", c, id, k)
		}
		updates[k] = v
	}
	if engines != nil && models.HasEngineSummaries(c) {
		updates["engine_summaries"] = engines
	}
	if len(updates) == 0 {
		return nil
	}

	res := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update %s/%d: %w", c, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func modelFor(c models.Collection) any {
	switch c {
	case models.CollectionBrands:
		return &models.Brand{}
	case models.CollectionModels:
		return &models.CarModel{}
	case models.CollectionUpcoming:
		return &models.UpcomingCar{}
	case models.CollectionVariants:
		return &models.Variant{}
	}
	return nil
}

type documenter interface {
	Document() models.Document
}

func toDocuments[T documenter](rows []T) []models.Document {
	docs := make([]models.Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, r.Document())
	}
	return docs
}
