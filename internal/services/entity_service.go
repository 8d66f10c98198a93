package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"biasharaBack/internal/models"
)

const (
	cacheKeyEntities     = "entities:all"
	cacheKeyEntityPrefix = "entity:"
)

type EntityStore interface {
	List(ctx context.Context) ([]models.Entity, error)
	Get(ctx context.Context, id string) (models.Entity, error)
	Save(ctx context.Context, e models.Entity) error
	UpdateAggregates(ctx context.Context, id string, score float64, totalReviews int) error
}

// Cache reports a miss as models.ErrNoRecord.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
}

// EntityService serves the catalog through a read-through cache. Cache
// failures degrade to direct store reads, never to request failures.
type EntityService struct {
	Entities EntityStore
	Cache    Cache
	ErrorLog *log.Logger
}

func (s *EntityService) ListEntities(ctx context.Context) ([]models.Entity, error) {
	if cached, err := s.Cache.Get(ctx, cacheKeyEntities); err == nil {
		var entities []models.Entity
		if err := json.Unmarshal([]byte(cached), &entities); err == nil {
			return entities, nil
		}
	} else if !errors.Is(err, models.ErrNoRecord) {
		s.ErrorLog.Printf("entity cache read: %v", err)
	}

	entities, err := s.Entities.List(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(entities); err == nil {
		if err := s.Cache.Set(ctx, cacheKeyEntities, string(data)); err != nil {
			s.ErrorLog.Printf("entity cache write: %v", err)
		}
	}
	return entities, nil
}

func (s *EntityService) GetEntity(ctx context.Context, id string) (models.Entity, error) {
	key := cacheKeyEntityPrefix + id
	if cached, err := s.Cache.Get(ctx, key); err == nil {
		var e models.Entity
		if err := json.Unmarshal([]byte(cached), &e); err == nil {
			return e, nil
		}
	} else if !errors.Is(err, models.ErrNoRecord) {
		s.ErrorLog.Printf("entity cache read: %v", err)
	}

	e, err := s.Entities.Get(ctx, id)
	if err != nil {
		return models.Entity{}, err
	}
	if data, err := json.Marshal(e); err == nil {
		if err := s.Cache.Set(ctx, key, string(data)); err != nil {
			s.ErrorLog.Printf("entity cache write: %v", err)
		}
	}
	return e, nil
}

func (s *EntityService) SaveEntity(ctx context.Context, e models.Entity) error {
	if err := s.Entities.Save(ctx, e); err != nil {
		return err
	}
	s.invalidate(ctx, e.ID)
	return nil
}

// ApplyReviewAggregates writes the recomputed score and review count onto
// the entity document and drops the stale cache entries.
func (s *EntityService) ApplyReviewAggregates(ctx context.Context, id string, score float64, totalReviews int) error {
	if err := s.Entities.UpdateAggregates(ctx, id, score, totalReviews); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *EntityService) invalidate(ctx context.Context, id string) {
	if err := s.Cache.Del(ctx, cacheKeyEntities, cacheKeyEntityPrefix+id); err != nil {
		s.ErrorLog.Printf("entity cache invalidate: %v", err)
	}
}
