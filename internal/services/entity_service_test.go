package services

import (
	"context"
	"log"
	"os"
	"testing"

	"biasharaBack/internal/models"
)

type stubEntityStore struct {
	entities []models.Entity
	lists    int
	gets     int
	saved    []models.Entity
	updates  []struct {
		id    string
		score float64
		total int
	}
}

func (s *stubEntityStore) List(ctx context.Context) ([]models.Entity, error) {
	s.lists++
	return s.entities, nil
}

func (s *stubEntityStore) Get(ctx context.Context, id string) (models.Entity, error) {
	s.gets++
	for _, e := range s.entities {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Entity{}, models.ErrNoRecord
}

func (s *stubEntityStore) Save(ctx context.Context, e models.Entity) error {
	s.saved = append(s.saved, e)
	return nil
}

func (s *stubEntityStore) UpdateAggregates(ctx context.Context, id string, score float64, totalReviews int) error {
	s.updates = append(s.updates, struct {
		id    string
		score float64
		total int
	}{id, score, totalReviews})
	return nil
}

type mapCache struct {
	data map[string]string
}

func newMapCache() *mapCache { return &mapCache{data: map[string]string{}} }

func (c *mapCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return "", models.ErrNoRecord
}

func (c *mapCache) Set(ctx context.Context, key, value string) error {
	c.data[key] = value
	return nil
}

func (c *mapCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func newTestEntityService(store *stubEntityStore, cache Cache) *EntityService {
	return &EntityService{
		Entities: store,
		Cache:    cache,
		ErrorLog: log.New(os.Stderr, "", 0),
	}
}

func TestListEntitiesReadsThroughCache(t *testing.T) {
	store := &stubEntityStore{entities: []models.Entity{{ID: "e1", Name: "Mama Njeri"}}}
	svc := newTestEntityService(store, newMapCache())

	first, err := svc.ListEntities(context.Background())
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	second, err := svc.ListEntities(context.Background())
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	if store.lists != 1 {
		t.Errorf("store list calls = %d, want 1", store.lists)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Name != "Mama Njeri" {
		t.Errorf("unexpected results %v / %v", first, second)
	}
}

func TestSaveEntityInvalidatesCache(t *testing.T) {
	store := &stubEntityStore{entities: []models.Entity{{ID: "e1"}}}
	svc := newTestEntityService(store, newMapCache())

	svc.ListEntities(context.Background())
	svc.GetEntity(context.Background(), "e1")

	if err := svc.SaveEntity(context.Background(), models.Entity{ID: "e1", Name: "Renamed"}); err != nil {
		t.Fatalf("SaveEntity: %v", err)
	}

	svc.ListEntities(context.Background())
	svc.GetEntity(context.Background(), "e1")
	if store.lists != 2 || store.gets != 2 {
		t.Errorf("lists=%d gets=%d, want 2/2 after invalidation", store.lists, store.gets)
	}
}

func TestApplyReviewAggregatesWritesAndInvalidates(t *testing.T) {
	store := &stubEntityStore{entities: []models.Entity{{ID: "e1"}}}
	cache := newMapCache()
	svc := newTestEntityService(store, cache)

	svc.GetEntity(context.Background(), "e1")
	if err := svc.ApplyReviewAggregates(context.Background(), "e1", 4.5, 12); err != nil {
		t.Fatalf("ApplyReviewAggregates: %v", err)
	}
	if len(store.updates) != 1 || store.updates[0].score != 4.5 || store.updates[0].total != 12 {
		t.Errorf("updates = %+v", store.updates)
	}
	if _, ok := cache.data[cacheKeyEntityPrefix+"e1"]; ok {
		t.Error("entity cache entry should be dropped")
	}
}
