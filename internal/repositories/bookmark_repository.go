package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type BookmarkRepository struct {
	Client *firestore.Client
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID string) ([]models.BookmarkList, error) {
	iter := r.Client.Collection(colBookmarkLists).
		Where("userId", "==", userID).
		OrderBy("updatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	lists := []models.BookmarkList{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var l models.BookmarkList
		if err := doc.DataTo(&l); err != nil {
			return nil, err
		}
		l.ID = doc.Ref.ID
		if l.EntityIDs == nil {
			l.EntityIDs = []string{}
		}
		lists = append(lists, l)
	}
	return lists, nil
}

func (r *BookmarkRepository) Create(ctx context.Context, l models.BookmarkList) (string, error) {
	ref, _, err := r.Client.Collection(colBookmarkLists).Add(ctx, map[string]interface{}{
		"userId":      l.UserID,
		"name":        l.Name,
		"description": l.Description,
		"isPublic":    l.IsPublic,
		"entityIds":   []string{},
		"createdAt":   firestore.ServerTimestamp,
		"updatedAt":   firestore.ServerTimestamp,
	})
	if err != nil {
		return "", mapStoreError(err)
	}
	return ref.ID, nil
}

func (r *BookmarkRepository) Get(ctx context.Context, id string) (models.BookmarkList, error) {
	snap, err := r.Client.Collection(colBookmarkLists).Doc(id).Get(ctx)
	if err != nil {
		return models.BookmarkList{}, mapStoreError(err)
	}
	var l models.BookmarkList
	if err := snap.DataTo(&l); err != nil {
		return models.BookmarkList{}, err
	}
	l.ID = snap.Ref.ID
	if l.EntityIDs == nil {
		l.EntityIDs = []string{}
	}
	return l, nil
}

func (r *BookmarkRepository) SetEntities(ctx context.Context, id string, entityIDs []string) error {
	_, err := r.Client.Collection(colBookmarkLists).Doc(id).Update(ctx, []firestore.Update{
		{Path: "entityIds", Value: entityIDs},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	return mapStoreError(err)
}
