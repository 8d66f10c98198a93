package models

import "time"

type BookmarkList struct {
	ID          string    `json:"id" firestore:"id"`
	UserID      string    `json:"user_id" firestore:"userId"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	IsPublic    bool      `json:"is_public" firestore:"isPublic"`
	EntityIDs   []string  `json:"entity_ids" firestore:"entityIds"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
