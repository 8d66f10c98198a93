package models

import "time"

type Review struct {
	ID               string    `json:"id" firestore:"id"`
	EntityID         string    `json:"entity_id" firestore:"entityId"`
	UserID           string    `json:"user_id" firestore:"userId"`
	UserName         string    `json:"user_name" firestore:"userName"`
	UserAvatar       string    `json:"user_avatar,omitempty" firestore:"userAvatar,omitempty"`
	Rating           int       `json:"rating" firestore:"rating"`
	ReviewText       string    `json:"review_text" firestore:"reviewText"`
	DateOfExperience string    `json:"date_of_experience" firestore:"dateOfExperience"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	PhotoURLs        []string  `json:"photo_urls,omitempty" firestore:"photoUrls,omitempty"`
	IsVerified       bool      `json:"is_verified" firestore:"isVerified"`
	Likes            int       `json:"likes" firestore:"likes"`
	Reports          int       `json:"reports" firestore:"reports"`
}

type ReviewDraft struct {
	ID               string    `json:"id" firestore:"id"`
	UserID           string    `json:"user_id" firestore:"userId"`
	EntityID         string    `json:"entity_id" firestore:"entityId"`
	EntityName       string    `json:"entity_name" firestore:"entityName"`
	Rating           int       `json:"rating,omitempty" firestore:"rating,omitempty"`
	ReviewText       string    `json:"review_text,omitempty" firestore:"reviewText,omitempty"`
	PhotoURLs        []string  `json:"photo_urls,omitempty" firestore:"photoUrls,omitempty"`
	DateOfExperience string    `json:"date_of_experience,omitempty" firestore:"dateOfExperience,omitempty"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}
