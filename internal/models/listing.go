package models

import "time"

type ListingSubmission struct {
	ID              string      `json:"id" firestore:"id"`
	UserID          string      `json:"user_id" firestore:"userId"`
	PlanID          string      `json:"plan_id" firestore:"planId"`
	Name            string      `json:"name" firestore:"name"`
	Description     string      `json:"description" firestore:"description"`
	EntityType      string      `json:"entity_type" firestore:"entityType"`
	Categories      []string    `json:"categories" firestore:"categories"`
	Location        string      `json:"location" firestore:"location"`
	ContactInfo     ContactInfo `json:"contact_info" firestore:"contactInfo"`
	ProfilePhotoURL string      `json:"profile_photo_url,omitempty" firestore:"profilePhotoUrl,omitempty"`
	Status          string      `json:"status" firestore:"status"`
	SubmittedAt     time.Time   `json:"submitted_at" firestore:"submittedAt"`
	ReviewedAt      time.Time   `json:"reviewed_at,omitempty" firestore:"reviewedAt,omitempty"`
}

type ClaimRequest struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"user_id" firestore:"userId"`
	EntityID     string    `json:"entity_id" firestore:"entityId"`
	BusinessName string    `json:"business_name" firestore:"businessName"`
	ContactName  string    `json:"contact_name" firestore:"contactName"`
	Email        string    `json:"email" firestore:"email"`
	Phone        string    `json:"phone" firestore:"phone"`
	Message      string    `json:"message" firestore:"message"`
	Status       string    `json:"status" firestore:"status"`
	SubmittedAt  time.Time `json:"submitted_at" firestore:"submittedAt"`
	ReviewedAt   time.Time `json:"reviewed_at,omitempty" firestore:"reviewedAt,omitempty"`
}

const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)
