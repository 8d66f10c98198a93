package models

import "time"

type UserStats struct {
	TotalReviews      int `json:"total_reviews" firestore:"totalReviews"`
	TotalPhotos       int `json:"total_photos" firestore:"totalPhotos"`
	TotalHelpfulVotes int `json:"total_helpful_votes" firestore:"totalHelpfulVotes"`
	TotalPoints       int `json:"total_points" firestore:"totalPoints"`
	TotalViews        int `json:"total_views" firestore:"totalViews"`
	ReviewsThisMonth  int `json:"reviews_this_month" firestore:"reviewsThisMonth"`
	CitiesReviewed    int `json:"cities_reviewed" firestore:"citiesReviewed"`
}

type Badge struct {
	ID          string    `json:"id" firestore:"id"`
	UserID      string    `json:"user_id" firestore:"userId"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Icon        string    `json:"icon" firestore:"icon"`
	EarnedAt    time.Time `json:"earned_at" firestore:"earnedAt"`
	Tier        string    `json:"tier" firestore:"tier"`
}

// UserProfile is the read-side composite assembled by the dashboard; it is
// never persisted as one document.
type UserProfile struct {
	User
	Stats  UserStats `json:"stats"`
	Badges []Badge   `json:"badges"`
	Level  int       `json:"level"`
}

// LevelForPoints maps a point total to a level. Thresholds are fixed;
// from 1000 points up the level falls through to points/200+1.
func LevelForPoints(points int) int {
	switch {
	case points < 50:
		return 1
	case points < 150:
		return 2
	case points < 300:
		return 3
	case points < 500:
		return 4
	case points < 1000:
		return 5
	}
	return points/200 + 1
}
