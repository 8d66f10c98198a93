package models

type Entity struct {
	ID            string      `json:"id" firestore:"id"`
	Name          string      `json:"name" firestore:"name"`
	EntityType    string      `json:"entity_type" firestore:"entityType"`
	Categories    []string    `json:"categories" firestore:"categories"`
	Location      string      `json:"location" firestore:"location"`
	ContactInfo   ContactInfo `json:"contact_info" firestore:"contactInfo"`
	IsClaimed     bool        `json:"is_claimed" firestore:"isClaimed"`
	BiasharaScore float64     `json:"biashara_score" firestore:"biasharaScore"`
	TotalReviews  int         `json:"total_reviews" firestore:"totalReviews"`
	Description   string      `json:"description" firestore:"description"`
	ImageURL      string      `json:"image_url" firestore:"imageUrl"`
	IsPremium     bool        `json:"is_premium,omitempty" firestore:"isPremium,omitempty"`
}

type ContactInfo struct {
	Phone   string      `json:"phone,omitempty" firestore:"phone,omitempty"`
	Email   string      `json:"email,omitempty" firestore:"email,omitempty"`
	Website string      `json:"website,omitempty" firestore:"website,omitempty"`
	Address string      `json:"address,omitempty" firestore:"address,omitempty"`
	Social  SocialLinks `json:"social,omitempty" firestore:"social,omitempty"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty" firestore:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" firestore:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty" firestore:"twitter,omitempty"`
}
