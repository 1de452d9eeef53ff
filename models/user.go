package models

import "time"

// User is the account document. Preferences holds the onboarding sliders
// (feature name -> importance 1-10); nil until onboarding completes.
type User struct {
	ID                  string         `json:"id" bson:"_id"`
	Email               string         `json:"email" bson:"email"`
	Name                string         `json:"name" bson:"name"`
	Password            string         `json:"-" bson:"password"`
	IsAdmin             bool           `json:"is_admin" bson:"is_admin"`
	SuperAdmin          bool           `json:"super_admin" bson:"super_admin"`
	OnboardingCompleted bool           `json:"onboarding_completed" bson:"onboarding_completed"`
	Preferences         map[string]int `json:"preferences,omitempty" bson:"preferences,omitempty"`
	CreatedAt           time.Time      `json:"created_at" bson:"created_at"`
	LastActive          time.Time      `json:"last_active" bson:"last_active"`
}
