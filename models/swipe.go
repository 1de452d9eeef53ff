package models

import "time"

// Swipe records one like/pass decision. Written once, never mutated.
type Swipe struct {
	UserID         string       `json:"user_id" bson:"user_id"`
	NeighborhoodID string       `json:"neighborhood_id" bson:"neighborhood_id"`
	IsLike         bool         `json:"is_like" bson:"is_like"`
	Timestamp      time.Time    `json:"timestamp" bson:"timestamp"`
	Neighborhood   Neighborhood `json:"neighborhood" bson:"neighborhood"`
}

// Match is written for every liking swipe. Swiping right on the same
// neighborhood twice produces two matches; they are not deduplicated.
type Match struct {
	UserID         string       `json:"user_id" bson:"user_id"`
	NeighborhoodID string       `json:"neighborhood_id" bson:"neighborhood_id"`
	Score          int          `json:"score" bson:"score"`
	Timestamp      time.Time    `json:"timestamp" bson:"timestamp"`
	Neighborhood   Neighborhood `json:"neighborhood" bson:"neighborhood"`
}
