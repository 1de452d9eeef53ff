package models

// FeatureRatings holds the eight 1-5 ratings every neighborhood is scored on.
type FeatureRatings struct {
	Safety          int `json:"safety" bson:"safety"`
	Affordability   int `json:"affordability" bson:"affordability"`
	Nightlife       int `json:"nightlife" bson:"nightlife"`
	GreenSpaces     int `json:"greenSpaces" bson:"green_spaces"`
	PublicTransport int `json:"publicTransport" bson:"public_transport"`
	Dining          int `json:"dining" bson:"dining"`
	Shopping        int `json:"shopping" bson:"shopping"`
	Community       int `json:"community" bson:"community"`
}

// Values returns the ratings in declaration order.
func (f FeatureRatings) Values() []int {
	return []int{
		f.Safety, f.Affordability, f.Nightlife, f.GreenSpaces,
		f.PublicTransport, f.Dining, f.Shopping, f.Community,
	}
}

// Neighborhood is a swipe card. Cards from the static catalog are immutable
// once a session has started; the admin screen manages a separate store-backed
// collection of the same shape.
type Neighborhood struct {
	ID          string         `json:"id" bson:"_id"`
	Name        string         `json:"name" bson:"name"`
	City        string         `json:"city" bson:"city"`
	Image       string         `json:"image" bson:"image"`
	Description string         `json:"description" bson:"description"`
	Features    FeatureRatings `json:"features" bson:"features"`
	Highlights  []string       `json:"highlights" bson:"highlights"`
}
