package models

// ConfigEntry is a named platform configuration value (API keys etc.),
// keyed by name in the platform-config collection.
type ConfigEntry struct {
	Key   string `json:"key" bson:"_id"`
	Value string `json:"value" bson:"value"`
}

// AlgorithmSetting is a named matching-algorithm parameter. Settings are
// stored and served for the admin screen; the score formula itself uses the
// unweighted mean of the feature ratings.
type AlgorithmSetting struct {
	Key   string  `json:"key" bson:"_id"`
	Value float64 `json:"value" bson:"value"`
}
