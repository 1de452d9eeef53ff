// Package catalog holds the static neighborhood deck consumed by the swipe
// engine, and the fixed set of purchasable services. The deck is compiled in
// and read-only; the admin-managed neighborhoods collection is a separate
// store-backed copy.
package catalog

import "github.com/Sunilkumarmehta2002/swipemyhood/models"

// ServiceOption is one of the fixed purchasable services offered per
// neighborhood.
type ServiceOption struct {
	ID          string             `json:"id"`
	Type        models.ServiceType `json:"type"`
	Name        string             `json:"name"`
	Price       int                `json:"price"`
	Description string             `json:"description"`
	Duration    string             `json:"duration"`
	Features    []string           `json:"features"`
}

// Services returns the purchasable service options.
func Services() []ServiceOption {
	return []ServiceOption{
		{
			ID:          "consultation",
			Type:        models.ServiceConsultation,
			Name:        "Neighborhood Consultation",
			Price:       99,
			Description: "Get expert advice about this neighborhood from local real estate professionals",
			Duration:    "1 hour",
			Features: []string{
				"Market analysis and trends",
				"School district information",
				"Local amenities overview",
				"Transportation options",
				"Future development plans",
			},
		},
		{
			ID:          "tour",
			Type:        models.ServiceTour,
			Name:        "Guided Neighborhood Tour",
			Price:       199,
			Description: "Experience the neighborhood firsthand with a local expert guide",
			Duration:    "3 hours",
			Features: []string{
				"Walking tour of key areas",
				"Visit local hotspots",
				"Meet local business owners",
				"Transportation included",
				"Personalized recommendations",
			},
		},
		{
			ID:          "relocation_package",
			Type:        models.ServiceRelocationPackage,
			Name:        "Complete Relocation Package",
			Price:       499,
			Description: "Full-service relocation assistance for moving to this neighborhood",
			Duration:    "30 days support",
			Features: []string{
				"Everything from consultation & tour",
				"Moving company recommendations",
				"Utility setup assistance",
				"Local service provider contacts",
				"Welcome package with local deals",
				"30-day support hotline",
			},
		},
	}
}

// ServiceByID looks up a service option by its ID.
func ServiceByID(id string) (ServiceOption, bool) {
	for _, s := range Services() {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceOption{}, false
}

// Neighborhoods returns a fresh copy of the static deck.
func Neighborhoods() []models.Neighborhood {
	deck := make([]models.Neighborhood, len(neighborhoods))
	copy(deck, neighborhoods)
	return deck
}

var neighborhoods = []models.Neighborhood{
	{
		ID:          "1",
		Name:        "Basti Sheikh",
		City:        "Jalandhar, Punjab",
		Image:       "https://images.pexels.com/photos/460672/pexels-photo-460672.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "One of the oldest and culturally rich localities in Jalandhar. Known for its vibrant community, traditional bazaars, and deep-rooted heritage. It reflects the authentic essence of the city.",
		Features: models.FeatureRatings{
			Safety: 3, Affordability: 5, Nightlife: 2, GreenSpaces: 2,
			PublicTransport: 4, Dining: 4, Shopping: 3, Community: 5,
		},
		Highlights: []string{"Cultural Heritage", "Traditional Bazaars", "Community Events", "Affordable Living"},
	},
	{
		ID:          "2",
		Name:        "Urban Estate Phase 1 & 2",
		City:        "Jalandhar, Punjab",
		Image:       "https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "Modern residential area with good connectivity, decent affordability, and growing commercial development. Preferred by young families and working professionals.",
		Features: models.FeatureRatings{
			Safety: 4, Affordability: 4, Nightlife: 2, GreenSpaces: 3,
			PublicTransport: 3, Dining: 3, Shopping: 4, Community: 4,
		},
		Highlights: []string{"Planned Layout", "Schools Nearby", "Parks", "Affordable Housing"},
	},
	{
		ID:          "3",
		Name:        "Lajpat Nagar",
		City:        "Jalandhar, Punjab",
		Image:       "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "Bustling market area with traditional bazaars, street food, and dense housing. Offers rich cultural vibes and budget-friendly lifestyle.",
		Features: models.FeatureRatings{
			Safety: 3, Affordability: 5, Nightlife: 3, GreenSpaces: 2,
			PublicTransport: 4, Dining: 5, Shopping: 4, Community: 5,
		},
		Highlights: []string{"Street Markets", "Affordable Living", "Cultural Diversity", "Local Eateries"},
	},
	{
		ID:          "4",
		Name:        "Guru Gobind Singh Avenue",
		City:        "Jalandhar, Punjab",
		Image:       "https://images.pexels.com/photos/139306/pexels-photo-139306.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "A quiet and serene area with newly developed infrastructure and low traffic. Ideal for retirees and small families seeking peace.",
		Features: models.FeatureRatings{
			Safety: 4, Affordability: 4, Nightlife: 2, GreenSpaces: 4,
			PublicTransport: 3, Dining: 3, Shopping: 3, Community: 4,
		},
		Highlights: []string{"Quiet Streets", "Low Traffic", "Green Environment", "Peaceful Lifestyle"},
	},
	{
		ID:          "5",
		Name:        "Green Model Town",
		City:        "Jalandhar, Punjab",
		Image:       "https://images.pexels.com/photos/693421/pexels-photo-693421.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "Residential locality that lives up to its name with ample green cover, parks, and family-friendly vibe. Great for morning walkers and nature lovers.",
		Features: models.FeatureRatings{
			Safety: 5, Affordability: 3, Nightlife: 2, GreenSpaces: 5,
			PublicTransport: 3, Dining: 3, Shopping: 3, Community: 5,
		},
		Highlights: []string{"Green Parks", "Peaceful Ambience", "Family Friendly", "Community Life"},
	},
	{
		ID:          "6",
		Name:        "GTB Nagar",
		City:        "Jalandhar, Punjab",
		Image:       "https://images.pexels.com/photos/2014422/pexels-photo-2014422.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "Student hub near educational institutions like DAV University and Lovely Professional University. Vibrant, affordable, and youth-oriented.",
		Features: models.FeatureRatings{
			Safety: 3, Affordability: 4, Nightlife: 4, GreenSpaces: 3,
			PublicTransport: 5, Dining: 4, Shopping: 3, Community: 4,
		},
		Highlights: []string{"Hostels & PGs", "Student Cafes", "Proximity to Universities", "Public Transport"},
	},
	{
		ID:          "7",
		Name:        "Mitha Pur",
		City:        "Jalandhar, Punjab",
		Image:       "https://images.pexels.com/photos/210617/pexels-photo-210617.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "Rapidly developing area with mixed housing, modern apartments, and growing amenities. Gaining popularity among mid-income buyers.",
		Features: models.FeatureRatings{
			Safety: 4, Affordability: 4, Nightlife: 2, GreenSpaces: 3,
			PublicTransport: 3, Dining: 3, Shopping: 3, Community: 4,
		},
		Highlights: []string{"New Developments", "Budget Housing", "Emerging Market", "Accessible Location"},
	},
	{
		ID:          "8",
		Name:        "Adarsh Nagar",
		City:        "Jalandhar, Punjab",
		Image:       "https://images.pexels.com/photos/2611022/pexels-photo-2611022.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "Well-connected and balanced neighborhood with a mix of residential colonies, schools, and local markets. Offers both peace and convenience.",
		Features: models.FeatureRatings{
			Safety: 4, Affordability: 4, Nightlife: 3, GreenSpaces: 3,
			PublicTransport: 4, Dining: 4, Shopping: 4, Community: 4,
		},
		Highlights: []string{"Central Location", "Balanced Lifestyle", "Schools Nearby", "Mixed Residential"},
	},
}
