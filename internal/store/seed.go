package store

import "github.com/aevohorology/storefront-service/internal/domain"

// Built-in AEVO catalog used when the snapshot cache is cold, so the
// storefront renders something before the first successful refresh.

func SeedProducts() []domain.Product {
	meridianOriginal := 6200.0

	return []domain.Product{
		{
			ID:          "aevo-meridian-01",
			Name:        "Meridian Grand Regulator",
			Description: "A floor-standing regulator clock with a hand-guilloched brass dial and a deadbeat escapement finished to chronometer tolerances.",
			Price:       5400,
			OriginalPrice: &meridianOriginal,
			Category:    "Regulators",
			Images: []string{
				"https://cdn.aevo.example/meridian-grand/front.jpg",
				"https://cdn.aevo.example/meridian-grand/movement.jpg",
			},
			Specs: map[string]string{
				"Movement": "8-day mechanical, deadbeat escapement",
				"Case":     "Fumed oak, hand-rubbed lacquer",
				"Height":   "198 cm",
			},
			Features: []domain.Feature{
				{Title: "Eight-day reserve", Description: "A single wind carries the movement through the week."},
				{Title: "Temperature compensation", Description: "Gridiron pendulum holds rate across seasons."},
			},
			Tag:         domain.TagBestSeller,
			Stock:       3,
			Rating:      4.9,
			ReviewCount: 27,
			CreatedAt:   1735689600,
		},
		{
			ID:          "aevo-atelier-02",
			Name:        "Atelier Table Clock No. 2",
			Description: "A skeletonised table clock in a sapphire cylinder, assembled and adjusted by a single watchmaker.",
			Price:       2950,
			Category:    "Table Clocks",
			Images: []string{
				"https://cdn.aevo.example/atelier-02/hero.jpg",
			},
			Specs: map[string]string{
				"Movement": "15-jewel manual wind",
				"Case":     "Sapphire crystal cylinder",
				"Diameter": "14 cm",
			},
			Features: []domain.Feature{
				{Title: "Open movement", Description: "Every wheel visible through the sapphire case."},
			},
			Tag:         domain.TagLatest,
			Stock:       8,
			Rating:      4.7,
			ReviewCount: 11,
			CreatedAt:   1733011200,
		},
		{
			ID:          "aevo-voyager-03",
			Name:        "Voyager Carriage Clock",
			Description: "A travel clock in the English carriage tradition, with an alarm train and a platform escapement shock-mounted for the road.",
			Price:       1780,
			Category:    "Carriage Clocks",
			Images: []string{
				"https://cdn.aevo.example/voyager/closed.jpg",
				"https://cdn.aevo.example/voyager/open.jpg",
			},
			Specs: map[string]string{
				"Movement": "Platform lever escapement",
				"Case":     "Gilt brass, bevelled glass",
				"Height":   "17 cm",
			},
			Features: []domain.Feature{
				{Title: "Alarm train", Description: "Independent barrel drives a polished bell strike."},
			},
			Tag:         domain.TagNewArrival,
			Stock:       12,
			Rating:      4.5,
			ReviewCount: 6,
			CreatedAt:   1730419200,
		},
		{
			ID:          "aevo-sentinel-04",
			Name:        "Sentinel Wall Chronometer",
			Description: "A marine-chronometer-grade wall clock with a silvered sector dial and centre seconds.",
			Price:       960,
			Category:    "Wall Clocks",
			Images: []string{
				"https://cdn.aevo.example/sentinel/dial.jpg",
			},
			Specs: map[string]string{
				"Movement": "High-torque quartz chronometer",
				"Case":     "Brushed steel",
				"Diameter": "31 cm",
			},
			Features: []domain.Feature{
				{Title: "Sector dial", Description: "Silvered chapter ring with blued-steel hands."},
			},
			Tag:         domain.TagNone,
			Stock:       24,
			Rating:      4.3,
			ReviewCount: 19,
			CreatedAt:   1727740800,
		},
	}
}

func SeedBanners() []domain.Banner {
	return []domain.Banner{
		{
			ID:           "banner-winter-salon",
			Title:        "The Winter Salon",
			Subtitle:     "Regulators and table clocks from the current atelier run",
			ImageURL:     "https://cdn.aevo.example/banners/winter-salon.jpg",
			Tag:          "Collection",
			DisplayOrder: 1,
		},
		{
			ID:           "banner-voyager",
			Title:        "Voyager, Reissued",
			Subtitle:     "The carriage clock returns with a shock-mounted platform",
			ImageURL:     "https://cdn.aevo.example/banners/voyager.jpg",
			Tag:          "New Arrival",
			DisplayOrder: 2,
		},
	}
}

func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: "cat-carriage", Name: "Carriage Clocks"},
		{ID: "cat-regulators", Name: "Regulators"},
		{ID: "cat-table", Name: "Table Clocks"},
		{ID: "cat-wall", Name: "Wall Clocks"},
	}
}
