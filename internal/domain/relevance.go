package domain

import (
	"math"
	"slices"
	"strings"
	"time"
)

// RelevanceConfig holds the point pools and category mappings used by ScoreEvent.
type RelevanceConfig struct {
	// InterestMatchPoints is added once for every profile interest whose categories include the event's.
	InterestMatchPoints int `yaml:"interest_match_points"`

	// CapInterestSubtotal limits the interest pool to a single InterestMatchPoints award.
	// When false, several matching interests accumulate and only the final total is clamped.
	CapInterestSubtotal bool `yaml:"cap_interest_subtotal"`

	CareerMatchPoints int `yaml:"career_match_points"`
	GeoMatchPoints    int `yaml:"geo_match_points"`

	// RecencyMaxPoints is awarded to an event created at the evaluation time and loses one
	// point per started day of age.
	RecencyMaxPoints int `yaml:"recency_max_points"`

	InterestCategories map[Interest][]Category  `yaml:"interest_categories"`
	CareerCategories   map[CareerField]Category `yaml:"career_categories"`
}

// MaxRelevanceScore is the upper clamp of every relevance score.
const MaxRelevanceScore = 100

// DefaultRelevanceConfig returns the production weights and mappings.
func DefaultRelevanceConfig() RelevanceConfig {
	return RelevanceConfig{
		InterestMatchPoints: 40,
		CapInterestSubtotal: false,
		CareerMatchPoints:   30,
		GeoMatchPoints:      20,
		RecencyMaxPoints:    10,
		InterestCategories: map[Interest][]Category{
			InterestMoney:       {CategoryEconomy},
			InterestHealth:      {CategoryHealth},
			InterestEnvironment: {CategoryEnvironment},
			InterestTech:        {CategoryTechnology},
			InterestWork:        {CategoryEconomy, CategoryTechnology},
		},
		CareerCategories: map[CareerField]Category{
			CareerTechnology:    CategoryTechnology,
			CareerFinance:       CategoryEconomy,
			CareerHealthcare:    CategoryHealth,
			CareerGovernment:    CategoryPolitics,
			CareerMedia:         CategorySocial,
			CareerEducation:     CategorySocial,
			CareerRetail:        CategoryEconomy,
			CareerManufacturing: CategoryEconomy,
		},
	}
}

// RelevanceBreakdown is the per-pool contribution behind a score.
type RelevanceBreakdown struct {
	Interest int
	Career   int
	Geo      int
	Recency  int
}

// Total sums the pools and clamps the result to [0, MaxRelevanceScore].
func (b RelevanceBreakdown) Total() int {
	total := b.Interest + b.Career + b.Geo + b.Recency
	return max(0, min(MaxRelevanceScore, total))
}

// ScoreEvent computes how well an event matches a profile at time now, from 0 to 100.
// It is deterministic and has no side effects.
func ScoreEvent(event Event, profile UserProfile, config RelevanceConfig, now time.Time) int {
	return ScoreEventBreakdown(event, profile, config, now).Total()
}

// ScoreEventBreakdown is ScoreEvent with the individual pool contributions exposed.
func ScoreEventBreakdown(event Event, profile UserProfile, config RelevanceConfig, now time.Time) RelevanceBreakdown {
	return RelevanceBreakdown{
		Interest: interestPoints(event.Category, profile.Interests, config),
		Career:   careerPoints(event.Category, profile.CareerField, config),
		Geo:      geoPoints(event, profile.Country, config),
		Recency:  recencyPoints(event.CreatedAt, now, config),
	}
}

func interestPoints(category Category, interests []Interest, config RelevanceConfig) int {
	points := 0
	seen := make(map[Interest]struct{}, len(interests))
	for _, interest := range interests {
		if _, ok := seen[interest]; ok {
			continue
		}
		seen[interest] = struct{}{}

		if slices.Contains(config.InterestCategories[interest], category) {
			points += config.InterestMatchPoints
		}
	}

	if config.CapInterestSubtotal {
		points = min(points, config.InterestMatchPoints)
	}
	return points
}

func careerPoints(category Category, career CareerField, config RelevanceConfig) int {
	mapped, ok := config.CareerCategories[career]
	if !ok || mapped != category {
		return 0
	}
	return config.CareerMatchPoints
}

func geoPoints(event Event, country string, config RelevanceConfig) int {
	needle := strings.ToLower(strings.TrimSpace(country))
	if needle == "" {
		return 0
	}
	if !strings.Contains(strings.ToLower(event.SearchableText()), needle) {
		return 0
	}
	return config.GeoMatchPoints
}

// recencyPoints loses one point per started day since creation, so any age above zero
// costs at least one point and the boost is gone after RecencyMaxPoints days.
func recencyPoints(createdAt, now time.Time, config RelevanceConfig) int {
	age := now.Sub(createdAt)
	if age < 0 {
		age = -age
	}

	days := int(math.Ceil(age.Hours() / 24))
	return max(0, config.RecencyMaxPoints-days)
}
