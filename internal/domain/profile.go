package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// CareerField is the user's self-reported field of work.
type CareerField string

const (
	CareerTechnology    CareerField = "technology"
	CareerFinance       CareerField = "finance"
	CareerHealthcare    CareerField = "healthcare"
	CareerGovernment    CareerField = "government"
	CareerMedia         CareerField = "media"
	CareerEducation     CareerField = "education"
	CareerRetail        CareerField = "retail"
	CareerManufacturing CareerField = "manufacturing"
	CareerOther         CareerField = "other"
)

var ValidCareerFields = []CareerField{
	CareerTechnology,
	CareerFinance,
	CareerHealthcare,
	CareerGovernment,
	CareerMedia,
	CareerEducation,
	CareerRetail,
	CareerManufacturing,
	CareerOther,
}

func (c CareerField) IsValid() bool {
	return slices.Contains(ValidCareerFields, c)
}

// Interest is one of the topics a user can follow during onboarding.
type Interest string

const (
	InterestMoney       Interest = "money"
	InterestHealth      Interest = "health"
	InterestEnvironment Interest = "environment"
	InterestTech        Interest = "tech"
	InterestWork        Interest = "work"
)

var ValidInterests = []Interest{
	InterestMoney,
	InterestHealth,
	InterestEnvironment,
	InterestTech,
	InterestWork,
}

func (i Interest) IsValid() bool {
	return slices.Contains(ValidInterests, i)
}

type RiskTolerance string

const (
	RiskToleranceLow    RiskTolerance = "low"
	RiskToleranceMedium RiskTolerance = "medium"
	RiskToleranceHigh   RiskTolerance = "high"
)

var ValidRiskTolerances = []RiskTolerance{
	RiskToleranceLow,
	RiskToleranceMedium,
	RiskToleranceHigh,
}

func (r RiskTolerance) IsValid() bool {
	return slices.Contains(ValidRiskTolerances, r)
}

// UserProfile holds the onboarding answers used to personalise the feed.
// Fields other than IsAdmin are only changed by the owning user.
type UserProfile struct {
	UserID              string        `json:"user_id"`
	Country             string        `json:"country"`
	CareerField         CareerField   `json:"career_field"`
	Interests           []Interest    `json:"interests"`
	RiskTolerance       RiskTolerance `json:"risk_tolerance"`
	OnboardingCompleted bool          `json:"onboarding_completed"`
	IsAdmin             bool          `json:"is_admin"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// UserPreferences is the subset of a profile a user submits from onboarding or settings.
type UserPreferences struct {
	Country       string        `json:"country"`
	CareerField   CareerField   `json:"career_field"`
	Interests     []Interest    `json:"interests"`
	RiskTolerance RiskTolerance `json:"risk_tolerance"`
}

// Normalize trims the country and removes duplicate interests, keeping first-seen order.
func (p UserPreferences) Normalize() UserPreferences {
	p.Country = strings.TrimSpace(p.Country)

	seen := make(map[Interest]struct{}, len(p.Interests))
	interests := make([]Interest, 0, len(p.Interests))
	for _, interest := range p.Interests {
		if _, ok := seen[interest]; ok {
			continue
		}
		seen[interest] = struct{}{}
		interests = append(interests, interest)
	}
	p.Interests = interests

	return p
}

// Validate checks every enum field and reports all offending fields in one error.
func (p UserPreferences) Validate() error {
	var problems []string

	if !p.CareerField.IsValid() {
		problems = append(problems, fmt.Sprintf("career_field [%s]", p.CareerField))
	}
	for _, interest := range p.Interests {
		if !interest.IsValid() {
			problems = append(problems, fmt.Sprintf("interest [%s]", interest))
		}
	}
	if !p.RiskTolerance.IsValid() {
		problems = append(problems, fmt.Sprintf("risk_tolerance [%s]", p.RiskTolerance))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPreferences, strings.Join(problems, ", "))
	}
	return nil
}
