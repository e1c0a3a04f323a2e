package domain

import "slices"

// Objective is the platform-defined outcome a campaign optimises for.
type Objective string

const (
	ObjectiveAwareness    Objective = "OUTCOME_AWARENESS"
	ObjectiveTraffic      Objective = "OUTCOME_TRAFFIC"
	ObjectiveEngagement   Objective = "OUTCOME_ENGAGEMENT"
	ObjectiveLeads        Objective = "OUTCOME_LEADS"
	ObjectiveAppPromotion Objective = "OUTCOME_APP_PROMOTION"
	ObjectiveSales        Objective = "OUTCOME_SALES"
)

var objectives = []Objective{
	ObjectiveAwareness,
	ObjectiveTraffic,
	ObjectiveEngagement,
	ObjectiveLeads,
	ObjectiveAppPromotion,
	ObjectiveSales,
}

// Valid reports whether o is one of the supported objectives.
func (o Objective) Valid() bool {
	return slices.Contains(objectives, o)
}

// Status is the delivery state of a platform object. StatusPaused is the
// draft value: the object exists but neither spends nor serves.
type Status string

const (
	StatusPaused Status = "PAUSED"
	StatusActive Status = "ACTIVE"
)

// CampaignDraft is the top level of a campaign specification.
type CampaignDraft struct {
	Name      string    `json:"name"`
	Objective Objective `json:"objective"`
	Status    Status    `json:"status,omitempty"`
	// SpecialAdCategories lists the audience categories the campaign
	// declares (HOUSING, EMPLOYMENT, ...). Empty means none.
	SpecialAdCategories []string `json:"special_ad_categories,omitempty"`
}

// AdSetSpec describes a budget/targeting/schedule unit. Budgets are in minor
// currency units (cents); exactly one of DailyBudget and LifetimeBudget is
// expected.
type AdSetSpec struct {
	Name             string     `json:"name"`
	DailyBudget      *int64     `json:"daily_budget,omitempty"`
	LifetimeBudget   *int64     `json:"lifetime_budget,omitempty"`
	OptimizationGoal string     `json:"optimization_goal,omitempty"`
	BillingEvent     string     `json:"billing_event,omitempty"`
	BidStrategy      string     `json:"bid_strategy,omitempty"`
	Targeting        *Targeting `json:"targeting,omitempty"`
	StartTime        string     `json:"start_time,omitempty"`
	EndTime          string     `json:"end_time,omitempty"`
}

// AdSpec is a single ad. It is not bound to an ad set; the materializer
// decides the binding.
type AdSpec struct {
	Name     string        `json:"name"`
	Creative *CreativeSpec `json:"creative,omitempty"`
}

// CampaignSpec is the structured description of a campaign tree produced
// from model output.
type CampaignSpec struct {
	Campaign *CampaignDraft `json:"campaign"`
	AdSets   []AdSetSpec    `json:"ad_sets"`
	Ads      []AdSpec       `json:"ads,omitempty"`
}

// Clone returns a deep copy so that validation can inject defaults without
// touching the caller's value.
func (s CampaignSpec) Clone() CampaignSpec {
	out := CampaignSpec{}
	if s.Campaign != nil {
		c := *s.Campaign
		c.SpecialAdCategories = slices.Clone(s.Campaign.SpecialAdCategories)
		out.Campaign = &c
	}
	if s.AdSets != nil {
		out.AdSets = make([]AdSetSpec, len(s.AdSets))
		for i, as := range s.AdSets {
			out.AdSets[i] = as.clone()
		}
	}
	if s.Ads != nil {
		out.Ads = make([]AdSpec, len(s.Ads))
		for i, ad := range s.Ads {
			out.Ads[i] = AdSpec{Name: ad.Name, Creative: ad.Creative.clone()}
		}
	}
	return out
}

func (a AdSetSpec) clone() AdSetSpec {
	out := a
	if a.DailyBudget != nil {
		v := *a.DailyBudget
		out.DailyBudget = &v
	}
	if a.LifetimeBudget != nil {
		v := *a.LifetimeBudget
		out.LifetimeBudget = &v
	}
	out.Targeting = a.Targeting.clone()
	return out
}

// ValidatedSpec is a CampaignSpec that passed validation. The zero value is
// not valid; values are only produced by spec.Validate.
type ValidatedSpec struct {
	spec CampaignSpec
}

// NewValidatedSpec wraps s. It is meant for the validator; other callers
// must go through validation.
func NewValidatedSpec(s CampaignSpec) ValidatedSpec {
	return ValidatedSpec{spec: s.Clone()}
}

// Spec returns a copy of the wrapped specification.
func (v ValidatedSpec) Spec() CampaignSpec {
	return v.spec.Clone()
}

// IsZero reports whether v was never produced by the validator.
func (v ValidatedSpec) IsZero() bool {
	return v.spec.Campaign == nil
}
