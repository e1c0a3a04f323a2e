package domain

// ObjectType names an advertising platform object kind.
type ObjectType string

const (
	ObjectCampaign   ObjectType = "campaign"
	ObjectAdSet      ObjectType = "ad_set"
	ObjectAdCreative ObjectType = "ad_creative"
	ObjectAd         ObjectType = "ad"
)

// PlatformObject is an object that exists on the advertising platform.
type PlatformObject struct {
	ID     string     `json:"id"`
	Type   ObjectType `json:"type"`
	Name   string     `json:"name,omitempty"`
	Status Status     `json:"status,omitempty"`
}

// CampaignFields are the fields sent when creating a campaign.
type CampaignFields struct {
	Name                string
	Objective           Objective
	Status              Status
	SpecialAdCategories []string
}

// AdSetFields are the fields sent when creating an ad set.
type AdSetFields struct {
	CampaignID       string
	Name             string
	DailyBudget      *int64
	LifetimeBudget   *int64
	OptimizationGoal string
	BillingEvent     string
	BidStrategy      string
	Targeting        *Targeting
	StartTime        string
	EndTime          string
	Status           Status
}

// CreativeFields are the fields sent when creating an ad creative.
type CreativeFields struct {
	Name            string
	ObjectStorySpec *ObjectStorySpec
}

// AdFields are the fields sent when creating an ad.
type AdFields struct {
	Name       string
	AdSetID    string
	CreativeID string
	Status     Status
}
