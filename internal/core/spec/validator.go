package spec

import (
	"fmt"
	"strings"
	"time"

	"adpilot/internal/core/domain"
)

// Rule identifiers reported in domain.ValidationError.
const (
	RuleCampaignRequired  = "campaign_required"
	RuleCampaignName      = "campaign_name"
	RuleCampaignObjective = "campaign_objective"
	RuleDraftStatus       = "draft_status"
	RuleAdSetsRequired    = "ad_sets_required"
	RuleBudget            = "budget"
	RuleTargetingAge      = "targeting_age"
	RuleSchedule          = "schedule"
	RuleAdCreative        = "ad_creative"
	RuleSchema            = "schema"
)

// Validate checks s and returns a validated copy with the campaign status
// defaulted to paused. The first violated rule is returned as a
// *domain.ValidationError; s itself is never modified.
func Validate(s *domain.CampaignSpec) (domain.ValidatedSpec, error) {
	if s == nil || s.Campaign == nil {
		return domain.ValidatedSpec{}, reject(RuleCampaignRequired, "specification has no campaign")
	}
	out := s.Clone()
	c := out.Campaign
	c.Objective = domain.Objective(strings.ToUpper(strings.TrimSpace(string(c.Objective))))
	c.Status = domain.Status(strings.ToUpper(strings.TrimSpace(string(c.Status))))
	if strings.TrimSpace(c.Name) == "" {
		return domain.ValidatedSpec{}, reject(RuleCampaignName, "campaign name is empty")
	}
	if !c.Objective.Valid() {
		return domain.ValidatedSpec{}, reject(RuleCampaignObjective,
			fmt.Sprintf("campaign objective %q is not supported", c.Objective))
	}
	switch c.Status {
	case "":
		c.Status = domain.StatusPaused
	case domain.StatusPaused:
	default:
		return domain.ValidatedSpec{}, reject(RuleDraftStatus,
			fmt.Sprintf("campaign status %q requested; campaigns are only created %s", c.Status, domain.StatusPaused))
	}

	if len(out.AdSets) == 0 {
		return domain.ValidatedSpec{}, reject(RuleAdSetsRequired, "specification has no ad sets")
	}
	for i, as := range out.AdSets {
		if err := validateAdSet(i, as); err != nil {
			return domain.ValidatedSpec{}, err
		}
	}
	for i, ad := range out.Ads {
		if err := validateAd(i, ad); err != nil {
			return domain.ValidatedSpec{}, err
		}
	}
	return domain.NewValidatedSpec(out), nil
}

func validateAdSet(i int, as domain.AdSetSpec) error {
	switch {
	case as.DailyBudget != nil && as.LifetimeBudget != nil:
		return reject(RuleBudget, fmt.Sprintf("ad set %d declares both daily and lifetime budget", i))
	case as.DailyBudget == nil && as.LifetimeBudget == nil:
		return reject(RuleBudget, fmt.Sprintf("ad set %d declares neither daily nor lifetime budget", i))
	case as.DailyBudget != nil && *as.DailyBudget <= 0:
		return reject(RuleBudget, fmt.Sprintf("ad set %d daily budget must be positive", i))
	case as.LifetimeBudget != nil && *as.LifetimeBudget <= 0:
		return reject(RuleBudget, fmt.Sprintf("ad set %d lifetime budget must be positive", i))
	}

	if t := as.Targeting; t != nil {
		if (t.AgeMin != nil && *t.AgeMin < 0) || (t.AgeMax != nil && *t.AgeMax < 0) {
			return reject(RuleTargetingAge, fmt.Sprintf("ad set %d has a negative age bound", i))
		}
		if t.AgeMin != nil && t.AgeMax != nil && *t.AgeMin > *t.AgeMax {
			return reject(RuleTargetingAge,
				fmt.Sprintf("ad set %d age_min %d is greater than age_max %d", i, *t.AgeMin, *t.AgeMax))
		}
	}

	var start, end time.Time
	var err error
	if as.StartTime != "" {
		if start, err = time.Parse(time.RFC3339, as.StartTime); err != nil {
			return reject(RuleSchedule, fmt.Sprintf("ad set %d start_time is not RFC3339", i))
		}
	}
	if as.EndTime != "" {
		if end, err = time.Parse(time.RFC3339, as.EndTime); err != nil {
			return reject(RuleSchedule, fmt.Sprintf("ad set %d end_time is not RFC3339", i))
		}
	}
	if !start.IsZero() && !end.IsZero() && !end.After(start) {
		return reject(RuleSchedule, fmt.Sprintf("ad set %d ends before it starts", i))
	}
	return nil
}

func validateAd(i int, ad domain.AdSpec) error {
	if ad.Creative == nil {
		return reject(RuleAdCreative, fmt.Sprintf("ad %d has no creative", i))
	}
	if ad.Creative.Link() == "" {
		return reject(RuleAdCreative, fmt.Sprintf("ad %d creative has no destination link", i))
	}
	if ad.Creative.Headline() == "" && ad.Creative.Body() == "" {
		return reject(RuleAdCreative, fmt.Sprintf("ad %d creative needs a headline or body text", i))
	}
	return nil
}

func reject(rule, reason string) error {
	return &domain.ValidationError{Rule: rule, Reason: reason}
}
