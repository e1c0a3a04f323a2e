package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MaterializationState is a state of the materialization state machine.
type MaterializationState string

const (
	StateStart           MaterializationState = "START"
	StateCampaignCreated MaterializationState = "CAMPAIGN_CREATED"
	StateAdSetCreated    MaterializationState = "ADSET_CREATED"
	StateCreativeCreated MaterializationState = "CREATIVE_CREATED"
	StateAdCreated       MaterializationState = "AD_CREATED"
	StateDone            MaterializationState = "DONE"
	StateFailed          MaterializationState = "FAILED"
)

// StepKind is the platform call a step performs.
type StepKind string

const (
	StepCampaign   StepKind = "campaign"
	StepAdSet      StepKind = "ad_set"
	StepAdCreative StepKind = "ad_creative"
	StepAd         StepKind = "ad"
)

// Step identifies one create call. AdSet is the index of the ad set in the
// specification; Ad is the index of the ad. Indices are ignored for kinds
// they do not apply to.
type Step struct {
	Kind  StepKind
	AdSet int
	Ad    int
}

func (s Step) String() string {
	switch s.Kind {
	case StepAdSet:
		return fmt.Sprintf("ad_set[%d]", s.AdSet)
	case StepAdCreative, StepAd:
		return fmt.Sprintf("%s[%d][%d]", s.Kind, s.AdSet, s.Ad)
	default:
		return string(s.Kind)
	}
}

// MarshalJSON renders the step as its string identifier.
func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ErrorDescriptor is the reported form of a failed platform call.
type ErrorDescriptor struct {
	Code    int    `json:"code,omitempty"`
	Subcode int    `json:"subcode,omitempty"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
}

// DescribeError converts err into an ErrorDescriptor, keeping the platform's
// original code and message when err carries a PlatformError.
func DescribeError(err error) *ErrorDescriptor {
	if err == nil {
		return nil
	}
	var pe *PlatformError
	if errors.As(err, &pe) {
		return &ErrorDescriptor{
			Code:    pe.Code,
			Subcode: pe.Subcode,
			Type:    pe.Type,
			Message: pe.Message,
		}
	}
	return &ErrorDescriptor{Message: err.Error()}
}

// MaterializationResult records what was created on the platform, in
// creation order. When FailedAt is set the objects listed still exist as
// paused drafts.
type MaterializationResult struct {
	State     MaterializationState `json:"state"`
	Campaign  *PlatformObject      `json:"campaign"`
	AdSets    []PlatformObject     `json:"ad_sets"`
	Creatives []PlatformObject     `json:"creatives"`
	Ads       []PlatformObject     `json:"ads"`
	FailedAt  *Step                `json:"failed_at"`
	Error     *ErrorDescriptor     `json:"error"`
}

// Failed reports whether materialization stopped on an error.
func (r MaterializationResult) Failed() bool {
	return r.FailedAt != nil
}

// ActivationResult records which objects of a campaign tree were switched
// to ACTIVE, in activation order. Ads go first, then their ad set, and the
// campaign last, so a run that stops early leaves the campaign paused and
// nothing delivers. Step indices in FailedAt follow the platform's listing
// order.
type ActivationResult struct {
	Campaign *PlatformObject  `json:"campaign"`
	AdSets   []PlatformObject `json:"ad_sets"`
	Ads      []PlatformObject `json:"ads"`
	FailedAt *Step            `json:"failed_at"`
	Error    *ErrorDescriptor `json:"error"`
}

// Failed reports whether activation stopped on an error.
func (r ActivationResult) Failed() bool {
	return r.FailedAt != nil
}
