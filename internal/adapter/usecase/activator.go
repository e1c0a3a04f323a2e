package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Activator switches a reviewed campaign tree to ACTIVE. The tree is read
// from the platform first; activation then runs one call at a time and stops
// at the first failure.
type Activator struct {
	platform port.PlatformClient
	logger   *slog.Logger
}

// NewActivator returns an activator that talks to platform.
func NewActivator(platform port.PlatformClient, logger *slog.Logger) *Activator {
	return &Activator{platform: platform, logger: logger}
}

type adSetTree struct {
	adSet domain.PlatformObject
	ads   []domain.PlatformObject
}

// Activate lists the ad sets of the campaign and the ads of every ad set,
// then activates each ad set's ads followed by the ad set, and the campaign
// last. An error is returned only when the tree could not be read, in which
// case nothing was changed.
func (a *Activator) Activate(ctx context.Context, campaignID string) (domain.ActivationResult, error) {
	adSets, err := a.platform.ListAdSets(ctx, campaignID)
	if err != nil {
		return domain.ActivationResult{}, fmt.Errorf("list ad sets of %s: %w", campaignID, err)
	}
	tree := make([]adSetTree, 0, len(adSets))
	for _, as := range adSets {
		ads, err := a.platform.ListAds(ctx, as.ID)
		if err != nil {
			return domain.ActivationResult{}, fmt.Errorf("list ads of %s: %w", as.ID, err)
		}
		tree = append(tree, adSetTree{adSet: as, ads: ads})
	}

	r := &activation{
		ctx:      ctx,
		platform: a.platform,
		logger:   a.logger,
		res: domain.ActivationResult{
			AdSets: []domain.PlatformObject{},
			Ads:    []domain.PlatformObject{},
		},
	}
	for i, node := range tree {
		for j, ad := range node.ads {
			obj, err := r.do(domain.Step{Kind: domain.StepAd, AdSet: i, Ad: j}, domain.ObjectAd, ad.ID)
			if err != nil {
				return r.res, nil
			}
			r.res.Ads = append(r.res.Ads, obj)
		}
		obj, err := r.do(domain.Step{Kind: domain.StepAdSet, AdSet: i}, domain.ObjectAdSet, node.adSet.ID)
		if err != nil {
			return r.res, nil
		}
		r.res.AdSets = append(r.res.AdSets, obj)
	}
	campaign, err := r.do(domain.Step{Kind: domain.StepCampaign}, domain.ObjectCampaign, campaignID)
	if err != nil {
		return r.res, nil
	}
	r.res.Campaign = &campaign

	a.logger.Info("campaign approved",
		slog.String("campaign_id", campaignID),
		slog.Int("ad_sets", len(r.res.AdSets)),
		slog.Int("ads", len(r.res.Ads)),
	)
	return r.res, nil
}

// activation holds the state of a single Activate call.
type activation struct {
	ctx      context.Context
	platform port.PlatformClient
	logger   *slog.Logger
	res      domain.ActivationResult
}

// do activates one object unless the call was cancelled before it.
func (r *activation) do(step domain.Step, kind domain.ObjectType, id string) (domain.PlatformObject, error) {
	if err := r.ctx.Err(); err != nil {
		r.fail(step, err)
		return domain.PlatformObject{}, err
	}
	obj, err := r.platform.UpdateStatus(r.ctx, id, domain.StatusActive)
	if err != nil {
		r.fail(step, err)
		return domain.PlatformObject{}, err
	}
	obj.Type = kind
	r.logger.Debug("platform object activated",
		slog.String("step", step.String()),
		slog.String("id", id),
	)
	return obj, nil
}

func (r *activation) fail(step domain.Step, err error) {
	r.res.FailedAt = &step
	r.res.Error = domain.DescribeError(err)
	r.logger.Error("activation failed",
		slog.String("step", step.String()),
		slog.Int("ad_sets_activated", len(r.res.AdSets)),
		slog.Int("ads_activated", len(r.res.Ads)),
		slog.Any("error", err),
	)
}
