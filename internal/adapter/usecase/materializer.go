package usecase

import (
	"context"
	"errors"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

var errNotValidated = errors.New("specification was not validated")

// Materializer creates a validated campaign specification on the advertising
// platform. Calls are issued one at a time because every object depends on
// the identifier of its parent and create calls are not idempotent. The first
// failure ends the run; objects created before it are left in place as
// paused drafts and reported in the result.
type Materializer struct {
	platform port.PlatformClient
	logger   *slog.Logger
}

// NewMaterializer returns a materializer that talks to platform.
func NewMaterializer(platform port.PlatformClient, logger *slog.Logger) *Materializer {
	return &Materializer{platform: platform, logger: logger}
}

// run holds the state of a single materialization.
type run struct {
	ctx    context.Context
	logger *slog.Logger
	res    domain.MaterializationResult
}

// Materialize creates the campaign, then every ad set under it, then every
// ad of the specification under each ad set (creative first, then the ad).
// Every object is created PAUSED regardless of the specification.
func (m *Materializer) Materialize(ctx context.Context, vs domain.ValidatedSpec) domain.MaterializationResult {
	r := &run{
		ctx:    ctx,
		logger: m.logger,
		res: domain.MaterializationResult{
			State:     domain.StateStart,
			AdSets:    []domain.PlatformObject{},
			Creatives: []domain.PlatformObject{},
			Ads:       []domain.PlatformObject{},
		},
	}
	if vs.IsZero() {
		r.fail(domain.Step{Kind: domain.StepCampaign}, errNotValidated)
		return r.res
	}
	s := vs.Spec()

	step := domain.Step{Kind: domain.StepCampaign}
	campaign, err := r.do(step, func(ctx context.Context) (domain.PlatformObject, error) {
		return m.platform.CreateCampaign(ctx, domain.CampaignFields{
			Name:                s.Campaign.Name,
			Objective:           s.Campaign.Objective,
			Status:              domain.StatusPaused,
			SpecialAdCategories: s.Campaign.SpecialAdCategories,
		})
	})
	if err != nil {
		return r.res
	}
	r.res.Campaign = &campaign
	r.res.State = domain.StateCampaignCreated

	for i, as := range s.AdSets {
		step = domain.Step{Kind: domain.StepAdSet, AdSet: i}
		adSet, err := r.do(step, func(ctx context.Context) (domain.PlatformObject, error) {
			return m.platform.CreateAdSet(ctx, domain.AdSetFields{
				CampaignID:       campaign.ID,
				Name:             as.Name,
				DailyBudget:      as.DailyBudget,
				LifetimeBudget:   as.LifetimeBudget,
				OptimizationGoal: as.OptimizationGoal,
				BillingEvent:     as.BillingEvent,
				BidStrategy:      as.BidStrategy,
				Targeting:        as.Targeting,
				StartTime:        as.StartTime,
				EndTime:          as.EndTime,
				Status:           domain.StatusPaused,
			})
		})
		if err != nil {
			return r.res
		}
		r.res.AdSets = append(r.res.AdSets, adSet)
		r.res.State = domain.StateAdSetCreated

		// every ad goes under every ad set
		for j, ad := range s.Ads {
			if !m.createAd(r, i, j, adSet, ad) {
				return r.res
			}
		}
	}

	r.res.State = domain.StateDone
	m.logger.Info("campaign materialized",
		slog.String("campaign_id", campaign.ID),
		slog.Int("ad_sets", len(r.res.AdSets)),
		slog.Int("ads", len(r.res.Ads)),
	)
	return r.res
}

func (m *Materializer) createAd(r *run, i, j int, adSet domain.PlatformObject, ad domain.AdSpec) bool {
	creativeName := ad.Creative.Name
	if creativeName == "" {
		creativeName = ad.Name
	}
	creative, err := r.do(domain.Step{Kind: domain.StepAdCreative, AdSet: i, Ad: j}, func(ctx context.Context) (domain.PlatformObject, error) {
		return m.platform.CreateAdCreative(ctx, domain.CreativeFields{
			Name:            creativeName,
			ObjectStorySpec: ad.Creative.ObjectStorySpec,
		})
	})
	if err != nil {
		return false
	}
	r.res.Creatives = append(r.res.Creatives, creative)
	r.res.State = domain.StateCreativeCreated

	created, err := r.do(domain.Step{Kind: domain.StepAd, AdSet: i, Ad: j}, func(ctx context.Context) (domain.PlatformObject, error) {
		return m.platform.CreateAd(ctx, domain.AdFields{
			Name:       ad.Name,
			AdSetID:    adSet.ID,
			CreativeID: creative.ID,
			Status:     domain.StatusPaused,
		})
	})
	if err != nil {
		return false
	}
	r.res.Ads = append(r.res.Ads, created)
	r.res.State = domain.StateAdCreated
	return true
}

// do issues a single create call unless the run was cancelled before it.
func (r *run) do(step domain.Step, call func(ctx context.Context) (domain.PlatformObject, error)) (domain.PlatformObject, error) {
	if err := r.ctx.Err(); err != nil {
		r.fail(step, err)
		return domain.PlatformObject{}, err
	}
	obj, err := call(r.ctx)
	if err != nil {
		r.fail(step, err)
		return domain.PlatformObject{}, err
	}
	r.logger.Debug("platform object created",
		slog.String("step", step.String()),
		slog.String("id", obj.ID),
	)
	return obj, nil
}

func (r *run) fail(step domain.Step, err error) {
	r.res.State = domain.StateFailed
	r.res.FailedAt = &step
	r.res.Error = domain.DescribeError(err)
	r.logger.Error("materialization failed",
		slog.String("step", step.String()),
		slog.Int("ad_sets_created", len(r.res.AdSets)),
		slog.Int("ads_created", len(r.res.Ads)),
		slog.Any("error", err),
	)
}
