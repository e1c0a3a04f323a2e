package port

import (
	"context"
	"errors"

	"adpilot/internal/core/domain"
)

// ErrInvalidObjectID is returned for object IDs that are not plain numeric
// platform identifiers.
var ErrInvalidObjectID = errors.New("invalid platform object id")

// PlatformClient exposes atomic operations on the advertising platform's
// object graph. Every call is a single remote request; create calls are not
// idempotent, so implementations must not retry them. Failures are returned
// as *domain.PlatformError where the platform reported one.
type PlatformClient interface {
	CreateCampaign(ctx context.Context, fields domain.CampaignFields) (domain.PlatformObject, error)
	CreateAdSet(ctx context.Context, fields domain.AdSetFields) (domain.PlatformObject, error)
	CreateAdCreative(ctx context.Context, fields domain.CreativeFields) (domain.PlatformObject, error)
	CreateAd(ctx context.Context, fields domain.AdFields) (domain.PlatformObject, error)

	// ListCampaigns returns up to limit existing campaigns of the ad account.
	ListCampaigns(ctx context.Context, limit int) ([]domain.PlatformObject, error)
	// ListAdSets returns every ad set of a campaign.
	ListAdSets(ctx context.Context, campaignID string) ([]domain.PlatformObject, error)
	// ListAds returns every ad of an ad set.
	ListAds(ctx context.Context, adSetID string) ([]domain.PlatformObject, error)
	// UpdateStatus changes the delivery status of any object by ID.
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.PlatformObject, error)
}
