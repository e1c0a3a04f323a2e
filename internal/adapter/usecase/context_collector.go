package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const storeCacheKey = "store"

// ContextCollector gathers the optional context handed to the model. Sources
// are read concurrently and independently: a failing source is logged and
// left out, it never fails the request.
type ContextCollector struct {
	store         port.StoreRepository
	platform      port.PlatformClient
	productLimit  int
	campaignLimit int
	timeout       time.Duration
	cache         *expirable.LRU[string, json.RawMessage]
	logger        *slog.Logger
}

// CollectorOptions tunes a ContextCollector. Zero limits disable a source.
type CollectorOptions struct {
	ProductLimit  int
	CampaignLimit int
	// Timeout bounds each source. Zero means no extra deadline.
	Timeout time.Duration
	// CacheTTL keeps the store context for this long. Zero disables caching.
	CacheTTL time.Duration
}

// NewContextCollector returns a collector over the given sources. Either may
// be nil.
func NewContextCollector(store port.StoreRepository, platform port.PlatformClient, opts CollectorOptions, logger *slog.Logger) *ContextCollector {
	c := &ContextCollector{
		store:         store,
		platform:      platform,
		productLimit:  opts.ProductLimit,
		campaignLimit: opts.CampaignLimit,
		timeout:       opts.Timeout,
		logger:        logger,
	}
	if opts.CacheTTL > 0 {
		c.cache = expirable.NewLRU[string, json.RawMessage](1, nil, opts.CacheTTL)
	}
	return c
}

// Collect returns the available context blocks, store context first, and the
// labels of the sources that failed.
func (c *ContextCollector) Collect(ctx context.Context) ([]domain.ContextBlock, []string) {
	var (
		g         errgroup.Group
		store     json.RawMessage
		campaigns json.RawMessage
		storeErr  error
		campErr   error
	)
	if c.store != nil && c.productLimit > 0 {
		g.Go(func() error {
			store, storeErr = c.storeContext(ctx)
			return nil
		})
	}
	if c.platform != nil && c.campaignLimit > 0 {
		g.Go(func() error {
			campaigns, campErr = c.campaignContext(ctx)
			return nil
		})
	}
	_ = g.Wait()

	var (
		blocks []domain.ContextBlock
		failed []string
	)
	for _, src := range []struct {
		label string
		data  json.RawMessage
		err   error
	}{
		{domain.LabelStoreContext, store, storeErr},
		{domain.LabelCampaignContext, campaigns, campErr},
	} {
		if src.err != nil {
			c.logger.Warn("context source unavailable, continuing without it",
				slog.String("source", src.label),
				slog.Any("error", src.err),
			)
			failed = append(failed, src.label)
			continue
		}
		if len(src.data) > 0 {
			blocks = append(blocks, domain.ContextBlock{Label: src.label, Data: src.data})
		}
	}
	return blocks, failed
}

func (c *ContextCollector) storeContext(ctx context.Context) (json.RawMessage, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(storeCacheKey); ok {
			return data, nil
		}
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	products, err := c.store.ListProducts(ctx, c.productLimit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if len(products) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(struct {
		Products []domain.Product `json:"products"`
	}{products})
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.Add(storeCacheKey, data)
	}
	return data, nil
}

func (c *ContextCollector) campaignContext(ctx context.Context) (json.RawMessage, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	campaigns, err := c.platform.ListCampaigns(ctx, c.campaignLimit)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, nil
	}
	return json.Marshal(struct {
		Campaigns []domain.PlatformObject `json:"campaigns"`
	}{campaigns})
}

func (c *ContextCollector) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
