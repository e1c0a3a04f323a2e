package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Client talks to the Meta Marketing API. It implements port.PlatformClient.
// Create calls are never retried: the API has no idempotency keys and a
// retried timeout can leave a duplicate object behind.
type Client struct {
	http    *resty.Client
	creds   port.Credentials
	account string
	pageID  string
	logger  *slog.Logger
}

// NewClient builds a client for the ad account in cfg.
func NewClient(cfg configs.Platform, creds port.Credentials, logger *slog.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if v := strings.Trim(cfg.APIVersion, "/"); v != "" {
		base += "/" + v
	}
	client := resty.New().
		SetBaseURL(base).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &Client{
		http:    client,
		creds:   creds,
		account: "act_" + strings.TrimPrefix(cfg.AdAccountID, "act_"),
		pageID:  cfg.PageID,
		logger:  logger,
	}
}

func (c *Client) CreateCampaign(ctx context.Context, f domain.CampaignFields) (domain.PlatformObject, error) {
	categories := f.SpecialAdCategories
	if categories == nil {
		categories = []string{}
	}
	form := map[string]string{
		"name":      f.Name,
		"objective": string(f.Objective),
		"status":    string(f.Status),
	}
	if err := setJSON(form, "special_ad_categories", categories); err != nil {
		return domain.PlatformObject{}, err
	}
	return c.create(ctx, domain.ObjectCampaign, "campaigns", f.Name, f.Status, form)
}

func (c *Client) CreateAdSet(ctx context.Context, f domain.AdSetFields) (domain.PlatformObject, error) {
	form := map[string]string{
		"name":        f.Name,
		"campaign_id": f.CampaignID,
		"status":      string(f.Status),
	}
	setInt(form, "daily_budget", f.DailyBudget)
	setInt(form, "lifetime_budget", f.LifetimeBudget)
	setString(form, "optimization_goal", f.OptimizationGoal)
	setString(form, "billing_event", f.BillingEvent)
	setString(form, "bid_strategy", f.BidStrategy)
	setString(form, "start_time", f.StartTime)
	setString(form, "end_time", f.EndTime)
	if f.Targeting != nil {
		if err := setJSON(form, "targeting", f.Targeting); err != nil {
			return domain.PlatformObject{}, err
		}
	}
	return c.create(ctx, domain.ObjectAdSet, "adsets", f.Name, f.Status, form)
}

func (c *Client) CreateAdCreative(ctx context.Context, f domain.CreativeFields) (domain.PlatformObject, error) {
	form := map[string]string{"name": f.Name}
	if f.ObjectStorySpec != nil {
		story := *f.ObjectStorySpec
		if story.PageID == "" {
			story.PageID = c.pageID
		}
		if err := setJSON(form, "object_story_spec", story); err != nil {
			return domain.PlatformObject{}, err
		}
	}
	return c.create(ctx, domain.ObjectAdCreative, "adcreatives", f.Name, "", form)
}

func (c *Client) CreateAd(ctx context.Context, f domain.AdFields) (domain.PlatformObject, error) {
	form := map[string]string{
		"name":     f.Name,
		"adset_id": f.AdSetID,
		"status":   string(f.Status),
	}
	if err := setJSON(form, "creative", map[string]string{"creative_id": f.CreativeID}); err != nil {
		return domain.PlatformObject{}, err
	}
	return c.create(ctx, domain.ObjectAd, "ads", f.Name, f.Status, form)
}

// ListCampaigns returns the most recent campaigns of the ad account.
func (c *Client) ListCampaigns(ctx context.Context, limit int) ([]domain.PlatformObject, error) {
	return c.list(ctx, domain.ObjectCampaign, c.account+"/campaigns", limit, false)
}

// ListAdSets returns every ad set of the campaign, following pagination.
func (c *Client) ListAdSets(ctx context.Context, campaignID string) ([]domain.PlatformObject, error) {
	if err := checkID(campaignID); err != nil {
		return nil, err
	}
	return c.list(ctx, domain.ObjectAdSet, campaignID+"/adsets", childPageSize, true)
}

// ListAds returns every ad of the ad set, following pagination.
func (c *Client) ListAds(ctx context.Context, adSetID string) ([]domain.PlatformObject, error) {
	if err := checkID(adSetID); err != nil {
		return nil, err
	}
	return c.list(ctx, domain.ObjectAd, adSetID+"/ads", childPageSize, true)
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.PlatformObject, error) {
	if err := checkID(id); err != nil {
		return domain.PlatformObject{}, err
	}
	req, err := c.request(ctx)
	if err != nil {
		return domain.PlatformObject{}, err
	}
	resp, err := req.
		SetFormData(map[string]string{"status": string(status)}).
		Post(id)
	if err != nil {
		return domain.PlatformObject{}, fmt.Errorf("update status of %s: %w", id, err)
	}
	if err = responseError(resp); err != nil {
		return domain.PlatformObject{}, err
	}
	if ok := gjson.GetBytes(resp.Body(), "success"); ok.Exists() && !ok.Bool() {
		return domain.PlatformObject{}, &domain.PlatformError{
			HTTPStatus: resp.StatusCode(),
			Message:    "status update was not applied",
		}
	}
	c.logger.Info("platform object status updated", slog.String("id", id), slog.String("status", string(status)))
	return domain.PlatformObject{ID: id, Status: status}, nil
}

const (
	childPageSize = 100
	maxListPages  = 50
)

// list reads an edge of the object graph. With follow set it keeps requesting
// the page after the current cursor until the platform reports no next page.
func (c *Client) list(
	ctx context.Context,
	kind domain.ObjectType,
	path string,
	limit int,
	follow bool,
) ([]domain.PlatformObject, error) {
	out := []domain.PlatformObject{}
	after := ""
	for page := 0; page < maxListPages; page++ {
		req, err := c.request(ctx)
		if err != nil {
			return nil, err
		}
		req.SetQueryParam("fields", "id,name,status").
			SetQueryParam("limit", strconv.Itoa(limit))
		if after != "" {
			req.SetQueryParam("after", after)
		}
		resp, err := req.Get(path)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", path, err)
		}
		if err = responseError(resp); err != nil {
			return nil, err
		}

		body := resp.Body()
		gjson.GetBytes(body, "data").ForEach(func(_, v gjson.Result) bool {
			out = append(out, domain.PlatformObject{
				ID:     v.Get("id").String(),
				Type:   kind,
				Name:   v.Get("name").String(),
				Status: domain.Status(v.Get("status").String()),
			})
			return true
		})

		paging := gjson.GetBytes(body, "paging")
		after = paging.Get("cursors.after").String()
		if !follow || !paging.Get("next").Exists() || after == "" {
			return out, nil
		}
	}
	c.logger.Warn("listing truncated", slog.String("path", path), slog.Int("pages", maxListPages))
	return out, nil
}

// objectIDPattern matches Graph object IDs. IDs become URL path segments, so
// anything else is refused before a request is built.
var objectIDPattern = regexp.MustCompile(`^[0-9]+$`)

func checkID(id string) error {
	if !objectIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", port.ErrInvalidObjectID, id)
	}
	return nil
}

func (c *Client) create(
	ctx context.Context,
	kind domain.ObjectType,
	edge, name string,
	status domain.Status,
	form map[string]string,
) (domain.PlatformObject, error) {
	req, err := c.request(ctx)
	if err != nil {
		return domain.PlatformObject{}, err
	}
	resp, err := req.SetFormData(form).Post(c.account + "/" + edge)
	if err != nil {
		return domain.PlatformObject{}, fmt.Errorf("create %s: %w", kind, err)
	}
	if err = responseError(resp); err != nil {
		return domain.PlatformObject{}, err
	}
	id := gjson.GetBytes(resp.Body(), "id").String()
	if id == "" {
		return domain.PlatformObject{}, &domain.PlatformError{
			HTTPStatus: resp.StatusCode(),
			Message:    fmt.Sprintf("create %s: response carries no id", kind),
		}
	}
	c.logger.Debug("platform object created", slog.String("type", string(kind)), slog.String("id", id))
	return domain.PlatformObject{ID: id, Type: kind, Name: name, Status: status}, nil
}

func (c *Client) request(ctx context.Context) (*resty.Request, error) {
	token, err := c.creds.PlatformAccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return c.http.R().SetContext(ctx).SetAuthToken(token), nil
}

// responseError decodes the Graph API error envelope. Any non-2xx response
// is an error even when the body is not the usual envelope.
func responseError(resp *resty.Response) error {
	body := resp.Body()
	e := gjson.GetBytes(body, "error")
	if !e.Exists() && !resp.IsError() {
		return nil
	}
	pe := &domain.PlatformError{HTTPStatus: resp.StatusCode()}
	if e.IsObject() {
		pe.Code = int(e.Get("code").Int())
		pe.Subcode = int(e.Get("error_subcode").Int())
		pe.Type = e.Get("type").String()
		pe.Message = e.Get("message").String()
		pe.TraceID = e.Get("fbtrace_id").String()
		if msg := e.Get("error_user_msg").String(); msg != "" {
			pe.Message += ": " + msg
		}
	}
	if pe.Message == "" {
		pe.Message = http.StatusText(resp.StatusCode())
	}
	return pe
}

func setJSON(form map[string]string, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	form[key] = string(b)
	return nil
}

func setString(form map[string]string, key, v string) {
	if v != "" {
		form[key] = v
	}
}

func setInt(form map[string]string, key string, v *int64) {
	if v != nil {
		form[key] = strconv.FormatInt(*v, 10)
	}
}
