// Package enrichsvc - website traffic enrichment: provider client,
// normalization, BDR insights and business estimates.
package enrichsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
)

// Provider endpoint: synchronous actor run returning dataset items directly.
const apifyActorURL = "https://api.apify.com/v2/acts/tri_angle~fast-similarweb-scraper/run-sync-get-dataset-items"

// A cold actor run can take tens of seconds.
const apifyTimeout = 60 * time.Second

// ApifyClient calls the traffic data provider.
type ApifyClient struct {
	httpClient *http.Client
	actorURL   string
	token      string
}

// NewApifyClient creates a client with the given API token. An empty token is
// allowed at construction; FetchSiteData reports the missing configuration.
func NewApifyClient(token string) *ApifyClient {
	return &ApifyClient{
		httpClient: &http.Client{Timeout: apifyTimeout},
		actorURL:   apifyActorURL,
		token:      token,
	}
}

type apifyRunInput struct {
	Websites []string `json:"websites"`
	MaxItems int      `json:"maxItems"`
}

// FetchSiteData runs the provider actor for one domain and returns the first
// dataset item. Returns a 404 error when the provider has no data for the
// domain.
func (c *ApifyClient) FetchSiteData(ctx context.Context, domain string) (*enrichmodels.ProviderPayload, error) {
	if c.token == "" {
		return nil, common.NewError(common.ErrCodeConfiguration,
			"Traffic provider token is not configured", common.StatusInternalServerError, nil)
	}

	body, err := json.Marshal(apifyRunInput{Websites: []string{domain}, MaxItems: 1})
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, err.Error(), common.StatusInternalServerError, nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.actorURL, bytes.NewReader(body))
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, err.Error(), common.StatusInternalServerError, nil)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	logrus.WithField("domain", domain).Info("Requesting traffic analysis from provider")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, common.NewError(common.ErrCodeProviderTimeout,
				"Analysis timed out, the site may need more time. Retry in a few minutes.",
				common.StatusRequestTimeout, nil)
		}
		return nil, common.NewError(common.ErrCodeProvider, err.Error(), common.StatusBadGateway, nil)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, providerStatusError(resp.StatusCode, domain)
	}

	var items []enrichmodels.ProviderPayload
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, common.NewError(common.ErrCodeProvider,
			"Provider returned an unreadable payload", common.StatusBadGateway, nil)
	}
	if len(items) == 0 {
		return nil, common.NewError(common.ErrCodeProvider,
			fmt.Sprintf("No traffic data found for %s. The site may be too small or not tracked.", domain),
			common.StatusNotFound, nil)
	}

	return &items[0], nil
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	var te timeout
	return errors.As(err, &te) && te.Timeout()
}

// providerStatusError maps provider HTTP statuses to API errors, keeping the
// status code so the client can react.
func providerStatusError(status int, domain string) error {
	switch status {
	case common.StatusBadRequest:
		return common.NewError(common.ErrCodeProviderRequest,
			fmt.Sprintf("Provider rejected the request for domain %s", domain),
			common.StatusBadRequest, nil)
	case common.StatusUnauthorized:
		return common.NewError(common.ErrCodeProviderRequest,
			"Traffic provider token is invalid", common.StatusUnauthorized, nil)
	case common.StatusPaymentRequired:
		return common.NewError(common.ErrCodeProviderRequest,
			"Traffic provider quota exhausted", common.StatusPaymentRequired, nil)
	case common.StatusTooManyRequests:
		return common.NewError(common.ErrCodeProviderRequest,
			"Traffic provider rate limit reached, retry shortly", common.StatusTooManyRequests, nil)
	case common.StatusInternalServerError:
		return common.NewError(common.ErrCodeProvider,
			"Traffic provider internal error", common.StatusInternalServerError, nil)
	default:
		return common.NewError(common.ErrCodeProvider,
			fmt.Sprintf("Traffic provider error (status %d)", status), status, nil)
	}
}
