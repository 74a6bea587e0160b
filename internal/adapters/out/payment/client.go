// Package payment provides an HTTP client for the external payment capture
// provider. The provider exposes a single charge endpoint; the client maps its
// responses onto the domain error taxonomy so use cases never see transport
// details.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const chargesPath = "/charges"

// Client implements ports.PaymentProvider against the provider's JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a payment client for the given provider base URL.
// The timeout bounds the whole charge round trip.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chargeRequest struct {
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
	PaymentToken string `json:"payment_token"`
}

type chargeResponse struct {
	Success       bool   `json:"success"`
	Reference     string `json:"reference"`
	DeclineReason string `json:"decline_reason"`
}

// Charge submits a charge for the given amount and returns the provider's
// charge reference.
//
// A decline (HTTP 402 or success=false) returns a PaymentDeclinedError; the
// order stays pending and the customer can retry. A transport failure returns
// a PersistenceError because the charge outcome is unknown once the request
// may have reached the provider.
func (c *Client) Charge(ctx context.Context, amount kernel.Money, token string) (string, error) {
	if token == "" {
		return "", errs.NewValueIsRequiredError("payment token")
	}

	body, err := json.Marshal(chargeRequest{
		AmountCents:  amount.Cents(),
		Currency:     "USD",
		PaymentToken: token,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+chargesPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.NewPersistenceError("payment charge", err)
	}
	defer resp.Body.Close()

	var chargeResp chargeResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&chargeResp); decodeErr != nil {
		return "", errs.NewPersistenceError("payment charge", decodeErr)
	}

	if resp.StatusCode == http.StatusPaymentRequired || (resp.StatusCode == http.StatusOK && !chargeResp.Success) {
		if chargeResp.DeclineReason != "" {
			return "", errs.NewPaymentDeclinedErrorWithCause(chargeResp.Reference,
				fmt.Errorf("provider declined: %s", chargeResp.DeclineReason))
		}
		return "", errs.NewPaymentDeclinedError(chargeResp.Reference)
	}

	if resp.StatusCode != http.StatusOK {
		return "", errs.NewPersistenceError("payment charge",
			fmt.Errorf("provider returned status %d", resp.StatusCode))
	}

	if chargeResp.Reference == "" {
		return "", errs.NewPersistenceError("payment charge",
			fmt.Errorf("provider returned success without a charge reference"))
	}

	return chargeResp.Reference, nil
}
