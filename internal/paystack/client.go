package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type InitializeRequest struct {
	Reference   string
	Email       string
	Amount      float64
	CallbackURL string
}

type InitializeResponse struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

type VerifyResponse struct {
	Success    bool
	Reference  string
	GatewayRef string
	Amount     float64
	Channel    string
	PaidAt     time.Time
}

// Gateway is the hosted-checkout surface the payment service depends on.
type Gateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error)
	Verify(ctx context.Context, reference string) (*VerifyResponse, error)
}

type client struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

func NewClient(secretKey, baseURL string) Gateway {
	return &client{
		secretKey: secretKey,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *client) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	// Paystack amounts are in the minor currency unit.
	body := map[string]any{
		"reference":    req.Reference,
		"email":        req.Email,
		"amount":       int64(req.Amount * 100),
		"callback_url": req.CallbackURL,
	}
	b, _ := json.Marshal(body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paystack initialize failed: %s", resp.Status)
	}

	var out struct {
		Status bool `json:"status"`
		Data   struct {
			AuthorizationURL string `json:"authorization_url"`
			AccessCode       string `json:"access_code"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("paystack initialize decode: %w", err)
	}
	if !out.Status || out.Data.AuthorizationURL == "" {
		return nil, fmt.Errorf("paystack initialize: empty authorization url")
	}

	return &InitializeResponse{
		AuthorizationURL: out.Data.AuthorizationURL,
		AccessCode:       out.Data.AccessCode,
		Reference:        out.Data.Reference,
	}, nil
}

func (c *client) Verify(ctx context.Context, reference string) (*VerifyResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("paystack verify: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paystack verify failed: %s", resp.Status)
	}

	var out struct {
		Status bool `json:"status"`
		Data   struct {
			Status    string    `json:"status"`
			Reference string    `json:"reference"`
			ID        int64     `json:"id"`
			Amount    int64     `json:"amount"`
			Channel   string    `json:"channel"`
			PaidAt    time.Time `json:"paid_at"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("paystack verify decode: %w", err)
	}

	return &VerifyResponse{
		Success:    out.Status && out.Data.Status == "success",
		Reference:  out.Data.Reference,
		GatewayRef: fmt.Sprintf("%d", out.Data.ID),
		Amount:     float64(out.Data.Amount) / 100,
		Channel:    out.Data.Channel,
		PaidAt:     out.Data.PaidAt,
	}, nil
}
