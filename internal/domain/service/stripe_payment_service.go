package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ebazaar/pkg/errors"
)

// StripePaymentService talks to the Stripe HTTP API directly.
type StripePaymentService struct {
	secretKey     string
	webhookSecret string
	currency      string
	baseURL       string
	httpClient    *http.Client
}

// signatureTolerance bounds how old a webhook timestamp may be before the
// delivery is treated as a replay.
const signatureTolerance = 5 * time.Minute

func NewStripePaymentService(secretKey, webhookSecret, currency string) *StripePaymentService {
	return &StripePaymentService{
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		currency:      currency,
		baseURL:       "https://api.stripe.com/v1",
		httpClient:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *StripePaymentService) CreateAccount(ctx context.Context) (string, error) {
	body, err := s.do(ctx, http.MethodPost, "/accounts", url.Values{}, "")
	if err != nil {
		return "", err
	}

	var account struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &account); err != nil {
		return "", fmt.Errorf("failed to parse account response: %v", err)
	}

	return account.ID, nil
}

func (s *StripePaymentService) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	form := url.Values{}
	form.Set("account", accountID)
	form.Set("refresh_url", refreshURL)
	form.Set("return_url", returnURL)
	form.Set("type", "account_onboarding")

	body, err := s.do(ctx, http.MethodPost, "/account_links", form, "")
	if err != nil {
		return "", err
	}

	var link struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &link); err != nil {
		return "", fmt.Errorf("failed to parse account link response: %v", err)
	}

	return link.URL, nil
}

func (s *StripePaymentService) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error) {
	log.Printf("Creating checkout session for %s with %d line items", req.CustomerEmail, len(req.LineItems))

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer_email", req.CustomerEmail)
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("invoice_creation[enabled]", "true")

	for key, value := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	for i, item := range req.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.FormatInt(item.Quantity, 10))
		form.Set(prefix+"[price_data][currency]", s.currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.Description != "" {
			form.Set(prefix+"[price_data][product_data][description]", item.Description)
		}
		for key, value := range item.Metadata {
			form.Set(fmt.Sprintf("%s[price_data][product_data][metadata][%s]", prefix, key), value)
		}
	}

	body, err := s.do(ctx, http.MethodPost, "/checkout/sessions", form, "")
	if err != nil {
		return nil, err
	}

	var session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session response: %v", err)
	}

	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (s *StripePaymentService) GetSessionLineItems(ctx context.Context, sessionID, accountID string) ([]SessionLineItem, error) {
	path := "/checkout/sessions/" + sessionID + "?expand[]=line_items.data.price.product"

	body, err := s.do(ctx, http.MethodGet, path, nil, accountID)
	if err != nil {
		return nil, err
	}

	var session struct {
		LineItems struct {
			Data []struct {
				Quantity    int64 `json:"quantity"`
				AmountTotal int64 `json:"amount_total"`
				Price       struct {
					Product struct {
						Name     string            `json:"name"`
						Metadata map[string]string `json:"metadata"`
					} `json:"product"`
				} `json:"price"`
			} `json:"data"`
		} `json:"line_items"`
	}
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to parse expanded session response: %v", err)
	}

	items := make([]SessionLineItem, 0, len(session.LineItems.Data))
	for _, item := range session.LineItems.Data {
		items = append(items, SessionLineItem{
			ProductName: item.Price.Product.Name,
			Quantity:    item.Quantity,
			AmountTotal: item.AmountTotal,
			Metadata:    item.Price.Product.Metadata,
		})
	}

	return items, nil
}

// ConstructEvent checks the Stripe-Signature header (HMAC-SHA256 over
// "<timestamp>.<payload>") and only then decodes the envelope.
func (s *StripePaymentService) ConstructEvent(payload []byte, sigHeader string) (*WebhookEvent, error) {
	timestamp, signatures, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return nil, err
	}

	if time.Since(time.Unix(timestamp, 0)) > signatureTolerance {
		return nil, fmt.Errorf("webhook timestamp outside of tolerance")
	}

	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	matched := false
	for _, signature := range signatures {
		decoded, err := hex.DecodeString(signature)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, fmt.Errorf("no matching webhook signature")
	}

	var envelope struct {
		ID      string `json:"id"`
		Type    string `json:"type"`
		Account string `json:"account"`
		Data    struct {
			Object json.RawMessage `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %v", err)
	}

	return &WebhookEvent{
		ID:      envelope.ID,
		Type:    envelope.Type,
		Account: envelope.Account,
		Data:    envelope.Data.Object,
	}, nil
}

func parseSignatureHeader(header string) (int64, []string, error) {
	if header == "" {
		return 0, nil, fmt.Errorf("missing signature header")
	}

	var timestamp int64
	var signatures []string

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			parsed, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("invalid signature timestamp")
			}
			timestamp = parsed
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}

	if timestamp == 0 || len(signatures) == 0 {
		return 0, nil, fmt.Errorf("malformed signature header")
	}

	return timestamp, signatures, nil
}

func (s *StripePaymentService) do(ctx context.Context, method, path string, form url.Values, accountID string) ([]byte, error) {
	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.secretKey)
	if form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if accountID != "" {
		httpReq.Header.Set("Stripe-Account", accountID)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Upstream("Failed to reach Stripe", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Upstream("Failed to read Stripe response", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("Stripe API error (%d): %s", resp.StatusCode, string(body))
		return nil, errors.Upstream("Stripe API error", fmt.Errorf("%s", string(body)))
	}

	return body, nil
}
