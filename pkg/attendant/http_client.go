package attendant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ai-attendant-widget/pkg/store"
)

const DefaultBaseURL = "https://teste.aiatende.dev.br/api/openai-web"

type HTTPClient struct {
	BaseURL string
	Client  *http.Client
	Leads   LeadSource
}

var _ Client = &HTTPClient{}

// NewHTTPClient talks JSON to the attendant backend. A zero timeout means none.
func NewHTTPClient(baseURL string, timeout time.Duration, leads LeadSource) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
		Leads: leads,
	}
}

// --- Request/Response structs ---

type sendMessageRequest struct {
	Message string `json:"message"`
	LeadID  *int64 `json:"lead_id"`
}

type sendMessageResponse struct {
	Message string `json:"message"`
}

type customAIRequest struct {
	Niche string `json:"niche"`
}

type executePhoneRequest struct {
	AIID        string `json:"aiId"`
	PhoneNumber string `json:"phoneNumber"`
}

// --- Interface Implementation ---

func (c *HTTPClient) FetchCatalog(ctx context.Context) ([]store.AIModel, error) {
	var models []store.AIModel
	if err := c.do(ctx, http.MethodGet, "/models", nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, aiID, message string) (string, error) {
	payload := sendMessageRequest{Message: message}
	if c.Leads != nil {
		if id, ok := c.Leads.LeadID(); ok {
			payload.LeadID = &id
		}
	}

	var resp sendMessageResponse
	if err := c.do(ctx, http.MethodPost, "/send-message/"+url.PathEscape(aiID), payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) CreateCustomAI(ctx context.Context, niche string) (store.AIModel, error) {
	var model store.AIModel
	if err := c.do(ctx, http.MethodPost, "/custom-ai", customAIRequest{Niche: niche}, &model); err != nil {
		return store.AIModel{}, err
	}
	if model.ID == "" {
		return store.AIModel{}, fmt.Errorf("custom-ai: response without id")
	}
	return model, nil
}

func (c *HTTPClient) ExecutePhone(ctx context.Context, aiID, phoneNumber string) (PhoneResult, error) {
	var result PhoneResult
	payload := executePhoneRequest{AIID: aiID, PhoneNumber: phoneNumber}
	if err := c.do(ctx, http.MethodPost, "/execute-ai-phone", payload, &result); err != nil {
		return PhoneResult{}, err
	}
	return result, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("attendant request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: path, StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("attendant error: %s status %d, body: %s", e.Path, e.StatusCode, e.Body)
}
