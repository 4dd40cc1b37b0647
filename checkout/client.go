package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/cart"
	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

// OrderPayload is the order submission body sent to the order service.
type OrderPayload struct {
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Address  string      `json:"address"`
	Items    []cart.Line `json:"items"`
	Total    float64     `json:"total"`
	Status   string      `json:"status,omitempty"`
}

// OrderService is the server-side collaborator that records orders.
type OrderService interface {
	CreateOrder(ctx context.Context, payload OrderPayload) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

// Client talks to the order API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// CreateOrder POSTs the payload to /api/orders. Non-2xx responses become a
// SubmissionError carrying the server message when one is decodable.
func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) (*models.Order, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &SubmissionError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SubmissionError{
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(resp),
		}
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &order, nil
}

// GetOrder fetches one order with its items for confirmation display.
func (c *Client) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/orders/"+id, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrOrderNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &SubmissionError{
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(resp),
		}
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &order, nil
}

func decodeErrorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	return body.Error
}
