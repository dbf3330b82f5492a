package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"resto_admin_backend/internal/models"
)

// ErrRemote is returned for any failure talking to the order/product
// service: transport errors, non-2xx statuses, undecodable payloads, or a
// success:false envelope. Callers surface it as a non-fatal notification
// and keep their last-rendered state.
var ErrRemote = errors.New("remote gateway error")

// Gateway is the consumed contract of the external order/product service.
type Gateway interface {
	FetchAllOrders(ctx context.Context) ([]models.Order, error)
	FetchAllProducts(ctx context.Context) ([]models.Product, error)
	SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
	DeleteProduct(ctx context.Context, productID string) error
}

// envelope is the remote service's tagged response shape: a success flag
// plus payload, or a failure reason.
type envelope struct {
	Success  bool             `json:"success"`
	Error    string           `json:"error,omitempty"`
	Orders   []models.Order   `json:"orders,omitempty"`
	Products []models.Product `json:"products,omitempty"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Gateway talking HTTP/JSON to the given base URL.
func NewClient(baseURL string, timeout time.Duration) Gateway {
	return &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding request for %s: %v", ErrRemote, path, err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrRemote, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling %s %s: %v", ErrRemote, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s returned status %d", ErrRemote, method, path, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decoding response from %s: %v", ErrRemote, path, err)
	}
	if !env.Success {
		reason := env.Error
		if reason == "" {
			reason = "remote service reported failure"
		}
		return nil, fmt.Errorf("%w: %s %s: %s", ErrRemote, method, path, reason)
	}
	return &env, nil
}

func (c *client) FetchAllOrders(ctx context.Context) ([]models.Order, error) {
	env, err := c.do(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}
	if env.Orders == nil {
		return []models.Order{}, nil
	}
	return env.Orders, nil
}

func (c *client) FetchAllProducts(ctx context.Context) ([]models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}
	if env.Products == nil {
		return []models.Product{}, nil
	}
	return env.Products, nil
}

func (c *client) SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	body := map[string]models.OrderStatus{"status": status}
	_, err := c.do(ctx, http.MethodPatch, "/orders/"+orderID+"/status", body)
	return err
}

func (c *client) DeleteProduct(ctx context.Context, productID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+productID, nil)
	return err
}
