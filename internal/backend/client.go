// Package backend is the typed client for the storefront backend API.
// Every catalog, order and auth operation the site shows goes through
// here; this process keeps no domain state of its own.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Error is a non-2xx response from the backend. Detail carries the
// backend's human-readable message when it sent one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend: %d", e.Status)
}

// Message returns the backend-provided error text for err, or fallback
// when the backend sent none (or the failure never reached it).
func Message(err error, fallback string) string {
	var be *Error
	if errors.As(err, &be) && be.Detail != "" {
		return be.Detail
	}
	return fallback
}

// do runs one request against the backend. A bearer token is attached
// only when non-empty. Non-2xx responses become *Error; the body is
// decoded into out otherwise.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	reqBody := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody) // body may not be JSON
		return &Error{Status: resp.StatusCode, Detail: errBody.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// ListGames fetches the catalog, filtered server-side. Empty search or
// platform means unfiltered for that dimension.
func (c *Client) ListGames(ctx context.Context, search, platform string) ([]Game, error) {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	if platform != "" {
		params.Set("platform", platform)
	}
	path := "/games"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var games []Game
	if err := c.do(ctx, http.MethodGet, path, "", nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *Client) GetGame(ctx context.Context, id string) (Game, error) {
	var game Game
	err := c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(id), "", nil, &game)
	return game, err
}

// PlaceOrder creates an order. The token is optional; guests may order
// with just a transaction id and delivery email.
func (c *Client) PlaceOrder(ctx context.Context, token string, req OrderRequest) (Order, error) {
	var order Order
	err := c.do(ctx, http.MethodPost, "/orders", token, req, &order)
	return order, err
}

func (c *Client) MyOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders/mine", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResult, error) {
	var res AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &res)
	return res, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	var res AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &res)
	return res, err
}

// AllOrders lists every order on the site. Admin only; the backend
// enforces the role, we just pass the token along.
func (c *Client) AllOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateGame(ctx context.Context, token string, input GameInput) (Game, error) {
	var game Game
	err := c.do(ctx, http.MethodPost, "/admin/games", token, input, &game)
	return game, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	return c.do(ctx, http.MethodPost, "/admin/orders/"+url.PathEscape(orderID)+"/status", token, body, nil)
}
