package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
)

// Client は注文API（/api/...）のHTTPクライアント。
// 注文画面とキッチン表示の両方がこれを通してストアと会話する。
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError はサーバーがエラーステータスを返したことを表す。
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// TransientError は接続失敗やタイムアウトなど、再試行する価値のある失敗。
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "transient: " + e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

type OrderItemDraft struct {
	MenuItemID int64       `json:"menuItemId"`
	Quantity   int64       `json:"quantity"`
	Price      model.Price `json:"price"`
}

type OrderDraft struct {
	TableNumber  string           `json:"tableNumber"`
	CustomerName string           `json:"customerName"`
	Status       string           `json:"status"`
	Type         string           `json:"type"`
	Items        []OrderItemDraft `json:"items"`
}

type OrderCreated struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type OrderAdvanced struct {
	Message string            `json:"message"`
	Status  model.OrderStatus `json:"status"`
}

type TableScanned struct {
	Success   bool      `json:"success"`
	TableID   string    `json:"tableId"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *Client) Menu(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := c.doJSON(ctx, http.MethodGet, "/api/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) SubmitOrder(ctx context.Context, draft OrderDraft) (OrderCreated, error) {
	var out OrderCreated
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", draft, &out); err != nil {
		return OrderCreated{}, err
	}
	return out, nil
}

func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) AdvanceOrder(ctx context.Context, orderID string) (model.OrderStatus, error) {
	var out OrderAdvanced
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders/"+orderID+"/advance", nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/orders/"+orderID, nil, nil)
}

func (c *Client) ScanTable(ctx context.Context, tableID string) (TableScanned, error) {
	var out TableScanned
	if err := c.doJSON(ctx, http.MethodPost, "/api/tables/"+tableID+"/scan", nil, &out); err != nil {
		return TableScanned{}, err
	}
	return out, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, dest any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &TransientError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransientError{Err: err}
	}

	if resp.StatusCode >= 400 {
		var er struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &er)
		if er.Error == "" {
			er.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: er.Error}
	}

	if dest != nil {
		if err := json.Unmarshal(data, dest); err != nil {
			return err
		}
	}
	return nil
}
