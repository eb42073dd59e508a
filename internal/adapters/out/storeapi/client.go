package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

var (
	// ErrStoreRejected means the store answered but refused the request,
	// e.g. because another actor already moved the order. Not retryable
	// as-is; the next poll reconciles the view.
	ErrStoreRejected = errors.New("order store rejected the request")
)

// envelope is the store's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client talks to the external order service over HTTP. It implements
// ports.OrderStore.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     ports.TokenSource
}

// NewClient creates a store client for the given base URL. Per-request
// deadlines come from the caller's context; the underlying http.Client
// carries no timeout of its own.
func NewClient(baseURL string, tokens ports.TokenSource) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if tokens == nil {
		return nil, errs.NewValueIsRequiredError("tokens")
	}

	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
	}, nil
}

// FetchOrders retrieves the authoritative order set matching the filter.
func (c *Client) FetchOrders(ctx context.Context, filter ports.Filter) ([]*order.Order, error) {
	endpoint := c.baseURL + "/orders"
	if query := encodeFilter(filter); query != "" {
		endpoint += "?" + query
	}

	data, err := c.roundTrip(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var dtos []orderDTO
	if err = json.Unmarshal(data, &dtos); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order store response", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// SubmitStatusChange asks the store to move one order to the target status
// and returns the order as the store echoed it back.
func (c *Client) SubmitStatusChange(
	ctx context.Context,
	id kernel.UUID,
	target order.Status,
) (*order.Order, error) {
	body, err := json.Marshal(statusChangeRequest{Status: target.String()})
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/orders/" + id.String() + "/status"
	data, err := c.roundTrip(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var dto orderDTO
	if err = json.Unmarshal(data, &dto); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order store response", err)
	}

	return toDomain(dto)
}

// roundTrip performs one authenticated request and unwraps the envelope.
func (c *Client) roundTrip(ctx context.Context, method, endpoint string, body io.Reader) (json.RawMessage, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errs.NewNetworkErrorWithCause(method+" "+endpoint, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, errs.NewObjectNotFoundError("order", endpoint)
	}
	if response.StatusCode >= http.StatusInternalServerError {
		return nil, errs.NewNetworkError(fmt.Sprintf("%s %s: status %d", method, endpoint, response.StatusCode))
	}

	var env envelope
	if err = json.NewDecoder(response.Body).Decode(&env); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order store envelope", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrStoreRejected, env.Error)
	}

	return env.Data, nil
}

// encodeFilter serializes a fetch filter into the store's query parameters.
func encodeFilter(filter ports.Filter) string {
	values := url.Values{}
	for _, status := range filter.Statuses {
		values.Add("status", status.String())
	}
	if filter.OrderType != order.TypeUnknown {
		values.Set("orderType", filter.OrderType.String())
	}
	if filter.PaymentStatus != order.PaymentUnknown {
		values.Set("paymentStatus", filter.PaymentStatus.String())
	}
	if filter.DateFrom != nil {
		values.Set("dateFrom", filter.DateFrom.Format(time.RFC3339))
	}
	if filter.DateTo != nil {
		values.Set("dateTo", filter.DateTo.Format(time.RFC3339))
	}
	if filter.Limit > 0 {
		values.Set("limit", strconv.Itoa(filter.Limit))
	}
	return values.Encode()
}
