package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient клиент реального сервиса маршрутизации
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewHTTPClient создает клиент сервиса маршрутизации
func NewHTTPClient(baseURL string, timeout time.Duration, log Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// routeResponse ответ сервиса маршрутизации
type routeResponse struct {
	DistanceKM float64 `json:"distance_km"`
}

// Estimate запрашивает расстояние между адресами
func (c *HTTPClient) Estimate(ctx context.Context, startAddress, destination string) (float64, error) {
	params := url.Values{}
	params.Set("from", startAddress)
	params.Set("to", destination)
	reqURL := fmt.Sprintf("%s/route?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return 0, fmt.Errorf("%w: routing service rejected addresses", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var route routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&route); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if route.DistanceKM <= 0 {
		return 0, fmt.Errorf("%w: non-positive distance %f", ErrInvalidResponse, route.DistanceKM)
	}

	c.log.Info("distance: estimated %.1f km for %q -> %q", route.DistanceKM, startAddress, destination)
	return route.DistanceKM, nil
}
