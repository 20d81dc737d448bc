package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scan-kart/internal/model"

	"github.com/rs/zerolog"
)

// httpLookup queries the remote catalogue at GET {baseURL}/api/products/{barcode}.
type httpLookup struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewHTTPLookup creates a lookup backed by the remote catalogue API.
func NewHTTPLookup(baseURL string, timeout time.Duration, logger zerolog.Logger) Lookup {
	return &httpLookup{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "http-catalog").Logger(),
	}
}

func (l *httpLookup) FetchProduct(ctx context.Context, barcode string) (*model.Product, error) {
	endpoint := l.baseURL + "/api/products/" + url.PathEscape(barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Warn().Err(err).Str("barcode", barcode).Msg("product request failed")
		return nil, fmt.Errorf("failed to fetch product %s: %w", barcode, err)
	}
	defer resp.Body.Close()

	l.logger.Debug().
		Str("barcode", barcode).
		Int("status", resp.StatusCode).
		Msg("catalogue responded")

	if resp.StatusCode == http.StatusNotFound {
		return nil, model.ErrProductNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read product response: %w", err)
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("empty response from catalogue (status %d)", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalogue returned status %d", resp.StatusCode)
	}

	var product model.Product
	if err := json.Unmarshal(body, &product); err != nil {
		l.logger.Warn().Str("barcode", barcode).Str("body", string(body)).Msg("catalogue response is not JSON")
		return nil, fmt.Errorf("invalid catalogue response: %w", err)
	}

	return &product, nil
}
