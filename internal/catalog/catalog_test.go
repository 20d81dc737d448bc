package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scan-kart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLookup_FetchProduct(t *testing.T) {
	lookup := NewMockLookup(0, zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name        string
		barcode     string
		expectLabel string
		expectErr   error
	}{
		{name: "Tomatoes", barcode: "3560070010234", expectLabel: "Tomates Grappe Bio"},
		{name: "Comté", barcode: "4567890123456", expectLabel: "Fromage Comté AOP"},
		{name: "Unknown barcode", barcode: "0000000000000", expectErr: model.ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := lookup.FetchProduct(ctx, tt.barcode)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, product)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectLabel, product.Label)
			assert.Equal(t, tt.barcode, product.Barcode)
		})
	}
}

func TestMockLookup_ReturnsCopies(t *testing.T) {
	lookup := NewMockLookup(0, zerolog.Nop())
	ctx := context.Background()

	first, err := lookup.FetchProduct(ctx, "3760123456789")
	require.NoError(t, err)
	first.Category.Label = "changed"
	*first.Inventory = 0

	second, err := lookup.FetchProduct(ctx, "3760123456789")
	require.NoError(t, err)
	assert.Equal(t, "Fruits & Légumes", second.Category.Label)
	assert.Equal(t, 120, *second.Inventory)
}

func TestMockLookup_LatencyHonoursContext(t *testing.T) {
	lookup := NewMockLookup(time.Hour, zerolog.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	product, err := lookup.FetchProduct(ctx, "3560070010234")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, product)
}

func TestHTTPLookup_FetchProduct(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectErr   error
		errContains string
	}{
		{
			name:   "Success",
			status: http.StatusOK,
			body:   `{"product_id":7,"label":"Beurre","unit_price_untaxed":9.5,"weight":0.25,"barcode":"123","inventory":3}`,
		},
		{
			name:      "Not found",
			status:    http.StatusNotFound,
			body:      `{"message":"Produit non trouvé"}`,
			expectErr: model.ErrProductNotFound,
		},
		{
			name:        "Empty body",
			status:      http.StatusOK,
			body:        "",
			errContains: "empty response",
		},
		{
			name:        "Server error",
			status:      http.StatusInternalServerError,
			body:        `{"message":"boom"}`,
			errContains: "status 500",
		},
		{
			name:        "Not JSON",
			status:      http.StatusOK,
			body:        "<html>",
			errContains: "invalid catalogue response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/products/123", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			lookup := NewHTTPLookup(server.URL+"/", time.Second, zerolog.Nop())
			product, err := lookup.FetchProduct(context.Background(), "123")

			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, product)
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, product)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(7), product.ID)
				assert.Equal(t, "Beurre", product.Label)
				require.NotNil(t, product.Inventory)
				assert.Equal(t, 3, *product.Inventory)
				assert.Nil(t, product.VATRate)
			}
		})
	}
}

func TestHTTPLookup_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	lookup := NewHTTPLookup(server.URL, time.Second, zerolog.Nop())
	product, err := lookup.FetchProduct(context.Background(), "123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch product")
	assert.Nil(t, product)
}
