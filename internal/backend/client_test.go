package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamestorebd/storefront/internal/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGamesForwardsFilters(t *testing.T) {
	catalog := []backend.Game{
		{ID: "g1", Title: "A", Platform: "PC", Price: 100},
		{ID: "g2", Title: "B", Platform: "Mobile", Price: 50},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/games", r.URL.Path)
		platform := r.URL.Query().Get("platform")
		var out []backend.Game
		for _, g := range catalog {
			if platform == "" || g.Platform == platform {
				out = append(out, g)
			}
		}
		json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)

	games, err := client.ListGames(context.Background(), "", "Mobile")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "B", games[0].Title)

	games, err = client.ListGames(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, games, 2)
}

func TestListGamesOmitsEmptyParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	_, err := backend.NewClient(srv.URL).ListGames(context.Background(), "", "")
	require.NoError(t, err)
}

func TestMyOrdersSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	_, err := backend.NewClient(srv.URL).MyOrders(context.Background(), "tok-123")
	require.NoError(t, err)
}

func TestPlaceOrderGuestOmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		var req backend.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "g1", req.GameID)
		assert.Equal(t, "TRX9", req.TransactionID)

		json.NewEncoder(w).Encode(backend.Order{ID: "o1", Status: backend.StatusPending})
	}))
	defer srv.Close()

	order, err := backend.NewClient(srv.URL).PlaceOrder(context.Background(), "", backend.OrderRequest{
		GameID:        "g1",
		TransactionID: "TRX9",
		DeliveryEmail: "p@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, backend.StatusPending, order.Status)
}

func TestErrorCarriesBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"invalid transaction id"}`))
	}))
	defer srv.Close()

	_, err := backend.NewClient(srv.URL).Login(context.Background(), backend.Credentials{})
	require.Error(t, err)

	var be *backend.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.Status)
	assert.Equal(t, "invalid transaction id", be.Detail)
	assert.Equal(t, "invalid transaction id", backend.Message(err, "fallback"))
}

func TestMessageFallsBackWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := backend.NewClient(srv.URL).Login(context.Background(), backend.Credentials{})
	require.Error(t, err)
	assert.Equal(t, "fallback", backend.Message(err, "fallback"))
}

func TestUpdateOrderStatusPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/orders/o9/status", r.URL.Path)

		var body struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, backend.StatusVerified, body.Status)
	}))
	defer srv.Close()

	err := backend.NewClient(srv.URL).UpdateOrderStatus(context.Background(), "tok", "o9", backend.StatusVerified)
	require.NoError(t, err)
}

func TestGameImageFallback(t *testing.T) {
	assert.Equal(t, "https://a.png", backend.Game{Images: []string{"https://a.png", "https://b.png"}}.Image())
	assert.Contains(t, backend.Game{}.Image(), "placeholder")
}
