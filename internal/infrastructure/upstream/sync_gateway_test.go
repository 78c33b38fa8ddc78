package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tienda_admin/internal/domain/entities"
	"tienda_admin/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredOrdersBody = `[
  {
    "id": "eeb1131f-59a5-4c40-8da0-a52effd1cb14",
    "timestamp": 1741201355315,
    "status": "new",
    "customer": {"name": "Camilo", "idNumber": "000", "phone": "+573023606047", "address": "Carrera 32 #21-26", "barrio": "Rebolo", "city": "Barranquilla"},
    "product": {"id": 7, "name": "TREVORCEL", "description": "Topical", "price": 20000, "imageUrl": "https://cdn.example.com/p7.jpg"},
    "payment": {"total": 35611.88, "productPrice": 20000, "deliveryCost": 15611.88, "imagePath": "/media/payments/p1.jpg"}
  },
  {
    "id": "67ab192c-f8d1-4ec9-b237-4d5f6ac8b7e5",
    "timestamp": 1741103276543,
    "status": "completed",
    "customer": "Laura",
    "product": {"id": 3, "name": "METRONIDAZOL", "price": 15000},
    "payment": {"total": 28500, "productPrice": 15000, "deliveryCost": 13500, "imagePath": "/media/payments/p2.jpg"},
    "attendedBy": "operator1",
    "attendedTimestamp": 1741113578923
  }
]`

func TestSyncGateway_FetchAll_NormalizesRemoteShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(structuredOrdersBody))
	}))
	defer srv.Close()

	g := NewSyncGateway(srv.URL, "https://media.example.com")
	orders, err := g.FetchAll(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "eeb1131f-59a5-4c40-8da0-a52effd1cb14", first.ID)
	assert.Equal(t, entities.OrderStatusNew, first.Status)
	assert.Equal(t, time.UnixMilli(1741201355315).UTC(), first.CreatedAt)
	assert.Equal(t, "Rebolo", first.Customer.Neighborhood)
	assert.Equal(t, "https://media.example.com/media/payments/p1.jpg", first.Payment.ProofURL)
	assert.Nil(t, first.AttendedAt)

	// bare-string customer normalized to a record with only the name
	second := orders[1]
	assert.Equal(t, entities.Customer{Name: "Laura"}, second.Customer)
	assert.Equal(t, "operator1", second.AttendedBy)
	require.NotNil(t, second.AttendedAt)
	assert.Equal(t, time.UnixMilli(1741113578923).UTC(), *second.AttendedAt)
}

func TestSyncGateway_FetchAll_NoToken(t *testing.T) {
	g := NewSyncGateway("http://127.0.0.1:1", "")
	_, err := g.FetchAll(context.Background(), "")
	assert.ErrorIs(t, err, interfaces.ErrUnauthenticated)
}

func TestSyncGateway_ErrorTaxonomy(t *testing.T) {
	t.Run("upstream 401", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		g := NewSyncGateway(srv.URL, "")
		_, err := g.FetchAll(context.Background(), "expired")
		assert.ErrorIs(t, err, interfaces.ErrUnauthenticated)
	})

	t.Run("upstream 500", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		g := NewSyncGateway(srv.URL, "")
		_, err := g.FetchAll(context.Background(), "tok")
		var se *interfaces.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	})

	t.Run("unreachable host", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing listens anymore

		g := NewSyncGateway(srv.URL, "")
		_, err := g.FetchAll(context.Background(), "tok")
		assert.ErrorIs(t, err, interfaces.ErrUnreachable)
	})
}

func TestSyncGateway_SetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/orders/ord-9/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "processing", body["status"])

		// the upstream enriches the record when leaving "new"
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
		  "id": "ord-9",
		  "timestamp": 1741201355315,
		  "status": "processing",
		  "customer": {"name": "Camilo"},
		  "product": {"id": 7, "name": "TREVORCEL", "price": 20000},
		  "payment": {"total": 35611.88, "productPrice": 20000, "deliveryCost": 15611.88},
		  "attendedBy": "operator1",
		  "attendedTimestamp": 1741202000000
		}`))
	}))
	defer srv.Close()

	g := NewSyncGateway(srv.URL, "")
	got, err := g.SetStatus(context.Background(), "tok", "ord-9", entities.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusProcessing, got.Status)
	assert.Equal(t, "operator1", got.AttendedBy)
	require.NotNil(t, got.AttendedAt)
}

func TestSyncGateway_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "admin", body["username"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token": "tok-new", "user": {"id": "u1", "username": "admin", "role": "admin"}}`))
	}))
	defer srv.Close()

	g := NewSyncGateway(srv.URL, "")
	token, user, err := g.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)
	assert.Equal(t, "admin", user.Username)
}

func TestSyncGateway_DashboardAnalytics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analytics/dashboard", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
		  "allTime": {"totalOrders": 3, "totalRevenue": 99723.76, "countByStatus": {"new": 1, "processing": 1, "completed": 1}},
		  "recent": {"totalOrders": 1, "totalRevenue": 28500},
		  "topProducts": [{"id": 7, "name": "TREVORCEL", "count": 2, "totalRevenue": 71223.76}],
		  "recentSales": [{"period": "2025-03-05", "count": 2, "revenue": 71223.76}]
		}`))
	}))
	defer srv.Close()

	g := NewSyncGateway(srv.URL, "")
	data, err := g.DashboardAnalytics(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 3, data.AllTime.TotalOrders)
	assert.Equal(t, 1, data.AllTime.CountByStatus.Processing)
	require.Len(t, data.TopProducts, 1)
	assert.Equal(t, int64(7), data.TopProducts[0].ID)
}
