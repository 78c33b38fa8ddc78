package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tienda_admin/internal/adapter/http/handlers/mocks"
	"tienda_admin/internal/domain/entities"
	"tienda_admin/internal/usecase"
	"tienda_admin/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAnalyticsUseCase(ctrl)
	h := NewAnalyticsHandler(uc)

	r := gin.New()
	r.GET("/v1/analytics/summary", h.Summary)

	snap := entities.AggregateSnapshot{
		TotalOrders:     3,
		TotalRevenue:    99723.76,
		CountByStatus:   map[entities.OrderStatus]int{entities.OrderStatusNew: 2, entities.OrderStatusCompleted: 1},
		RevenueByStatus: map[entities.OrderStatus]float64{},
		RevenueByDay:    []entities.RevenuePoint{{Day: "2025-03-05", Count: 3, Revenue: 99723.76}},
	}
	uc.EXPECT().LocalSummary(gomock.Any()).Return(snap)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		TotalOrders  int     `json:"total_orders"`
		TotalRevenue float64 `json:"total_revenue"`
		RevenueByDay []struct {
			Day string `json:"day"`
		} `json:"revenue_by_day"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.TotalOrders != 3 || len(body.RevenueByDay) != 1 || body.RevenueByDay[0].Day != "2025-03-05" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/dashboard", h.Dashboard)

		uc.EXPECT().Dashboard(gomock.Any()).Return(entities.AnalyticsData{}, usecase.ErrNoActiveSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("session expired upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/dashboard", h.Dashboard)

		uc.EXPECT().Dashboard(gomock.Any()).Return(entities.AnalyticsData{}, interfaces.ErrUnauthenticated)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc)

		r := gin.New()
		r.GET("/v1/analytics/dashboard", h.Dashboard)

		data := entities.AnalyticsData{
			AllTime: entities.PeriodStats{TotalOrders: 4, TotalRevenue: 120000},
		}
		uc.EXPECT().Dashboard(gomock.Any()).Return(data, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			AllTime struct {
				TotalOrders int `json:"totalOrders"`
			} `json:"allTime"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.AllTime.TotalOrders != 4 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
