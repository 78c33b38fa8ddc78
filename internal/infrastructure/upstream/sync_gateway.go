package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tienda_admin/internal/domain/entities"
	"tienda_admin/internal/usecase/interfaces"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("upstream")

// SyncGateway is the HTTP client for the upstream commerce API. It owns the
// boundary translation: the upstream's nested record shape comes in, the
// internal Order shape goes out.
type SyncGateway struct {
	baseURL      string
	proofBaseURL string
	client       *http.Client
}

var _ interfaces.ISyncGateway = (*SyncGateway)(nil)

// NewSyncGateway builds a gateway for the given API base URL. proofBaseURL
// is the host used to make payment-proof paths servable; when empty the API
// base is used.
func NewSyncGateway(baseURL, proofBaseURL string) *SyncGateway {
	baseURL = strings.TrimRight(baseURL, "/")
	if proofBaseURL == "" {
		proofBaseURL = baseURL
	}
	return &SyncGateway{
		baseURL:      baseURL,
		proofBaseURL: strings.TrimRight(proofBaseURL, "/"),
		client:       &http.Client{Timeout: 15 * time.Second},
	}
}

// remoteCustomer accepts both customer encodings served by the upstream: the
// structured record, and the legacy bare name string.
type remoteCustomer struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Barrio   string `json:"barrio"`
	City     string `json:"city"`
}

func (c *remoteCustomer) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*c = remoteCustomer{Name: name}
		return nil
	}
	type alias remoteCustomer
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = remoteCustomer(a)
	return nil
}

type remoteProduct struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

type remotePayment struct {
	Total        float64 `json:"total"`
	ProductPrice float64 `json:"productPrice"`
	DeliveryCost float64 `json:"deliveryCost"`
	ImagePath    string  `json:"imagePath"`
}

type remoteOrder struct {
	ID                string         `json:"id"`
	Timestamp         int64          `json:"timestamp"`
	Status            string         `json:"status"`
	Customer          remoteCustomer `json:"customer"`
	Product           remoteProduct  `json:"product"`
	Payment           remotePayment  `json:"payment"`
	AttendedBy        string         `json:"attendedBy"`
	AttendedTimestamp int64          `json:"attendedTimestamp"`
	Notes             string         `json:"notes"`
}

func (g *SyncGateway) normalize(r remoteOrder) entities.Order {
	o := entities.Order{
		ID:        r.ID,
		CreatedAt: time.UnixMilli(r.Timestamp).UTC(),
		Status:    entities.OrderStatus(r.Status),
		Customer: entities.Customer{
			Name:         r.Customer.Name,
			IDNumber:     r.Customer.IDNumber,
			Phone:        r.Customer.Phone,
			Address:      r.Customer.Address,
			Neighborhood: r.Customer.Barrio,
			City:         r.Customer.City,
		},
		Product: entities.Product{
			ID:          r.Product.ID,
			Name:        r.Product.Name,
			Description: r.Product.Description,
			Price:       r.Product.Price,
			ImageURL:    r.Product.ImageURL,
		},
		Payment: entities.Payment{
			Total:        r.Payment.Total,
			ProductPrice: r.Payment.ProductPrice,
			DeliveryCost: r.Payment.DeliveryCost,
		},
		AttendedBy: r.AttendedBy,
		Notes:      r.Notes,
	}
	if r.Payment.ImagePath != "" {
		o.Payment.ProofURL = g.proofBaseURL + r.Payment.ImagePath
	}
	if r.AttendedTimestamp > 0 {
		at := time.UnixMilli(r.AttendedTimestamp).UTC()
		o.AttendedAt = &at
	}
	return o
}

func (g *SyncGateway) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Errorf("%s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: %v", interfaces.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return interfaces.ErrUnauthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warningf("%s %s returned status %d", method, path, resp.StatusCode)
		return &interfaces.StatusError{StatusCode: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Login exchanges operator credentials for an upstream token.
func (g *SyncGateway) Login(ctx context.Context, username, password string) (string, entities.User, error) {
	var resp struct {
		Token string        `json:"token"`
		User  entities.User `json:"user"`
	}
	payload := map[string]string{"username": username, "password": password}
	if err := g.do(ctx, http.MethodPost, "/auth/login", "", payload, &resp); err != nil {
		return "", entities.User{}, err
	}
	log.Infof("login succeeded for user %s", resp.User.Username)
	return resp.Token, resp.User, nil
}

// FetchAll reads the full order list and normalizes every record.
func (g *SyncGateway) FetchAll(ctx context.Context, token string) ([]entities.Order, error) {
	if token == "" {
		return nil, interfaces.ErrUnauthenticated
	}
	var remote []remoteOrder
	if err := g.do(ctx, http.MethodGet, "/orders", token, nil, &remote); err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(remote))
	for _, r := range remote {
		orders = append(orders, g.normalize(r))
	}
	log.Debugf("fetched %d orders", len(orders))
	return orders, nil
}

// SetStatus requests a status transition and returns the authoritative
// updated order as the upstream recorded it.
func (g *SyncGateway) SetStatus(ctx context.Context, token, orderID string, status entities.OrderStatus) (entities.Order, error) {
	if token == "" {
		return entities.Order{}, interfaces.ErrUnauthenticated
	}
	var remote remoteOrder
	payload := map[string]string{"status": string(status)}
	path := "/orders/" + orderID + "/status"
	if err := g.do(ctx, http.MethodPatch, path, token, payload, &remote); err != nil {
		return entities.Order{}, err
	}
	return g.normalize(remote), nil
}

// DashboardAnalytics reads the upstream's precomputed dashboard payload.
func (g *SyncGateway) DashboardAnalytics(ctx context.Context, token string) (entities.AnalyticsData, error) {
	if token == "" {
		return entities.AnalyticsData{}, interfaces.ErrUnauthenticated
	}
	var data entities.AnalyticsData
	if err := g.do(ctx, http.MethodGet, "/analytics/dashboard", token, nil, &data); err != nil {
		return entities.AnalyticsData{}, err
	}
	return data, nil
}
