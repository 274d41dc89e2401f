package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantpass/pos-api/internal/application/service"
	"github.com/plantpass/pos-api/internal/config"
	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/domain/enum"
	"github.com/plantpass/pos-api/internal/domain/gateway"
	"github.com/plantpass/pos-api/internal/infrastructure/session"
	"github.com/plantpass/pos-api/internal/presentation/http/handler"
	"github.com/plantpass/pos-api/internal/presentation/http/routes"
)

type stubCatalogGateway struct{}

func (stubCatalogGateway) Products(ctx context.Context) ([]entity.Product, error) {
	return []entity.Product{
		{SKU: "FERN", Name: "Boston Fern", UnitPrice: 10},
		{SKU: "ROSE", Name: "Rose Bush", UnitPrice: 12.50},
	}, nil
}
func (stubCatalogGateway) ReplaceProducts(ctx context.Context, products []entity.Product) error {
	return nil
}
func (stubCatalogGateway) Discounts(ctx context.Context) ([]entity.Discount, error) {
	return []entity.Discount{{Name: "Member", Type: enum.DiscountTypePercent, Value: 10}}, nil
}
func (stubCatalogGateway) ReplaceDiscounts(ctx context.Context, discounts []entity.Discount) error {
	return nil
}
func (stubCatalogGateway) PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	return []entity.PaymentMethod{{Name: "cash"}}, nil
}
func (stubCatalogGateway) ReplacePaymentMethods(ctx context.Context, methods []entity.PaymentMethod) error {
	return nil
}

type stubTransactionGateway struct {
	creates int
}

func (s *stubTransactionGateway) Create(ctx context.Context, input *gateway.CreateTransactionInput) (*entity.Transaction, error) {
	s.creates++
	return &entity.Transaction{
		PurchaseID: "AAA-BBB",
		Receipt:    entity.Receipt{Subtotal: 10, Total: 10},
	}, nil
}
func (s *stubTransactionGateway) Read(ctx context.Context, id string) (*entity.Transaction, error) {
	return &entity.Transaction{PurchaseID: id}, nil
}
func (s *stubTransactionGateway) Update(ctx context.Context, id string, input *gateway.UpdateTransactionInput) (*entity.Transaction, error) {
	return &entity.Transaction{PurchaseID: id}, nil
}
func (s *stubTransactionGateway) Delete(ctx context.Context, id string) error { return nil }
func (s *stubTransactionGateway) RecentUnpaid(ctx context.Context, limit int) ([]entity.Transaction, error) {
	return []entity.Transaction{{PurchaseID: "AAA-BBB"}}, nil
}
func (s *stubTransactionGateway) SalesAnalytics(ctx context.Context) (map[string]any, error) {
	return map[string]any{"total_sales": 123.45}, nil
}
func (s *stubTransactionGateway) ExportData(ctx context.Context) ([]entity.Transaction, error) {
	return nil, nil
}

type stubAdminGateway struct{}

func (stubAdminGateway) Login(ctx context.Context, password string) (*gateway.LoginResult, error) {
	return &gateway.LoginResult{Token: "tok"}, nil
}
func (stubAdminGateway) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return nil
}
func (stubAdminGateway) FeatureToggles(ctx context.Context) (*entity.FeatureToggles, error) {
	return &entity.FeatureToggles{CollectEmailAddresses: true}, nil
}
func (stubAdminGateway) SetFeatureToggles(ctx context.Context, toggles *entity.FeatureToggles) error {
	return nil
}
func (stubAdminGateway) LockState(ctx context.Context, resource string) (bool, error) {
	return false, nil
}
func (stubAdminGateway) SetLockState(ctx context.Context, resource string, locked bool) error {
	return nil
}

func newTestRouter(tx *stubTransactionGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App:       config.AppConfig{Name: "pos-test"},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}

	store := session.NewDraftStore(time.Hour, 0)
	catalog := stubCatalogGateway{}

	handlers := &routes.Handlers{
		Draft:    handler.NewDraftHandler(service.NewDraftService(store, tx, catalog, 3)),
		Catalog:  handler.NewCatalogHandler(service.NewCatalogService(catalog)),
		Admin:    handler.NewAdminHandler(service.NewAdminService(stubAdminGateway{})),
		Tracking: handler.NewTrackingHandler(service.NewTrackingService(tx, 5), service.NewExportService(tx)),
	}

	return routes.Setup(handlers, &routes.Deps{
		Cfg:              cfg,
		IdempotencyStore: session.NewIdempotencyStore(time.Hour),
	})
}

func doJSON(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func draftID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.ID)
	return body.Data.ID
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubTransactionGateway{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "pos-test")
}

func TestDraftLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(&stubTransactionGateway{})

	w := doJSON(router, "POST", "/api/v1/drafts", "", nil)
	require.Equal(t, 201, w.Code)
	id := draftID(t, w)

	w = doJSON(router, "PUT", "/api/v1/drafts/"+id+"/items/FERN", `{"value":"2"}`, nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"subtotal":20`)

	w = doJSON(router, "PUT", "/api/v1/drafts/"+id+"/discounts/Member", "", nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"discount":2`)

	w = doJSON(router, "POST", "/api/v1/drafts/"+id+"/submit", "", nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"submitted"`)
	assert.Contains(t, w.Body.String(), "AAA-BBB")
}

func TestSubmitEmptyDraftRejected(t *testing.T) {
	router := newTestRouter(&stubTransactionGateway{})

	w := doJSON(router, "POST", "/api/v1/drafts", "", nil)
	id := draftID(t, w)

	w = doJSON(router, "POST", "/api/v1/drafts/"+id+"/submit", "", nil)
	assert.Equal(t, 422, w.Code)
}

func TestSubmitIdempotencyReplay(t *testing.T) {
	tx := &stubTransactionGateway{}
	router := newTestRouter(tx)

	w := doJSON(router, "POST", "/api/v1/drafts", "", nil)
	id := draftID(t, w)
	doJSON(router, "PUT", "/api/v1/drafts/"+id+"/items/FERN", `{"value":"1"}`, nil)

	headers := map[string]string{"Idempotency-Key": "submit-once"}
	first := doJSON(router, "POST", "/api/v1/drafts/"+id+"/submit", "", headers)
	require.Equal(t, 200, first.Code)

	second := doJSON(router, "POST", "/api/v1/drafts/"+id+"/submit", "", headers)
	assert.Equal(t, 200, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, tx.creates)
}

func TestCompleteRequiresPaymentMethodField(t *testing.T) {
	router := newTestRouter(&stubTransactionGateway{})

	w := doJSON(router, "POST", "/api/v1/drafts", "", nil)
	id := draftID(t, w)

	w = doJSON(router, "POST", "/api/v1/drafts/"+id+"/complete", `{}`, nil)
	assert.Equal(t, 400, w.Code)
}

func TestUnknownDraftReturns404(t *testing.T) {
	router := newTestRouter(&stubTransactionGateway{})

	w := doJSON(router, "GET", "/api/v1/drafts/does-not-exist", "", nil)
	assert.Equal(t, 404, w.Code)
}

func TestCatalogEditRequiresToken(t *testing.T) {
	router := newTestRouter(&stubTransactionGateway{})
	body := `{"products":[{"SKU":"FERN","item":"Boston Fern","price_ea":10}]}`

	w := doJSON(router, "PUT", "/api/v1/products", body, nil)
	assert.Equal(t, 401, w.Code)

	w = doJSON(router, "PUT", "/api/v1/products", body, map[string]string{
		"Authorization": "Bearer some-token",
	})
	assert.Equal(t, 200, w.Code)
}

func TestExpiredTokenRejectedEarly(t *testing.T) {
	router := newTestRouter(&stubTransactionGateway{})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	w := doJSON(router, "GET", "/api/v1/products", "", map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestRecentUnpaidAndAnalytics(t *testing.T) {
	router := newTestRouter(&stubTransactionGateway{})

	w := doJSON(router, "GET", "/api/v1/tracking/recent-unpaid?limit=3", "", nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "AAA-BBB")

	w = doJSON(router, "GET", "/api/v1/tracking/sales-analytics", "", nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "total_sales")
}

func TestExportDownload(t *testing.T) {
	router := newTestRouter(&stubTransactionGateway{})

	w := doJSON(router, "GET", "/api/v1/admin/export/transactions", "", map[string]string{
		"Authorization": "Bearer some-token",
	})
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
}

func TestAdminLogin(t *testing.T) {
	router := newTestRouter(&stubTransactionGateway{})

	w := doJSON(router, "POST", "/api/v1/admin/login", `{"password":"secret"}`, nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok"`)

	w = doJSON(router, "POST", "/api/v1/admin/login", `{}`, nil)
	assert.Equal(t, 400, w.Code)
}
