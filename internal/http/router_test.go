package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comercialsoares.com/app/internal/config"
	"comercialsoares.com/app/internal/http/handlers"
	"comercialsoares.com/app/internal/http/session"
	"comercialsoares.com/app/internal/mailer"
	"comercialsoares.com/app/internal/modules/auth"
	"comercialsoares.com/app/internal/modules/customers"
	"comercialsoares.com/app/internal/modules/orders"
	"comercialsoares.com/app/internal/receipt"
	"comercialsoares.com/app/internal/storage"
	"comercialsoares.com/app/internal/store"
)

type apiFixture struct {
	router     *gin.Engine
	cookie     *http.Cookie
	mail       *mailer.Mock
	queue      *store.Queue
	archiveDir string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Server: config.ServerConfig{Env: "test", AllowedOrigins: []string{"http://localhost:5173"}},
		Auth: config.AuthConfig{
			Password:     "segredo",
			CookieName:   "balcao_session",
			CookieSecret: []byte("test-secret"),
			SessionTTL:   time.Hour,
		},
		Company: config.CompanyConfig{Name: "Comercial Soares"},
		SMTP:    config.SMTPConfig{From: "pedidos@example.com", FromName: "Comercial Soares"},
	}

	persist, err := store.NewJSONFile(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, err)
	queue := store.NewQueue(persist, logger)
	t.Cleanup(queue.Close)

	orderRepo := orders.NewRepo()
	customerRepo := customers.NewRepo()
	gen := receipt.NewGenerator(cfg.Company)
	archiveDir := t.TempDir()
	emitter := receipt.NewEmitter(gen, storage.NewLocal(archiveDir, "/receipts"), logger)
	svc := orders.NewService(orderRepo, queue, emitter, logger)
	mock := &mailer.Mock{}

	codec := session.NewCodec(cfg.Auth.CookieSecret, cfg.Auth.CookieName, false, cfg.Auth.SessionTTL)
	r := NewRouter(cfg, codec, Handlers{
		Auth:      handlers.NewAuthHandler(auth.NewChecker(cfg.Auth), codec),
		Orders:    handlers.NewOrdersHandler(svc, customerRepo),
		Receipts:  handlers.NewReceiptsHandler(svc, gen, mock, cfg.SMTP),
		Customers: handlers.NewCustomersHandler(customerRepo, svc, queue),
		Dashboard: handlers.NewDashboardHandler(svc),
	}, logger)

	return &apiFixture{router: r, mail: mock, queue: queue, archiveDir: archiveDir}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if f.cookie != nil {
		req.AddCookie(f.cookie)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) login(t *testing.T) {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/login", gin.H{"password": "segredo"})
	require.Equal(t, http.StatusOK, w.Code)
	res := w.Result()
	require.NotEmpty(t, res.Cookies())
	f.cookie = res.Cookies()[0]
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodPost, "/api/login", gin.H{"password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Senha incorreta")
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	f := newAPIFixture(t)
	for _, path := range []string{"/api/orders", "/api/customers", "/api/dashboard"} {
		w := f.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestSessionEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["loggedIn"])

	f.login(t)
	w = f.do(t, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["loggedIn"])
}

func TestTamperedCookieRejected(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)
	f.cookie.Value = f.cookie.Value + "x"
	w := f.do(t, http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func (f *apiFixture) createCustomer(t *testing.T, name string) string {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/customers", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func (f *apiFixture) startOrder(t *testing.T, customerID string) string {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/orders", gin.H{"customerId": customerID})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestOrderLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)

	custID := f.createCustomer(t, "Maria Silva")
	orderID := f.startOrder(t, custID)

	// manual item
	w := f.do(t, http.MethodPost, "/api/orders/"+orderID+"/items",
		gin.H{"produto": "Arroz 5kg", "quantidade": 2, "preco": "25.90"})
	require.Equal(t, http.StatusOK, w.Code)

	// bulk paste
	w = f.do(t, http.MethodPost, "/api/orders/"+orderID+"/bulk",
		gin.H{"text": "3 Feijao v8,50 1 Oleo v7,99"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["added"])

	// finalize without items is refused elsewhere; this one has three
	w = f.do(t, http.MethodPost, "/api/orders/"+orderID+"/finalize", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["finalizado"])

	// editing a finalized order is a conflict
	w = f.do(t, http.MethodPost, "/api/orders/"+orderID+"/items",
		gin.H{"produto": "Extra", "quantidade": 1, "preco": "1.00"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// double finalize is a conflict
	w = f.do(t, http.MethodPost, "/api/orders/"+orderID+"/finalize", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// reopen, edit again, refinalize
	w = f.do(t, http.MethodPost, "/api/orders/"+orderID+"/reopen", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodDelete, "/api/orders/"+orderID+"/items/0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodPost, "/api/orders/"+orderID+"/finalize", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodDelete, "/api/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodGet, "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFinalizeEmptyOrderRefused(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)
	orderID := f.startOrder(t, f.createCustomer(t, "Ana"))

	w := f.do(t, http.MethodPost, "/api/orders/"+orderID+"/finalize", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Adicione itens")
}

func TestBulkWithNothingParsedKeepsOrder(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)
	orderID := f.startOrder(t, f.createCustomer(t, "Ana"))

	w := f.do(t, http.MethodPost, "/api/orders/"+orderID+"/bulk", gin.H{"text": "rabisco sem formato"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["added"])
}

func TestAddItemRejectsBadValues(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)
	orderID := f.startOrder(t, f.createCustomer(t, "Ana"))

	for _, in := range []gin.H{
		{"produto": "X", "quantidade": 0, "preco": "1.00"},
		{"produto": "X", "quantidade": -1, "preco": "1.00"},
		{"produto": "X", "quantidade": 1, "preco": "-1.00"},
	} {
		w := f.do(t, http.MethodPost, "/api/orders/"+orderID+"/items", in)
		assert.Equal(t, http.StatusBadRequest, w.Code, fmt.Sprintf("%v", in))
	}
}

func TestStartOrderUnknownCustomer(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)
	w := f.do(t, http.MethodPost, "/api/orders", gin.H{"customerId": "nao-existe"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderSearchAndFinalizedFilter(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)

	aID := f.startOrder(t, f.createCustomer(t, "Maria Silva"))
	f.startOrder(t, f.createCustomer(t, "Joao Souza"))

	w := f.do(t, http.MethodPost, "/api/orders/"+aID+"/items",
		gin.H{"produto": "Cafe", "quantidade": 1, "preco": "12.00"})
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodPost, "/api/orders/"+aID+"/finalize", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/orders?search=maria", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody(t, w)["orders"].([]any)
	require.Len(t, list, 1)

	w = f.do(t, http.MethodGet, "/api/orders?finalized=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decodeBody(t, w)["orders"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, true, list[0].(map[string]any)["finalizado"])
}

func TestReceiptDownload(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)
	orderID := f.startOrder(t, f.createCustomer(t, "Maria"))

	// not finalized yet
	w := f.do(t, http.MethodGet, "/api/orders/"+orderID+"/receipt", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	f.do(t, http.MethodPost, "/api/orders/"+orderID+"/items",
		gin.H{"produto": "Cafe", "quantidade": 1, "preco": "12.00"})
	f.do(t, http.MethodPost, "/api/orders/"+orderID+"/finalize", nil)

	w = f.do(t, http.MethodGet, "/api/orders/"+orderID+"/receipt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "pedido_")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestReceiptReprintRefreshesArchive(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)
	orderID := f.startOrder(t, f.createCustomer(t, "Maria"))

	// reprint before finalize is a conflict
	w := f.do(t, http.MethodPost, "/api/orders/"+orderID+"/reprint", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	f.do(t, http.MethodPost, "/api/orders/"+orderID+"/items",
		gin.H{"produto": "Cafe", "quantidade": 1, "preco": "12.00"})
	f.do(t, http.MethodPost, "/api/orders/"+orderID+"/finalize", nil)

	archived := filepath.Join(f.archiveDir, "pedido_1.pdf")
	require.Eventually(t, func() bool {
		_, err := os.Stat(archived)
		return err == nil
	}, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(archived))

	w = f.do(t, http.MethodPost, "/api/orders/"+orderID+"/reprint", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Eventually(t, func() bool {
		_, err := os.Stat(archived)
		return err == nil
	}, 3*time.Second, 10*time.Millisecond)
}

func TestReceiptEmail(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)
	orderID := f.startOrder(t, f.createCustomer(t, "Maria"))
	f.do(t, http.MethodPost, "/api/orders/"+orderID+"/items",
		gin.H{"produto": "Cafe", "quantidade": 1, "preco": "12.00"})
	f.do(t, http.MethodPost, "/api/orders/"+orderID+"/finalize", nil)

	w := f.do(t, http.MethodPost, "/api/orders/"+orderID+"/email", gin.H{"to": "cliente@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	sent, ok := f.mail.Last()
	require.True(t, ok)
	require.Len(t, f.mail.Sent, 1)
	assert.Equal(t, []string{"cliente@example.com"}, sent.To)
	require.Len(t, sent.Attachments, 1)
	assert.Equal(t, "application/pdf", sent.Attachments[0].ContentType)
	assert.True(t, bytes.HasPrefix(sent.Attachments[0].Data, []byte("%PDF")))
}

func TestCustomerCRUDAndStats(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)

	id := f.createCustomer(t, "Maria Silva")

	// name is required
	w := f.do(t, http.MethodPost, "/api/customers", gin.H{"phone": "34 99999-0000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPut, "/api/customers/"+id,
		gin.H{"name": "Maria S. Silva", "phone": "34 99999-0000"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Maria S. Silva", decodeBody(t, w)["name"])

	w = f.do(t, http.MethodGet, "/api/customers?search=maria", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeBody(t, w)["customers"].([]any), 1)

	orderID := f.startOrder(t, id)
	f.do(t, http.MethodPost, "/api/orders/"+orderID+"/items",
		gin.H{"produto": "Cafe", "quantidade": 3, "preco": "10.00"})
	f.do(t, http.MethodPost, "/api/orders/"+orderID+"/finalize", nil)

	w = f.do(t, http.MethodGet, "/api/customers/"+id+"/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody(t, w)["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["totalOrders"])
	assert.Equal(t, "R$ 30.00", stats["totalSpentFormatado"])

	// deleting the customer keeps the order history
	w = f.do(t, http.MethodDelete, "/api/customers/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodGet, "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardSummary(t *testing.T) {
	f := newAPIFixture(t)
	f.login(t)

	custID := f.createCustomer(t, "Maria")
	for i := 0; i < 2; i++ {
		orderID := f.startOrder(t, custID)
		f.do(t, http.MethodPost, "/api/orders/"+orderID+"/items",
			gin.H{"produto": "Cafe", "quantidade": 2, "preco": "10.00"})
		f.do(t, http.MethodPost, "/api/orders/"+orderID+"/finalize", nil)
	}

	w := f.do(t, http.MethodGet, "/api/dashboard?filter=today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["totalOrders"])
	assert.Equal(t, float64(4), body["totalItemsSold"])
	assert.Equal(t, "R$ 40.00", body["totalRevenueFormatado"])
	assert.Equal(t, "R$ 20.00", body["averageTicketFormatado"])

	// inverted custom range matches nothing
	w = f.do(t, http.MethodGet, "/api/dashboard?filter=custom&start=2030-01-02&end=2030-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["totalOrders"])
}
