package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lpu_quotation/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-secret"

type client struct {
	t      *testing.T
	router http.Handler
	bearer string
}

func (c client) do(method, path string, body any, auth bool) (int, map[string]any) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func newTestClient(t *testing.T) client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("LPU_STORE", StoreMemory)
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("CATALOG_FILE", "")

	router, err := NewRouter(context.Background())
	require.NoError(t, err)

	bearer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		Name: "Compras",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "buyer-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return client{t: t, router: router, bearer: bearer}
}

func TestNewRouter_UnknownStore(t *testing.T) {
	t.Setenv("LPU_STORE", "postgres")
	_, err := NewRouter(context.Background())
	require.Error(t, err)
}

func TestRoutes_Ping(t *testing.T) {
	c := newTestClient(t)
	code, body := c.do(http.MethodGet, "/v1/ping", nil, false)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "pong", body["message"])
}

func TestRoutes_InternalRequiresJWT(t *testing.T) {
	c := newTestClient(t)
	code, _ := c.do(http.MethodGet, "/v1/lpus", nil, false)
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = c.do(http.MethodGet, "/v1/catalog/groups/1", nil, true)
	require.Equal(t, http.StatusOK, code)
}

// TestRoutes_QuotationRoundTrip drives one document through draft, a quoting round, a supplier
// submission, a revision round and the final approval.
func TestRoutes_QuotationRoundTrip(t *testing.T) {
	c := newTestClient(t)
	limit := time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02")

	code, supplier := c.do(http.MethodPost, "/v1/suppliers", map[string]any{
		"social_reason": "Construtora Alfa", "tax_id": "12.345.678/0001-90",
	}, true)
	require.Equal(t, http.StatusCreated, code)
	supplierID := supplier["id"].(string)

	code, doc := c.do(http.MethodPost, "/v1/lpus", map[string]any{
		"work_id": "obra-7", "limit_date": limit,
	}, true)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, "buyer-1", doc["created_by"])
	id := doc["id"].(string)

	code, _ = c.do(http.MethodPatch, "/v1/lpus/"+id+"/items/1.1.2", map[string]any{"quantity": "3"}, true)
	require.Equal(t, http.StatusOK, code)

	code, doc = c.do(http.MethodPost, "/v1/lpus/"+id+"/round", map[string]any{
		"supplier_ids": []string{supplierID},
		"permissions":  map[string]any{"allow_quantity_change": false},
	}, true)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "waiting", doc["status"])
	token := doc["quote_token"].(string)
	require.Len(t, token, 8)

	code, _ = c.do(http.MethodDelete, "/v1/lpus/"+id, nil, true)
	require.Equal(t, http.StatusConflict, code)

	creds := map[string]any{"token": token, "tax_id": "12345678000190"}
	code, _ = c.do(http.MethodPost, "/v1/public/supplier/login", map[string]any{"token": token, "tax_id": "99999999000199"}, false)
	require.Equal(t, http.StatusUnauthorized, code)

	code, view := c.do(http.MethodPost, "/v1/public/supplier/login", creds, false)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, id, view["lpu_id"])

	code, _ = c.do(http.MethodPut, "/v1/public/supplier/lpus/"+id+"/items/1.1.2/quantity", with(creds, "value", 5), false)
	require.Equal(t, http.StatusForbidden, code)

	code, value := c.do(http.MethodPut, "/v1/public/supplier/lpus/"+id+"/items/1.1.2/price", with(creds, "value", "R$ 1.200,50"), false)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "3601.50", value["line_total"])

	code, receipt := c.do(http.MethodPost, "/v1/public/supplier/lpus/"+id+"/submit", with(creds, "signer_name", "Ana Souza"), false)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "3601.50", receipt["total"])

	code, _ = c.do(http.MethodPost, "/v1/public/supplier/lpus/"+id+"/submit", with(creds, "signer_name", "Ana Souza"), false)
	require.Equal(t, http.StatusConflict, code)
	code, _ = c.do(http.MethodPost, "/v1/public/supplier/login", creds, false)
	require.Equal(t, http.StatusForbidden, code)

	code, doc = c.do(http.MethodPost, "/v1/lpus/"+id+"/revision", map[string]any{"comment": "rever preço do item 1.1.2"}, true)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "waiting", doc["status"])
	require.Equal(t, token, doc["quote_token"])
	require.EqualValues(t, 1, doc["revision_count"])

	code, _ = c.do(http.MethodPut, "/v1/public/supplier/lpus/"+id+"/items/1.1.2/price", with(creds, "value", 1100), false)
	require.Equal(t, http.StatusOK, code)
	code, _ = c.do(http.MethodPost, "/v1/public/supplier/lpus/"+id+"/submit", with(creds, "signer_name", "Ana Souza"), false)
	require.Equal(t, http.StatusOK, code)

	code, cmp := c.do(http.MethodGet, "/v1/lpus/"+id+"/revisions/compare?item_id=1.1.2", nil, true)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, map[string]any{"1": 1200.5}, cmp["prices"])

	code, doc = c.do(http.MethodPost, "/v1/lpus/"+id+"/approve", map[string]any{"revision_number": 1}, true)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "approved", doc["status"])
	require.Equal(t, map[string]any{"1.1.2": 1200.5}, doc["prices"])

	code, _ = c.do(http.MethodPost, "/v1/lpus/"+id+"/approve", nil, true)
	require.Equal(t, http.StatusConflict, code)
	code, _ = c.do(http.MethodDelete, "/v1/lpus/"+id, nil, true)
	require.Equal(t, http.StatusConflict, code)
}

func (c client) list(path string) []map[string]any {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+c.bearer)
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	require.Equal(c.t, http.StatusOK, w.Code)

	var out []map[string]any
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// openRoundFor creates a supplier and an LPU over the whole catalog and opens a round for it.
func openRoundFor(c client, taxID string) (string, map[string]any) {
	c.t.Helper()
	code, supplier := c.do(http.MethodPost, "/v1/suppliers", map[string]any{
		"social_reason": "Construtora Beta", "tax_id": taxID,
	}, true)
	require.Equal(c.t, http.StatusCreated, code)

	code, doc := c.do(http.MethodPost, "/v1/lpus", map[string]any{
		"work_id": "obra-9", "limit_date": time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02"),
	}, true)
	require.Equal(c.t, http.StatusCreated, code)
	id := doc["id"].(string)

	code, doc = c.do(http.MethodPost, "/v1/lpus/"+id+"/round", map[string]any{
		"supplier_ids": []string{supplier["id"].(string)},
	}, true)
	require.Equal(c.t, http.StatusOK, code)
	return id, map[string]any{"token": doc["quote_token"], "tax_id": taxID}
}

// TestRoutes_SupplierFillsWholeCatalog runs with the default throttling settings: a supplier typing
// one price per request across the whole catalog must still be able to submit.
func TestRoutes_SupplierFillsWholeCatalog(t *testing.T) {
	c := newTestClient(t)
	id, creds := openRoundFor(c, "45.678.901/0001-23")

	code, _ := c.do(http.MethodPost, "/v1/public/supplier/login", creds, false)
	require.Equal(t, http.StatusOK, code)

	var leaves []string
	for _, e := range c.list("/v1/catalog") {
		if e["is_group"] == nil && e["is_sub_group"] == nil {
			leaves = append(leaves, e["id"].(string))
		}
	}
	require.Greater(t, len(leaves), 5)

	for _, itemID := range leaves {
		code, body := c.do(http.MethodPut, "/v1/public/supplier/lpus/"+id+"/items/"+itemID+"/price", with(creds, "value", "10,00"), false)
		require.Equal(t, http.StatusOK, code, "price %s -> %v", itemID, body["code"])
	}

	code, receipt := c.do(http.MethodPost, "/v1/public/supplier/lpus/"+id+"/submit", with(creds, "signer_name", "Bruno Lima"), false)
	require.Equal(t, http.StatusOK, code, "submit -> %v", receipt["code"])
}

func TestRoutes_SupplierLoginIsThrottled(t *testing.T) {
	c := newTestClient(t)
	id, creds := openRoundFor(c, "45.678.901/0001-23")
	wrong := with(creds, "tax_id", "99999999000199")

	for i := 0; i < 5; i++ {
		code, _ := c.do(http.MethodPost, "/v1/public/supplier/login", wrong, false)
		require.Equal(t, http.StatusUnauthorized, code)
	}
	code, body := c.do(http.MethodPost, "/v1/public/supplier/login", creds, false)
	require.Equal(t, http.StatusTooManyRequests, code)
	require.Equal(t, "TOO_MANY_ATTEMPTS", body["code"])

	// the write budget is separate
	code, _ = c.do(http.MethodPut, "/v1/public/supplier/lpus/"+id+"/items/1.1.2/price", with(creds, "value", 1), false)
	require.Equal(t, http.StatusOK, code)
}

func with(base map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(base)+1)
	for k, v := range base {
		out[k] = v
	}
	out[key] = value
	return out
}
