package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halalfull-support/internal/catalog"
	"halalfull-support/internal/config"
	"halalfull-support/internal/modes"
	"halalfull-support/internal/support"
)

type fakeSupport struct {
	reply support.Reply
	calls []string
}

func (f *fakeSupport) GenerateResponse(_ context.Context, q string) support.Reply {
	f.calls = append(f.calls, "chat:"+q)
	return f.reply
}

func (f *fakeSupport) SearchProducts(q string) string {
	f.calls = append(f.calls, "search:"+q)
	return "Matching products in chicken: Organic Chicken Breast, Free-Range Whole Chicken"
}

func (f *fakeSupport) TrackOrder(q string) catalog.OrderRecord {
	f.calls = append(f.calls, "track:"+q)
	return catalog.DefaultOrderIndex().Lookup(q)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestChat(t *testing.T) {
	svc := &fakeSupport{reply: support.Reply{Text: "Yes, all products are certified halal."}}
	srv := NewServer(svc)

	rec := do(t, srv, http.MethodPost, "/api/chat", `{"query":"  Is it halal?  "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Yes, all products are certified halal.", body["reply"])
	_, hasErr := body["error"]
	assert.False(t, hasErr)
	assert.Equal(t, []string{"chat:Is it halal?"}, svc.calls)
}

func TestChatFailureStillReturnsFallback(t *testing.T) {
	svc := &fakeSupport{reply: support.Reply{
		Text:       config.FallbackReply,
		Diagnostic: "Error generating response: auth: 401",
	}}
	srv := NewServer(svc)

	rec := do(t, srv, http.MethodPost, "/api/chat", `{"query":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, config.FallbackReply, body["reply"])
	assert.Equal(t, "Error generating response: auth: 401", body["error"])
}

func TestBadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"chat invalid json", "/api/chat", `{"query":`},
		{"chat blank query", "/api/chat", `{"query":"   "}`},
		{"search missing query", "/api/products/search", `{}`},
		{"track blank order", "/api/orders/track", `{"order_number":""}`},
		{"track invalid json", "/api/orders/track", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSupport{}
			rec := do(t, NewServer(svc), http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decode(t, rec)["error"])
			assert.Empty(t, svc.calls)
		})
	}
}

func TestProductSearch(t *testing.T) {
	svc := &fakeSupport{}
	rec := do(t, NewServer(svc), http.MethodPost, "/api/products/search", `{"query":"chicken"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec)["result"], "Organic Chicken Breast")
	assert.Equal(t, []string{"search:chicken"}, svc.calls)
}

func TestOrderTracking(t *testing.T) {
	srv := NewServer(&fakeSupport{})

	rec := do(t, srv, http.MethodPost, "/api/orders/track", `{"order_number":"HF67890"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Processing", body["status"])
	assert.Equal(t, "5-7 days", body["estimated_delivery"])

	rec = do(t, srv, http.MethodPost, "/api/orders/track", `{"order_number":"HF00000"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, catalog.StatusNotFound, body["status"])
	_, hasDelivery := body["estimated_delivery"]
	assert.False(t, hasDelivery)
}

func TestModes(t *testing.T) {
	rec := do(t, NewServer(&fakeSupport{}), http.MethodGet, "/api/modes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []modes.Mode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, modes.AvailableModes, got)
}

func TestWidgetPageAndHealth(t *testing.T) {
	srv := NewServer(&fakeSupport{})

	rec := do(t, srv, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "HalalFull Customer Support Chatbot")
	assert.Contains(t, rec.Body.String(), "support@halalfull.com")

	rec = do(t, srv, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])

	rec = do(t, srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware(t *testing.T) {
	srv := NewServer(&fakeSupport{})

	rec := do(t, srv, http.MethodGet, "/healthz", "")
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, id)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(requestIDHeader))

	rec = do(t, srv, http.MethodOptions, "/api/chat", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := NewServer(&fakeSupport{}).ListenAndServe(ctx, "127.0.0.1:0")
	assert.NoError(t, err)
}
