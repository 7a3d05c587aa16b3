package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"content-humanizer/config"
	"content-humanizer/humanizer"
	"content-humanizer/models"
	"content-humanizer/services"
	"content-humanizer/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }
func (zeroRand) IntN(int) int     { return 0 }

func newTestRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *store.MemStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemStore()
	st.Add(models.CollectionBrands, models.Document{Name: "Acme", Fields: map[string]string{
		"summary": "Acme builds stunning cars for people who enjoy driving on long and winding roads.",
	}})
	st.Add(models.CollectionModels, models.Document{Name: "Roadster", Fields: map[string]string{
		"summary": "A quick car.",
	}})

	engine := humanizer.New(humanizer.WithRand(zeroRand{}))
	svc := services.NewHumanizeService(st, engine, nil, zap.NewNop(), services.HumanizeOptions{})
	if cfg == nil {
		cfg = &config.Config{}
	}
	return newRouter(cfg, svc, zap.NewNop()), st
}

func doJSON(t *testing.T, r http.Handler, method, path, body string, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequestWithContext(context.Background(), method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" && bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("{")) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	w, body := doJSON(t, r, http.MethodGet, "/humanize/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestAPIKeyMiddleware(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{APISecretKey: "s3cret"})

	w, body := doJSON(t, r, http.MethodGet, "/humanize/health", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "content-humanizer: missing or invalid X-API-KEY header", body["error"])

	w, _ = doJSON(t, r, http.MethodGet, "/humanize/health", "", "X-API-KEY", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/humanize/health", "", "X-API-KEY", "s3cret")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTestRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w, body := doJSON(t, r, http.MethodPost, "/humanize/test", `{"text":"An amazing car!!!"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "An amazing car!!!", body["before"])
	assert.Equal(t, "An interesting car!", body["after"])

	w, body = doJSON(t, r, http.MethodPost, "/humanize/test", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Text is required", body["error"])
}

func TestContentRouteAcceptsAnyJSON(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, body := doJSON(t, r, http.MethodPost, "/humanize/content", `{"text":"It is premium."}`)
	assert.Equal(t, "It's high-quality.", body["text"])

	for _, in := range []string{`{"text":42}`, `{"text":null}`, `{}`, `{"text":{"a":1}}`} {
		w, body := doJSON(t, r, http.MethodPost, "/humanize/content", in)
		assert.Equal(t, http.StatusOK, w.Code, in)
		assert.Equal(t, "", body["text"], in)
	}

	w, _ := doJSON(t, r, http.MethodPost, "/humanize/content", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArrayRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, body := doJSON(t, r, http.MethodPost, "/humanize/array", `{"items":["A stunning car.", 7, ""]}`)
	assert.Equal(t, []any{"A attractive car.", "", ""}, body["items"])

	_, body = doJSON(t, r, http.MethodPost, "/humanize/array", `{"items":"nope"}`)
	assert.Equal(t, []any{}, body["items"])
}

func TestEngineSummariesRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, body := doJSON(t, r, http.MethodPost, "/humanize/engine-summaries",
		`{"engines":[{"title":"2.0","summary":"An exceptional engine.","power":"190 hp"}]}`)
	engines := body["engines"].([]any)
	require.Len(t, engines, 1)
	e := engines[0].(map[string]any)
	assert.Equal(t, "2.0", e["title"])
	assert.Equal(t, "An solid engine.", e["summary"])
	assert.Equal(t, "190 hp", e["power"])

	_, body = doJSON(t, r, http.MethodPost, "/humanize/engine-summaries", `{}`)
	assert.Equal(t, []any{}, body["engines"])
}

func TestCollectionRoute(t *testing.T) {
	r, st := newTestRouter(t, nil)

	w, body := doJSON(t, r, http.MethodPost, "/humanize/brands?dry_run=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["dry_run"])
	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["updated"])

	doc, _ := st.Get(models.CollectionBrands, 1)
	assert.Contains(t, doc.Fields["summary"], "stunning")

	w, _ = doJSON(t, r, http.MethodPost, "/humanize/brands", "")
	require.Equal(t, http.StatusOK, w.Code)
	doc, _ = st.Get(models.CollectionBrands, 1)
	assert.Contains(t, doc.Fields["summary"], "attractive")
}

func TestAllRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w, body := doJSON(t, r, http.MethodPost, "/humanize/all", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Humanized 1 items across all collections", body["message"])
	assert.NotEmpty(t, body["run_id"])
	results := body["results"].(map[string]any)
	assert.Len(t, results, 4)
	for _, key := range []string{"brands", "models", "upcomingCars", "variants"} {
		assert.Contains(t, results, key)
	}
	brands := results["brands"].(map[string]any)
	assert.Equal(t, float64(1), brands["updated"])
}

func TestPreviewRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w, body := doJSON(t, r, http.MethodPost, "/humanize/preview", `{"type":"brands","limit":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["previewCount"])

	w, body = doJSON(t, r, http.MethodPost, "/humanize/preview", `{"type":"upcoming"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid type. Use: brands, models, or variants", body["error"])

	w, body = doJSON(t, r, http.MethodPost, "/humanize/preview", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "models", body["type"])

	w, _ = doJSON(t, r, http.MethodPost, "/humanize/preview", `{"type":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreviewRouteChunkedEmptyBody(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/humanize/preview", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "models", body["type"])
	assert.Equal(t, float64(0), body["previewCount"])
}

func TestDiagnoseRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w, body := doJSON(t, r, http.MethodGet, "/humanize/diagnose/brands", "")
	require.Equal(t, http.StatusOK, w.Code)
	counts := body["counts"].(map[string]any)
	assert.Equal(t, float64(1), counts[services.StatusPending])

	w, _ = doJSON(t, r, http.MethodGet, "/humanize/diagnose/trucks", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
