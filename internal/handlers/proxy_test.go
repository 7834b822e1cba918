package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"terravista-listings/pkg/listings"
	"terravista-listings/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger()
	os.Exit(m.Run())
}

func newProxyRouter(upstreamURL string) *gin.Engine {
	router := gin.New()
	handler := NewProxyHandler(listings.NewClient(upstreamURL))
	router.POST("/api/projects", handler.ForwardProjects)
	return router
}

func TestForwardProjects(t *testing.T) {
	upstreamBody := `{"success":true,"data":[{"id":"1","name":"Marina Tower"}],"pagination":{"page":1,"limit":20}}`
	var seenBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		seenBody = string(raw)
		if got := r.URL.Query().Get("page"); got != "3" {
			t.Errorf("expected page=3 forwarded, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "12" {
			t.Errorf("expected limit=12 forwarded, got %q", got)
		}
		w.Write([]byte(upstreamBody))
	}))
	defer upstream.Close()

	router := newProxyRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/projects?page=3&limit=12", strings.NewReader(`{"type":"Villa"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != upstreamBody {
		t.Errorf("upstream body not relayed verbatim: %s", rec.Body.String())
	}
	if seenBody != `{"type":"Villa"}` {
		t.Errorf("filter body not forwarded verbatim: %s", seenBody)
	}
}

func TestForwardProjects_DefaultsPageAndLimit(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "1" {
			t.Errorf("expected default page=1, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "20" {
			t.Errorf("expected default limit=20, got %q", got)
		}
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer upstream.Close()

	router := newProxyRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/projects", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestForwardProjects_UpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	router := newProxyRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if envelope["success"] != false {
		t.Error("expected success=false")
	}
	if envelope["message"] != "Failed to fetch properties" {
		t.Errorf("unexpected message: %v", envelope["message"])
	}
	data, ok := envelope["data"].([]interface{})
	if !ok || len(data) != 0 {
		t.Errorf("expected empty data array, got %v", envelope["data"])
	}
	if envelope["error"] == nil || envelope["error"] == "" {
		t.Error("expected error detail to be populated")
	}
}

func TestForwardProjects_UpstreamErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"bad filter"}`))
	}))
	defer upstream.Close()

	router := newProxyRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected upstream status mirrored, got %d", rec.Code)
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if envelope["message"] != "API error: 400 Bad Request" {
		t.Errorf("unexpected message: %v", envelope["message"])
	}
}
