package listings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"terravista-listings/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func TestFetchProjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/projects" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "100" {
			t.Errorf("expected limit=100, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": "1", "name": "Marina Tower"},
				{"id": "2", "name": "Palm Villa"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.FetchProjects(context.Background(), 1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["name"] != "Marina Tower" {
		t.Errorf("unexpected first record: %v", records[0])
	}
}

func TestFetchProjects_SingleObjectPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"7","name":"Lone Listing"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.FetchProjects(context.Background(), 1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0]["id"] != "7" {
		t.Fatalf("expected single record, got %v", records)
	}
}

func TestFetchProjects_MalformedData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":"not a list"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.FetchProjects(context.Background(), 1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records from malformed payload, got %v", records)
	}
}

func TestFetchProjects_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 404 is not retried, so the failure is immediate.
		http.Error(w, "no such route", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.FetchProjects(context.Background(), 1, 100); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestFetchProjectByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/projects/42" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{"id":"42","name":"Hillside Townhouse"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	record, err := client.FetchProjectByID(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record == nil || record["name"] != "Hillside Townhouse" {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestFetchProjectByID_BareRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"9","name":"Bare Record"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	record, err := client.FetchProjectByID(context.Background(), "9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record == nil || record["name"] != "Bare Record" {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestFetchProjectByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	record, err := client.FetchProjectByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("not found must not be an error, got %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil record, got %v", record)
	}
}

func TestForward(t *testing.T) {
	upstreamBody := `{"success":true,"data":[{"id":"1"}],"pagination":{"page":2}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(upstreamBody))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status, payload, err := client.Forward(context.Background(), "2", "20", []byte(`{"type":"Villa"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if string(payload) != upstreamBody {
		t.Fatalf("payload not relayed verbatim: %s", payload)
	}
}

func TestForward_UpstreamStatusPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"bad filter"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status, payload, err := client.Forward(context.Background(), "1", "20", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if len(payload) == 0 {
		t.Fatal("expected upstream body relayed")
	}
}
