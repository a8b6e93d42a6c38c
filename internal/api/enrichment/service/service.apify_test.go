// Package enrichsvc - tests for the provider client error mapping.
package enrichsvc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
)

func testClient(t *testing.T, handler http.HandlerFunc) *ApifyClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewApifyClient("test-token")
	client.actorURL = server.URL
	return client
}

func fetchErrorStatus(t *testing.T, client *ApifyClient) int {
	t.Helper()
	_, err := client.FetchSiteData(context.Background(), "example.com")
	if err == nil {
		t.Fatal("FetchSiteData returned nil error")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("error is not a *common.Error: %v", err)
	}
	return customErr.StatusCode
}

func TestFetchSiteData_MissingToken(t *testing.T) {
	client := NewApifyClient("")
	if got := fetchErrorStatus(t, client); got != common.StatusInternalServerError {
		t.Errorf("status = %d, want 500 for missing token", got)
	}
}

func TestFetchSiteData_StatusMapping(t *testing.T) {
	cases := []struct {
		provider int
		want     int
	}{
		{400, common.StatusBadRequest},
		{401, common.StatusUnauthorized},
		{402, common.StatusPaymentRequired},
		{429, common.StatusTooManyRequests},
		{500, common.StatusInternalServerError},
		{503, 503}, // unmapped statuses pass through
	}
	for _, tc := range cases {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.provider)
		})
		if got := fetchErrorStatus(t, client); got != tc.want {
			t.Errorf("provider %d: status = %d, want %d", tc.provider, got, tc.want)
		}
	}
}

func TestFetchSiteData_EmptyDatasetIs404(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	})
	if got := fetchErrorStatus(t, client); got != common.StatusNotFound {
		t.Errorf("status = %d, want 404 for empty dataset", got)
	}
}

func TestFetchSiteData_ReturnsFirstItem(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"url":"example.com","name":"Example","engagements":{"visits":20000}}]`))
	})

	payload, err := client.FetchSiteData(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("FetchSiteData: %v", err)
	}
	if payload.URL != "example.com" || payload.Name != "Example" {
		t.Errorf("payload = %+v", payload)
	}
	if payload.Engagements == nil || payload.Engagements.Visits != 20000 {
		t.Errorf("engagements not decoded: %+v", payload.Engagements)
	}
}
