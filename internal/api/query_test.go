package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"breachlook/pkg/hibp"
)

func testRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	router := gin.New()
	RegisterQueryApi(router.Group("/v1/check"), hibp.NewLookuper(hibp.NewClient(server.URL)))
	return router
}

func pwnedUpstream(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "1E4C9B93F3F0682250B6CF8331B7EE68FD7:3730471\r\n")
}

func TestCheckPassword(t *testing.T) {
	router := testRouter(t, pwnedUpstream)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/check/password", strings.NewReader(`{"password":"password"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Should respond 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp queryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Should not fail decoding response: %s", err)
	}

	if !resp.Pwned || resp.Sites != 1 || resp.Occurrences != 3730471 {
		t.Errorf("Wrong exposure reported: %+v", resp)
	}

	if resp.Strength == nil {
		t.Errorf("Plaintext checks should include a strength estimate")
	}
}

func TestCheckPasswordSafe(t *testing.T) {
	router := testRouter(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "0000000000000000000000000000000000A:1\r\n")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/check/password", strings.NewReader(`{"password":"a-truly-unique-string-xyz123"}`))
	router.ServeHTTP(rec, req)

	var resp queryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Should not fail decoding response: %s", err)
	}

	if resp.Pwned || resp.Sites != 0 || resp.Occurrences != 0 {
		t.Errorf("A safe password should report zero exposure, got %+v", resp)
	}
}

func TestCheckPasswordMissingBody(t *testing.T) {
	router := testRouter(t, pwnedUpstream)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/check/password", strings.NewReader(`{}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("A missing password should be a 400, got %d", rec.Code)
	}
}

func TestCheckPasswordUpstreamFailure(t *testing.T) {
	router := testRouter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/check/password", strings.NewReader(`{"password":"password"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("An upstream failure should be a 502, got %d", rec.Code)
	}
}

func TestCheckHash(t *testing.T) {
	router := testRouter(t, pwnedUpstream)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/check/hash",
		strings.NewReader(`{"hash":"5baa61e4c9b93f3f0682250b6cf8331b7ee68fd7"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Should respond 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp queryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Should not fail decoding response: %s", err)
	}

	if !resp.Pwned || resp.Strength != nil {
		t.Errorf("Hash checks should report exposure without a strength estimate, got %+v", resp)
	}
}

func TestCheckHashRejectsGarbage(t *testing.T) {
	router := testRouter(t, pwnedUpstream)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/check/hash", strings.NewReader(`{"hash":"not-a-hash"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("A malformed hash should be a 400, got %d", rec.Code)
	}
}
