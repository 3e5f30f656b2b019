// Copyright (c) 2025. Alvin Baena.
// SPDX-License-Identifier: MIT

package hibp

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/net/context"
)

func TestClientRange(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, "1E4C9B93F3F0682250B6CF8331B7EE68FD7:3730471\r\n")
	}))
	defer server.Close()

	body, err := NewClient(server.URL).Range(context.Background(), "5BAA6")
	if err != nil {
		t.Fatalf("Should not fail range request: %s", err)
	}

	if gotPath != "/range/5BAA6" {
		t.Errorf("Request should hit the range resource for the prefix, got %s", gotPath)
	}

	if body != "1E4C9B93F3F0682250B6CF8331B7EE68FD7:3730471\r\n" {
		t.Errorf("Body should be returned untouched, got %q", body)
	}
}

func TestClientRangeNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer server.Close()

	// 4xx responses are not retried by the underlying client, the error
	// comes back immediately.
	if _, err := NewClient(server.URL).Range(context.Background(), "5BAA6"); err == nil {
		t.Errorf("A non-200 status should be an error")
	}
}

func TestClientRangeConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	if _, err := NewClient(server.URL).Range(context.Background(), "5BAA6"); err == nil {
		t.Errorf("A refused connection should be an error")
	}
}

func TestClientDefaultBaseURL(t *testing.T) {
	if NewClient("").baseURL != DefaultBaseURL {
		t.Errorf("An empty base URL should select the public API")
	}
}
