package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/communiteer/welcomehub/internal/pkg/apperrors"
)

func TestPostSendsJSON(t *testing.T) {
	var got map[string]string
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(time.Second)
	if err := client.Post(context.Background(), srv.URL, map[string]string{"firstName": "Ana"}); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if contentType != "application/json" {
		t.Fatalf("content type = %q", contentType)
	}
	if got["firstName"] != "Ana" {
		t.Fatalf("payload = %v", got)
	}
}

func TestPostRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("script error"))
	}))
	defer srv.Close()

	err := NewClient(time.Second).Post(context.Background(), srv.URL, map[string]string{})
	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("err = %v, want *RejectedError", err)
	}
	if rejected.StatusCode != http.StatusInternalServerError || rejected.Body != "script error" {
		t.Fatalf("rejected = %+v", rejected)
	}
	if !errors.Is(err, apperrors.ErrUpstreamRejected) {
		t.Fatal("expected ErrUpstreamRejected")
	}
	if errors.Is(err, apperrors.ErrUpstreamUnreachable) {
		t.Fatal("rejection should not read as unreachable")
	}
}

func TestPostUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(time.Second).Post(context.Background(), url, map[string]string{})
	if !errors.Is(err, apperrors.ErrUpstreamUnreachable) {
		t.Fatalf("err = %v, want ErrUpstreamUnreachable", err)
	}
}

func TestPostTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	err := NewClient(20 * time.Millisecond).Post(context.Background(), srv.URL, map[string]string{})
	if !errors.Is(err, apperrors.ErrUpstreamUnreachable) {
		t.Fatalf("err = %v, want ErrUpstreamUnreachable", err)
	}
}

func TestPostInvalidURL(t *testing.T) {
	err := NewClient(time.Second).Post(context.Background(), "://bad", map[string]string{})
	if !errors.Is(err, apperrors.ErrUpstreamUnreachable) {
		t.Fatalf("err = %v, want ErrUpstreamUnreachable", err)
	}
}

func TestPostAcceptsAny2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	if err := NewClient(0).Post(context.Background(), srv.URL, map[string]string{}); err != nil {
		t.Fatalf("Post: %v", err)
	}
}
