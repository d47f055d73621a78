package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/otonaba/otonaba-cli/transport"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestGetWithoutTokenSendsNoAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := transport.New(srv.URL, transport.WithTokenSource(staticToken("")))

	var out map[string]bool
	err := client.Get(context.Background(), "/ping", nil, &out)
	require.NoError(t, err)
	require.Empty(t, gotAuth)
	require.True(t, out["ok"])
}

func TestGetWithTokenSendsBearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := transport.New(srv.URL, transport.WithTokenSource(staticToken("t1")))

	require.NoError(t, client.Get(context.Background(), "/ping", nil, nil))
	require.Equal(t, "Bearer t1", gotAuth)
}

func TestEveryRequestCarriesARequestID(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	require.NoError(t, client.Get(context.Background(), "/ping", nil, nil))
	require.NotEmpty(t, gotID)
}

func TestUnauthorizedRunsHandlerAndReturnsSessionExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := transport.New(srv.URL, transport.WithTokenSource(staticToken("stale")))

	var handlerRuns int
	client.HandleUnauthorized(func() { handlerRuns++ })

	err := client.Get(context.Background(), "/posts", nil, nil)
	require.ErrorIs(t, err, transport.ErrSessionExpired)
	require.Equal(t, 1, handlerRuns)

	// The policy is global: a different call hits the same handler.
	err = client.Delete(context.Background(), "/messages/1")
	require.ErrorIs(t, err, transport.ErrSessionExpired)
	require.Equal(t, 2, handlerRuns)
}

func TestNonOKStatusBecomesAPIErrorWithBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"title is required"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	err := client.Post(context.Background(), "/posts", map[string]string{}, nil)

	var apiErr *transport.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "title is required", apiErr.Message)
}

func TestNonOKStatusWithoutMessageFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	err := client.Get(context.Background(), "/posts", nil, nil)

	var apiErr *transport.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	err := client.Post(context.Background(), "/messages", map[string]string{"subject": "hi"}, nil)
	require.NoError(t, err)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "hi", gotBody["subject"])
}

func TestPostMultipartSendsFormFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close() //nolint:errcheck
		require.Equal(t, "photo.jpg", header.Filename)

		w.Write([]byte(`{"url":"https://img.example/x.jpg","cloudinary_id":"abc"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := transport.New(srv.URL)

	var out struct {
		URL          string `json:"url"`
		CloudinaryID string `json:"cloudinary_id"`
	}
	err := client.PostMultipart(context.Background(), "/upload", "image", "photo.jpg",
		strings.NewReader("fake image bytes"), &out)
	require.NoError(t, err)
	require.Equal(t, "abc", out.CloudinaryID)
}

func TestGetEncodesQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	query := map[string][]string{"page": {"2"}, "category": {"travel"}}
	require.NoError(t, client.Get(context.Background(), "/posts", query, nil))
	require.Contains(t, gotQuery, "page=2")
	require.Contains(t, gotQuery, "category=travel")
}
