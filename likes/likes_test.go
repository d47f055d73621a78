package likes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otonaba/otonaba-cli/likes"
	"github.com/otonaba/otonaba-cli/transport"
)

// likeBackend flips the like state on every toggle, like the real endpoint.
type likeBackend struct {
	isLiked   bool
	likeCount int
}

func (b *likeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /likes/posts/7/check", func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(likes.Status{IsLiked: b.isLiked}))
	})
	mux.HandleFunc("POST /likes/posts/7", func(w http.ResponseWriter, _ *http.Request) {
		if b.isLiked {
			b.isLiked = false
			b.likeCount--
		} else {
			b.isLiked = true
			b.likeCount++
		}
		require.NoError(t, json.NewEncoder(w).Encode(likes.ToggleResult{
			IsLiked:   b.isLiked,
			LikeCount: b.likeCount,
		}))
	})
	return mux
}

func TestCheck(t *testing.T) {
	backend := &likeBackend{isLiked: true, likeCount: 3}
	srv := httptest.NewServer(backend.handler(t))
	defer srv.Close()

	client := transport.New(srv.URL)
	status, err := likes.Check(context.Background(), client, 7)
	require.NoError(t, err)
	require.True(t, status.IsLiked)
}

func TestToggleTwiceRoundTrips(t *testing.T) {
	backend := &likeBackend{isLiked: false, likeCount: 5}
	srv := httptest.NewServer(backend.handler(t))
	defer srv.Close()

	client := transport.New(srv.URL)

	first, err := likes.Toggle(context.Background(), client, 7)
	require.NoError(t, err)
	require.True(t, first.IsLiked)
	require.Equal(t, 6, first.LikeCount)

	second, err := likes.Toggle(context.Background(), client, 7)
	require.NoError(t, err)
	require.False(t, second.IsLiked)
	require.Equal(t, 5, second.LikeCount)
}
