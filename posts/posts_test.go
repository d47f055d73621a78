package posts_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otonaba/otonaba-cli/posts"
	"github.com/otonaba/otonaba-cli/transport"
)

func TestListSendsFiltersAndDecodesPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "3", r.URL.Query().Get("limit"))
		require.Equal(t, "travel", r.URL.Query().Get("category"))
		require.Equal(t, "onsen", r.URL.Query().Get("search"))

		w.Write([]byte(`{
			"posts": [{"id": 12, "title": "autumn onsen trip", "category": "travel",
				"author_nickname": "hiro", "comment_count": 2, "like_count": 5}],
			"pagination": {"total": 7, "page": 2, "limit": 3, "totalPages": 3}
		}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	resp, err := posts.List(context.Background(), client, posts.ListParams{
		Page:     2,
		Limit:    3,
		Category: "travel",
		Search:   "onsen",
	})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)
	require.Equal(t, int64(12), resp.Posts[0].ID)
	require.Equal(t, 5, resp.Posts[0].LikeCount)
	require.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestListDefaultsToPageOneAndOmitsEmptyFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1", r.URL.Query().Get("page"))
		require.False(t, r.URL.Query().Has("category"))
		require.False(t, r.URL.Query().Has("search"))
		w.Write([]byte(`{"posts": [], "pagination": {}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	_, err := posts.List(context.Background(), client, posts.ListParams{})
	require.NoError(t, err)
}

func TestCreateSendsImagesAlongside(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/posts", r.URL.Path)

		var body struct {
			Title    string           `json:"title"`
			Content  string           `json:"content"`
			Category string           `json:"category"`
			Images   []posts.NewImage `json:"images"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "hello", body.Title)
		require.Len(t, body.Images, 1)
		require.Equal(t, "abc", body.Images[0].CloudinaryID)

		w.Write([]byte(`{"id": 99, "title": "hello"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	post, err := posts.Create(context.Background(), client, "hello", "body", "chat",
		[]posts.NewImage{{URL: "https://img.example/x.jpg", CloudinaryID: "abc"}})
	require.NoError(t, err)
	require.Equal(t, int64(99), post.ID)
}

func TestUpdateAndDeleteHitTheRightPaths(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"id": 12}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := transport.New(srv.URL)

	_, err := posts.Update(context.Background(), client, 12, "t", "c", "chat")
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/posts/12", gotPath)

	require.NoError(t, posts.Delete(context.Background(), client, 12))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/posts/12", gotPath)
}

func TestGetPropagatesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"post not found"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	_, err := posts.Get(context.Background(), client, 404)

	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "post not found", apiErr.Message)
}
