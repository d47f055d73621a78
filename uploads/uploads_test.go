package uploads_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otonaba/otonaba-cli/transport"
	"github.com/otonaba/otonaba-cli/uploads"
)

func TestUploadSendsTheFileUnderTheImageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload", r.URL.Path)

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close() //nolint:errcheck
		require.Equal(t, "photo.jpg", header.Filename)

		contents, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "fake image bytes", string(contents))

		w.Write([]byte(`{"url":"https://img.example/x.jpg","cloudinary_id":"abc123"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	img, err := uploads.Upload(context.Background(), client, "photo.jpg",
		strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	require.Equal(t, "https://img.example/x.jpg", img.URL)
	require.Equal(t, "abc123", img.CloudinaryID)
}

func TestDeleteEscapesTheDeletionID(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := transport.New(srv.URL)
	require.NoError(t, uploads.Delete(context.Background(), client, "folder/abc123"))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/upload/folder%2Fabc123", gotPath)
}
