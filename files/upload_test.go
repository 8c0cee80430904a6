package files

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/dropboxkit/dropbox"
)

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("commit info in header, bytes in body", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2/files/upload", r.URL.Path)
			assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
			assert.JSONEq(t,
				`{"path":"/docs/note.txt","mode":{".tag":"add"},"autorename":true}`,
				r.Header.Get("Dropbox-API-Arg"))

			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "note body", string(body))

			w.Write([]byte(`{"name":"note.txt","path_display":"/docs/note.txt","size":9,"rev":"0aa1"}`))
		}))

		md, err := client.Upload(ctx, CommitInfo{
			Path:       "/docs/note.txt",
			Mode:       WriteModeAdd,
			Autorename: true,
		}, strings.NewReader("note body"))
		require.NoError(t, err)
		assert.Equal(t, "note.txt", md.Name)
		assert.Equal(t, "0aa1", md.Rev)
	})

	t.Run("update mode carries rev", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.JSONEq(t,
				`{"path":"/docs/note.txt","mode":{".tag":"update","update":"0aa1"}}`,
				r.Header.Get("Dropbox-API-Arg"))
			w.Write([]byte(`{"name":"note.txt","rev":"0aa2"}`))
		}))

		md, err := client.Upload(ctx, CommitInfo{
			Path: "/docs/note.txt",
			Mode: WriteModeUpdate("0aa1"),
		}, strings.NewReader("new body"))
		require.NoError(t, err)
		assert.Equal(t, "0aa2", md.Rev)
	})

	t.Run("missing path rejected without request", func(t *testing.T) {
		client, _ := newTestClient(t, countingHandler(t))

		_, err := client.Upload(ctx, CommitInfo{}, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrMissingPath)
	})
}

func TestDownload(t *testing.T) {
	ctx := context.Background()

	t.Run("metadata from result header", func(t *testing.T) {
		modified := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2/files/download", r.URL.Path)
			assert.JSONEq(t, `{"path":"/docs/note.txt"}`, r.Header.Get("Dropbox-API-Arg"))

			w.Header().Set("Dropbox-API-Result",
				`{"name":"note.txt","path_display":"/docs/note.txt","size":9,"rev":"0aa1","server_modified":"2024-03-01T12:00:00Z"}`)
			w.Write([]byte("note body"))
		}))

		md, body, err := client.Download(ctx, DownloadArg{Path: "/docs/note.txt"})
		require.NoError(t, err)
		defer body.Close()

		content, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "note body", string(content))
		assert.Equal(t, "note.txt", md.Name)
		assert.Equal(t, uint64(9), md.Size)
		assert.True(t, md.ServerModified.Equal(modified))
	})

	t.Run("not found surfaces error body", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error_summary":"path/not_found/","error":{".tag":"path"}}`))
		}))

		_, _, err := client.Download(ctx, DownloadArg{Path: "/nope"})
		var apiErr *dropbox.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsNotFound())
	})

	t.Run("missing path rejected without request", func(t *testing.T) {
		client, _ := newTestClient(t, countingHandler(t))

		_, _, err := client.Download(ctx, DownloadArg{})
		assert.ErrorIs(t, err, ErrMissingPath)
	})
}
