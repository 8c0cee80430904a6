package files

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFolder(t *testing.T) {
	ctx := context.Background()

	t.Run("page with cursor", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2/files/list_folder", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"path":"/photos","limit":100}`, string(body))

			w.Write([]byte(`{
				"entries": [
					{".tag":"file","name":"a.jpg","path_display":"/photos/a.jpg","size":1024},
					{".tag":"folder","name":"albums","path_display":"/photos/albums"},
					{".tag":"deleted","name":"old.jpg","path_display":"/photos/old.jpg"}
				],
				"cursor": "opaque-cursor-1",
				"has_more": true
			}`))
		}))

		res, err := client.ListFolder(ctx, ListFolderArg{Path: "/photos", Limit: 100})
		require.NoError(t, err)
		require.Len(t, res.Entries, 3)
		assert.True(t, res.Entries[0].IsFile())
		assert.True(t, res.Entries[1].IsFolder())
		assert.True(t, res.Entries[2].IsDeleted())
		assert.True(t, res.HasMore)
		assert.Equal(t, "opaque-cursor-1", res.Cursor)
	})

	t.Run("root path is valid", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"path":""}`, string(body))
			w.Write([]byte(`{"entries":[],"cursor":"c","has_more":false}`))
		}))

		_, err := client.ListFolder(ctx, ListFolderArg{})
		require.NoError(t, err)
	})
}

func TestListFolderContinue(t *testing.T) {
	ctx := context.Background()

	t.Run("cursor passes through unmodified", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2/files/list_folder/continue", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"cursor":"opaque-cursor-1"}`, string(body))
			w.Write([]byte(`{"entries":[],"cursor":"opaque-cursor-2","has_more":false}`))
		}))

		res, err := client.ListFolderContinue(ctx, ListFolderContinueArg{Cursor: "opaque-cursor-1"})
		require.NoError(t, err)
		assert.Equal(t, "opaque-cursor-2", res.Cursor)
		assert.False(t, res.HasMore)
	})

	t.Run("missing cursor rejected without request", func(t *testing.T) {
		client, _ := newTestClient(t, countingHandler(t))

		_, err := client.ListFolderContinue(ctx, ListFolderContinueArg{})
		assert.ErrorIs(t, err, ErrMissingCursor)
	})
}

func TestListFolderGetLatestCursor(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/files/list_folder/get_latest_cursor", r.URL.Path)
		w.Write([]byte(`{"cursor":"latest-cursor"}`))
	}))

	res, err := client.ListFolderGetLatestCursor(context.Background(), ListFolderArg{Path: "/photos"})
	require.NoError(t, err)
	assert.Equal(t, "latest-cursor", res.Cursor)
}

func TestListFolderLongpoll(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthenticated passthrough", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2/files/list_folder/longpoll", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"cursor":"latest-cursor","timeout":60}`, string(body))

			w.Write([]byte(`{"changes":true,"backoff":30}`))
		}))

		res, err := client.ListFolderLongpoll(ctx, ListFolderLongpollArg{Cursor: "latest-cursor", Timeout: 60})
		require.NoError(t, err)
		assert.True(t, res.Changes)
		assert.Equal(t, uint64(30), res.Backoff)
	})

	t.Run("missing cursor rejected without request", func(t *testing.T) {
		client, _ := newTestClient(t, countingHandler(t))

		_, err := client.ListFolderLongpoll(ctx, ListFolderLongpollArg{Timeout: 60})
		assert.ErrorIs(t, err, ErrMissingCursor)
	})
}
