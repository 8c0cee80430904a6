package files

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTemporaryLink(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2/files/get_temporary_link", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"path":"/a.txt"}`, string(body))

			w.Write([]byte(`{
				"metadata":{"name":"a.txt","rev":"0aa1","size":42},
				"link":"https://dl.dropboxusercontent.com/apitl/1/abc"
			}`))
		}))

		res, err := client.GetTemporaryLink(ctx, GetTemporaryLinkArg{Path: "/a.txt"})
		require.NoError(t, err)
		assert.Equal(t, "a.txt", res.Metadata.Name)
		assert.Equal(t, "https://dl.dropboxusercontent.com/apitl/1/abc", res.Link)
	})

	t.Run("missing path rejected without request", func(t *testing.T) {
		client, _ := newTestClient(t, countingHandler(t))

		_, err := client.GetTemporaryLink(ctx, GetTemporaryLinkArg{})
		assert.ErrorIs(t, err, ErrMissingPath)
	})
}
