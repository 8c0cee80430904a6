package users

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/dropboxkit/dropbox"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	core, err := dropbox.NewClient("test-token", zerolog.Nop(),
		dropbox.WithAPIHost(server.URL))
	require.NoError(t, err)

	return NewClient(core, zerolog.Nop())
}

func TestGetCurrentAccount(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/users/get_current_account", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "null", string(body))

		w.Write([]byte(`{
			"account_id": "dbid:AAH4f99T0taONIb-OurWxbNQ6ywGRopQngc",
			"name": {
				"given_name": "Franz",
				"surname": "Ferdinand",
				"familiar_name": "Franz",
				"display_name": "Franz Ferdinand",
				"abbreviated_name": "FF"
			},
			"email": "franz@example.com",
			"email_verified": true,
			"locale": "en",
			"is_paired": true,
			"account_type": {".tag": "business"}
		}`))
	}))

	acct, err := client.GetCurrentAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dbid:AAH4f99T0taONIb-OurWxbNQ6ywGRopQngc", acct.AccountID)
	assert.Equal(t, "Franz Ferdinand", acct.Name.DisplayName)
	assert.True(t, acct.EmailVerified)
	assert.Equal(t, "business", acct.AccountType.Tag)
}

func TestGetSpaceUsage(t *testing.T) {
	t.Run("individual allocation", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2/users/get_space_usage", r.URL.Path)
			w.Write([]byte(`{"used":314159265,"allocation":{".tag":"individual","allocated":10000000000}}`))
		}))

		usage, err := client.GetSpaceUsage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(314159265), usage.Used)
		assert.Equal(t, "individual", usage.Allocation.Tag)
		assert.Equal(t, uint64(10000000000), usage.Allocation.Allocated)
	})

	t.Run("unauthorized token", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error_summary":"invalid_access_token/","error":{".tag":"invalid_access_token"}}`))
		}))

		_, err := client.GetSpaceUsage(context.Background())
		var apiErr *dropbox.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsUnauthorized())
	})
}
