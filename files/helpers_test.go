package files

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/dropboxkit/dropbox"
)

// newTestClient points every host at the same fake server so any call
// style can be exercised.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	core, err := dropbox.NewClient("test-token", zerolog.Nop(),
		dropbox.WithAPIHost(server.URL),
		dropbox.WithContentHost(server.URL),
		dropbox.WithNotifyHost(server.URL),
	)
	require.NoError(t, err)

	return NewClient(core, zerolog.Nop()), server
}

// countingHandler fails the test if any request arrives. Used to prove
// validation errors short-circuit before the network.
func countingHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})
}
