package files

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/dropboxkit/async"
)

func TestUploadSessionStart(t *testing.T) {
	ctx := context.Background()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/files/upload_session/start", r.URL.Path)
		assert.JSONEq(t, `{}`, r.Header.Get("Dropbox-API-Arg"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "chunk-0", string(body))

		w.Write([]byte(`{"session_id":"sid:AAAAAAAAAAAAAAA"}`))
	}))

	res, err := client.UploadSessionStart(ctx, UploadSessionStartArg{}, strings.NewReader("chunk-0"))
	require.NoError(t, err)
	assert.Equal(t, "sid:AAAAAAAAAAAAAAA", res.SessionID)
}

func TestUploadSessionAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("session id and offset pass through unmodified", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2/files/upload_session/append_v2", r.URL.Path)

			var arg struct {
				Cursor struct {
					SessionID string `json:"session_id"`
					Offset    uint64 `json:"offset"`
				} `json:"cursor"`
			}
			require.NoError(t, json.Unmarshal([]byte(r.Header.Get("Dropbox-API-Arg")), &arg))
			assert.Equal(t, "sid:AAAAAAAAAAAAAAA", arg.Cursor.SessionID)
			assert.Equal(t, uint64(4194304), arg.Cursor.Offset)

			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "chunk-1", string(body))

			w.WriteHeader(http.StatusOK)
		}))

		err := client.UploadSessionAppend(ctx, UploadSessionAppendArg{
			Cursor: UploadSessionCursor{SessionID: "sid:AAAAAAAAAAAAAAA", Offset: 4194304},
		}, strings.NewReader("chunk-1"))
		require.NoError(t, err)
	})

	t.Run("missing session id rejected without request", func(t *testing.T) {
		client, _ := newTestClient(t, countingHandler(t))

		err := client.UploadSessionAppend(ctx, UploadSessionAppendArg{
			Cursor: UploadSessionCursor{Offset: 100},
		}, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrMissingSessionID)
	})

	t.Run("incorrect offset error surfaces verbatim", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error_summary":"incorrect_offset/","error":{".tag":"incorrect_offset","correct_offset":8388608}}`))
		}))

		err := client.UploadSessionAppend(ctx, UploadSessionAppendArg{
			Cursor: UploadSessionCursor{SessionID: "sid:A", Offset: 0},
		}, strings.NewReader("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "incorrect_offset/")
	})
}

func TestUploadSessionFinish(t *testing.T) {
	ctx := context.Background()

	t.Run("commit carries cursor and write mode", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2/files/upload_session/finish", r.URL.Path)
			assert.JSONEq(t,
				`{"cursor":{"session_id":"sid:A","offset":8388608},"commit":{"path":"/big.bin","mode":{".tag":"overwrite"}}}`,
				r.Header.Get("Dropbox-API-Arg"))

			w.Write([]byte(`{"name":"big.bin","path_display":"/big.bin","size":8388608,"rev":"0456"}`))
		}))

		md, err := client.UploadSessionFinish(ctx, UploadSessionFinishArg{
			Cursor: UploadSessionCursor{SessionID: "sid:A", Offset: 8388608},
			Commit: CommitInfo{Path: "/big.bin", Mode: WriteModeOverwrite},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "big.bin", md.Name)
		assert.Equal(t, uint64(8388608), md.Size)
	})

	t.Run("validation without request", func(t *testing.T) {
		client, _ := newTestClient(t, countingHandler(t))

		_, err := client.UploadSessionFinish(ctx, UploadSessionFinishArg{
			Commit: CommitInfo{Path: "/big.bin"},
		}, nil)
		assert.ErrorIs(t, err, ErrMissingSessionID)

		_, err = client.UploadSessionFinish(ctx, UploadSessionFinishArg{
			Cursor: UploadSessionCursor{SessionID: "sid:A"},
		}, nil)
		assert.ErrorIs(t, err, ErrMissingPath)
	})
}

func TestUploadSessionFinishBatch(t *testing.T) {
	ctx := context.Background()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/files/upload_session/finish_batch_v2", r.URL.Path)
		w.Write([]byte(`{"entries":[
			{".tag":"success","name":"a.bin","path_display":"/a.bin","size":100},
			{".tag":"failure","failure":{".tag":"lookup_failed"}}
		]}`))
	}))

	res, err := client.UploadSessionFinishBatch(ctx, UploadSessionFinishBatchArg{
		Entries: []UploadSessionFinishArg{
			{
				Cursor: UploadSessionCursor{SessionID: "sid:A", Offset: 100},
				Commit: CommitInfo{Path: "/a.bin"},
			},
			{
				Cursor: UploadSessionCursor{SessionID: "sid:B", Offset: 50},
				Commit: CommitInfo{Path: "/b.bin"},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)

	success := res.Entries[0]
	assert.Equal(t, "success", success.Tag)
	require.NotNil(t, success.File)
	assert.Equal(t, "a.bin", success.File.Name)
	assert.True(t, success.File.IsFile())

	failure := res.Entries[1]
	assert.Equal(t, "failure", failure.Tag)
	assert.Nil(t, failure.File)
	assert.NotEmpty(t, failure.Failure)
}

func TestUploadSessionFinishBatchCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("in progress", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2/files/upload_session/finish_batch/check", r.URL.Path)
			w.Write([]byte(`{".tag":"in_progress"}`))
		}))

		status, err := client.UploadSessionFinishBatchCheck(ctx, async.PollArg{AsyncJobID: "dbjid:x"})
		require.NoError(t, err)
		assert.True(t, status.InProgress())
	})

	t.Run("missing job id rejected without request", func(t *testing.T) {
		client, _ := newTestClient(t, countingHandler(t))

		_, err := client.UploadSessionFinishBatchCheck(ctx, async.PollArg{})
		assert.ErrorIs(t, err, async.ErrMissingJobID)
	})
}
