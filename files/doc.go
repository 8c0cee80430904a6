// Package files provides a client for the files namespace of the Dropbox v2
// API: copy, move, delete, and create-folder (plus their batch variants),
// folder listing with cursors and longpoll, search, upload, download,
// thumbnails, file tags, and the chunked upload-session protocol.
//
// # Batch jobs
//
// The batch methods either complete inline or return an async_job_id. The
// paired ...BatchCheck methods are independent one-shot requests; re-invoking
// them until the job completes, with whatever cadence and timeout, is
// entirely the caller's responsibility:
//
//	launch, err := client.CopyBatch(ctx, files.RelocationBatchArg{Entries: entries})
//	if err != nil {
//	    return err
//	}
//	for launch.InProgress() {
//	    time.Sleep(time.Second)
//	    status, err := client.CopyBatchCheck(ctx, async.PollArg{AsyncJobID: launch.AsyncJobID})
//	    if err != nil {
//	        return err
//	    }
//	    if status.Tag != async.TagInProgress {
//	        break
//	    }
//	}
//
// # Upload sessions
//
// Files above the 150 MB single-request limit go through an upload session:
// start (optionally with the first chunk), any number of appends carrying
// the session id and byte offset, and a finish naming the destination. The
// library passes the session id and offset through exactly as supplied;
// slicing the file and keeping the offset monotonic is the caller's job:
//
//	start, _ := client.UploadSessionStart(ctx, files.UploadSessionStartArg{}, firstChunk)
//	cursor := files.UploadSessionCursor{SessionID: start.SessionID, Offset: uint64(len(first))}
//	_ = client.UploadSessionAppend(ctx, files.UploadSessionAppendArg{Cursor: cursor}, nextChunk)
//	...
//	md, _ := client.UploadSessionFinish(ctx, files.UploadSessionFinishArg{
//	    Cursor: cursor,
//	    Commit: files.CommitInfo{Path: "/big.bin", Mode: files.WriteModeAdd},
//	}, lastChunk)
package files
