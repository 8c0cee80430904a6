// Package async holds the launch/poll wire types shared by the batch
// endpoints. A batch route either completes inline or hands back an
// async_job_id; the paired check route reports in_progress, complete, or an
// undocumented tag, which is preserved as-is rather than treated as an
// error. Polling cadence is entirely the caller's responsibility.
package async

import "errors"

// Job status tags the check endpoints are known to return. Servers may send
// tags outside this set; they pass through unmodified.
const (
	TagAsyncJobID = "async_job_id"
	TagInProgress = "in_progress"
	TagComplete   = "complete"
	TagFailed     = "failed"
)

// ErrMissingJobID is returned when a check call is made without a job id.
var ErrMissingJobID = errors.New("async job id is required")

// PollArg identifies the job a check endpoint should report on.
type PollArg struct {
	AsyncJobID string `json:"async_job_id"`
}

// LaunchResult is the base shape of a batch launch response: either the job
// completed inline or the server issued a job id to poll.
type LaunchResult struct {
	Tag        string `json:".tag"`
	AsyncJobID string `json:"async_job_id,omitempty"`
}

// InProgress reports whether the launch handed back a job id.
func (r LaunchResult) InProgress() bool {
	return r.Tag == TagAsyncJobID
}

// Complete reports whether the job finished inline.
func (r LaunchResult) Complete() bool {
	return r.Tag == TagComplete
}

// JobStatus is the base shape of a check response.
type JobStatus struct {
	Tag string `json:".tag"`
}

// InProgress reports whether the job is still running.
func (s JobStatus) InProgress() bool {
	return s.Tag == TagInProgress
}

// Complete reports whether the job finished.
func (s JobStatus) Complete() bool {
	return s.Tag == TagComplete
}

// Failed reports whether the server marked the job failed.
func (s JobStatus) Failed() bool {
	return s.Tag == TagFailed
}
