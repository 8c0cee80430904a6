package files

import (
	"encoding/json"
	"time"
)

// Metadata tags used by the file/folder/deleted union.
const (
	MetadataFile    = "file"
	MetadataFolder  = "folder"
	MetadataDeleted = "deleted"
)

// Metadata is a file, folder, or deleted entry, discriminated by the .tag
// field. File-only fields are zero for folder and deleted entries. Routes
// that can only ever return a file (upload, download) return the same shape
// with an empty tag.
type Metadata struct {
	Tag            string    `json:".tag,omitempty"`
	Name           string    `json:"name"`
	ID             string    `json:"id,omitempty"`
	PathLower      string    `json:"path_lower,omitempty"`
	PathDisplay    string    `json:"path_display,omitempty"`
	ClientModified time.Time `json:"client_modified,omitzero"`
	ServerModified time.Time `json:"server_modified,omitzero"`
	Rev            string    `json:"rev,omitempty"`
	Size           uint64    `json:"size,omitempty"`
	ContentHash    string    `json:"content_hash,omitempty"`
	IsDownloadable *bool     `json:"is_downloadable,omitempty"`
}

// IsFile reports whether the entry is a file.
func (m Metadata) IsFile() bool { return m.Tag == MetadataFile }

// IsFolder reports whether the entry is a folder.
func (m Metadata) IsFolder() bool { return m.Tag == MetadataFolder }

// IsDeleted reports whether the entry marks a deletion.
func (m Metadata) IsDeleted() bool { return m.Tag == MetadataDeleted }

// WriteMode selects what happens when the upload path already exists.
// The update variant carries the revision to replace in its own wire field.
type WriteMode struct {
	tag string
	rev string
}

var (
	// WriteModeAdd never overwrites; conflicts get an autorenamed copy.
	WriteModeAdd = WriteMode{tag: "add"}
	// WriteModeOverwrite always overwrites the existing file.
	WriteModeOverwrite = WriteMode{tag: "overwrite"}
)

// WriteModeUpdate overwrites only if the file's current revision matches rev.
func WriteModeUpdate(rev string) WriteMode {
	return WriteMode{tag: "update", rev: rev}
}

// MarshalJSON writes the union shape Dropbox expects: {".tag":"add"} for the
// void variants, {".tag":"update","update":"<rev>"} for update. The zero
// value marshals as add, the server default.
func (m WriteMode) MarshalJSON() ([]byte, error) {
	tag := m.tag
	if tag == "" {
		tag = "add"
	}
	if tag == "update" {
		return json.Marshal(struct {
			Tag    string `json:".tag"`
			Update string `json:"update"`
		}{tag, m.rev})
	}
	return json.Marshal(struct {
		Tag string `json:".tag"`
	}{tag})
}

// CommitInfo describes the destination of an upload or upload-session
// finish: where the file lands and how conflicts are resolved.
type CommitInfo struct {
	Path           string     `json:"path"`
	Mode           WriteMode  `json:"mode"`
	Autorename     bool       `json:"autorename,omitempty"`
	ClientModified *time.Time `json:"client_modified,omitempty"`
	Mute           bool       `json:"mute,omitempty"`
	StrictConflict bool       `json:"strict_conflict,omitempty"`
}

// RelocationPath is one from/to pair for copy and move.
type RelocationPath struct {
	FromPath string `json:"from_path"`
	ToPath   string `json:"to_path"`
}

// RelocationArg are the parameters for copy_v2 and move_v2.
type RelocationArg struct {
	FromPath               string `json:"from_path"`
	ToPath                 string `json:"to_path"`
	Autorename             bool   `json:"autorename,omitempty"`
	AllowOwnershipTransfer bool   `json:"allow_ownership_transfer,omitempty"`
}

// RelocationResult is the metadata of the file or folder at its new location.
type RelocationResult struct {
	Metadata Metadata `json:"metadata"`
}

// RelocationBatchArg are the parameters for copy_batch_v2 and move_batch_v2.
type RelocationBatchArg struct {
	Entries                []RelocationPath `json:"entries"`
	Autorename             bool             `json:"autorename,omitempty"`
	AllowOwnershipTransfer bool             `json:"allow_ownership_transfer,omitempty"`
}

// RelocationBatchLaunch is the copy/move batch launch union: the complete
// variant carries the per-entry results inline, the async_job_id variant
// hands back a job id for the paired check call.
type RelocationBatchLaunch struct {
	Tag        string                 `json:".tag"`
	AsyncJobID string                 `json:"async_job_id,omitempty"`
	Entries    []RelocationBatchEntry `json:"entries,omitempty"`
}

// InProgress reports whether the launch handed back a job id.
func (l RelocationBatchLaunch) InProgress() bool { return l.Tag == "async_job_id" }

// Complete reports whether the batch finished inline.
func (l RelocationBatchLaunch) Complete() bool { return l.Tag == "complete" }

// RelocationBatchEntry is the per-entry result union of a copy/move batch.
type RelocationBatchEntry struct {
	Tag     string          `json:".tag"`
	Success *Metadata       `json:"success,omitempty"`
	Failure json.RawMessage `json:"failure,omitempty"`
}

// RelocationBatchJobStatus is the result of a copy/move batch check call.
// Undocumented tags are preserved as-is.
type RelocationBatchJobStatus struct {
	Tag     string                 `json:".tag"`
	Entries []RelocationBatchEntry `json:"entries,omitempty"`
}

// InProgress reports whether the job is still running.
func (s RelocationBatchJobStatus) InProgress() bool { return s.Tag == "in_progress" }

// Complete reports whether the job finished.
func (s RelocationBatchJobStatus) Complete() bool { return s.Tag == "complete" }

// DeleteArg are the parameters for delete_v2.
type DeleteArg struct {
	Path      string `json:"path"`
	ParentRev string `json:"parent_rev,omitempty"`
}

// DeleteResult is the metadata of the deleted entry.
type DeleteResult struct {
	Metadata Metadata `json:"metadata"`
}

// DeleteBatchArg are the parameters for delete_batch.
type DeleteBatchArg struct {
	Entries []DeleteArg `json:"entries"`
}

// DeleteBatchLaunch is the delete batch launch union.
type DeleteBatchLaunch struct {
	Tag        string             `json:".tag"`
	AsyncJobID string             `json:"async_job_id,omitempty"`
	Entries    []DeleteBatchEntry `json:"entries,omitempty"`
}

// InProgress reports whether the launch handed back a job id.
func (l DeleteBatchLaunch) InProgress() bool { return l.Tag == "async_job_id" }

// Complete reports whether the batch finished inline.
func (l DeleteBatchLaunch) Complete() bool { return l.Tag == "complete" }

// DeleteBatchEntry is the per-entry result union of a delete batch.
type DeleteBatchEntry struct {
	Tag      string          `json:".tag"`
	Metadata *Metadata       `json:"metadata,omitempty"`
	Failure  json.RawMessage `json:"failure,omitempty"`
}

// DeleteBatchJobStatus is the result of a delete batch check call.
type DeleteBatchJobStatus struct {
	Tag     string             `json:".tag"`
	Entries []DeleteBatchEntry `json:"entries,omitempty"`
}

// InProgress reports whether the job is still running.
func (s DeleteBatchJobStatus) InProgress() bool { return s.Tag == "in_progress" }

// Complete reports whether the job finished.
func (s DeleteBatchJobStatus) Complete() bool { return s.Tag == "complete" }

// CreateFolderArg are the parameters for create_folder_v2.
type CreateFolderArg struct {
	Path       string `json:"path"`
	Autorename bool   `json:"autorename,omitempty"`
}

// CreateFolderResult is the metadata of the created folder.
type CreateFolderResult struct {
	Metadata Metadata `json:"metadata"`
}

// CreateFolderBatchArg are the parameters for create_folder_batch.
type CreateFolderBatchArg struct {
	Paths      []string `json:"paths"`
	Autorename bool     `json:"autorename,omitempty"`
	ForceAsync bool     `json:"force_async,omitempty"`
}

// CreateFolderBatchLaunch is the create-folder batch launch union.
type CreateFolderBatchLaunch struct {
	Tag        string                   `json:".tag"`
	AsyncJobID string                   `json:"async_job_id,omitempty"`
	Entries    []CreateFolderBatchEntry `json:"entries,omitempty"`
}

// InProgress reports whether the launch handed back a job id.
func (l CreateFolderBatchLaunch) InProgress() bool { return l.Tag == "async_job_id" }

// Complete reports whether the batch finished inline.
func (l CreateFolderBatchLaunch) Complete() bool { return l.Tag == "complete" }

// CreateFolderBatchEntry is the per-entry result union of a create-folder
// batch.
type CreateFolderBatchEntry struct {
	Tag      string          `json:".tag"`
	Metadata *Metadata       `json:"metadata,omitempty"`
	Failure  json.RawMessage `json:"failure,omitempty"`
}

// CreateFolderBatchJobStatus is the result of a create-folder batch check.
type CreateFolderBatchJobStatus struct {
	Tag     string                   `json:".tag"`
	Entries []CreateFolderBatchEntry `json:"entries,omitempty"`
}

// InProgress reports whether the job is still running.
func (s CreateFolderBatchJobStatus) InProgress() bool { return s.Tag == "in_progress" }

// Complete reports whether the job finished.
func (s CreateFolderBatchJobStatus) Complete() bool { return s.Tag == "complete" }

// GetMetadataArg are the parameters for get_metadata.
type GetMetadataArg struct {
	Path           string `json:"path"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
}

// ListFolderArg are the parameters for list_folder and
// list_folder/get_latest_cursor. An empty path means the root folder.
type ListFolderArg struct {
	Path                        string `json:"path"`
	Recursive                   bool   `json:"recursive,omitempty"`
	IncludeDeleted              bool   `json:"include_deleted,omitempty"`
	IncludeNonDownloadableFiles bool   `json:"include_non_downloadable_files,omitempty"`
	Limit                       uint32 `json:"limit,omitempty"`
}

// ListFolderResult is one page of folder entries. When HasMore is set the
// cursor must be passed unmodified to ListFolderContinue.
type ListFolderResult struct {
	Entries []Metadata `json:"entries"`
	Cursor  string     `json:"cursor"`
	HasMore bool       `json:"has_more"`
}

// ListFolderContinueArg are the parameters for list_folder/continue.
type ListFolderContinueArg struct {
	Cursor string `json:"cursor"`
}

// ListFolderGetLatestCursorResult is a cursor for the folder's current state.
type ListFolderGetLatestCursorResult struct {
	Cursor string `json:"cursor"`
}

// ListFolderLongpollArg are the parameters for list_folder/longpoll. Timeout
// is in seconds; the server waits that long plus up to 90 seconds of jitter.
type ListFolderLongpollArg struct {
	Cursor  string `json:"cursor"`
	Timeout uint64 `json:"timeout,omitempty"`
}

// ListFolderLongpollResult reports whether the folder changed. A non-zero
// Backoff asks the caller to wait that many seconds before polling again;
// honoring it is the caller's business.
type ListFolderLongpollResult struct {
	Changes bool   `json:"changes"`
	Backoff uint64 `json:"backoff,omitempty"`
}

// SearchOptions narrow a search_v2 query.
type SearchOptions struct {
	Path         string `json:"path,omitempty"`
	MaxResults   uint64 `json:"max_results,omitempty"`
	FilenameOnly bool   `json:"filename_only,omitempty"`
}

// SearchArg are the parameters for search_v2.
type SearchArg struct {
	Query   string         `json:"query"`
	Options *SearchOptions `json:"options,omitempty"`
}

// SearchContinueArg are the parameters for search/continue_v2.
type SearchContinueArg struct {
	Cursor string `json:"cursor"`
}

// SearchResult is one page of search matches.
type SearchResult struct {
	Matches []SearchMatch `json:"matches"`
	HasMore bool          `json:"has_more"`
	Cursor  string        `json:"cursor,omitempty"`
}

// SearchMatch is a single search hit. The metadata field is itself a
// one-variant union wrapping the entry.
type SearchMatch struct {
	Metadata SearchMatchMetadata `json:"metadata"`
}

// SearchMatchMetadata unwraps the metadata union of a search match.
type SearchMatchMetadata struct {
	Tag      string   `json:".tag"`
	Metadata Metadata `json:"metadata"`
}

// GetTemporaryLinkArg are the parameters for get_temporary_link.
type GetTemporaryLinkArg struct {
	Path string `json:"path"`
}

// GetTemporaryLinkResult is a direct-download link valid for four hours.
type GetTemporaryLinkResult struct {
	Metadata Metadata `json:"metadata"`
	Link     string   `json:"link"`
}

// AddTagArg are the parameters for tags/add.
type AddTagArg struct {
	Path    string `json:"path"`
	TagText string `json:"tag_text"`
}

// RemoveTagArg are the parameters for tags/remove.
type RemoveTagArg struct {
	Path    string `json:"path"`
	TagText string `json:"tag_text"`
}

// GetTagsArg are the parameters for tags/get.
type GetTagsArg struct {
	Paths []string `json:"paths"`
}

// GetTagsResult maps each requested path to its tags.
type GetTagsResult struct {
	PathsToTags []PathToTags `json:"paths_to_tags"`
}

// PathToTags is the tag list of one path.
type PathToTags struct {
	Path string `json:"path"`
	Tags []Tag  `json:"tags"`
}

// Tag is a single file tag. The only documented variant is
// user_generated_tag.
type Tag struct {
	Tag     string `json:".tag"`
	TagText string `json:"tag_text"`
}
