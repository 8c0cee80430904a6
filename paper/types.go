package paper

import "encoding/json"

// ImportFormat is the format of the document bytes sent to create and
// update.
type ImportFormat string

const (
	ImportFormatHTML      ImportFormat = "html"
	ImportFormatMarkdown  ImportFormat = "markdown"
	ImportFormatPlainText ImportFormat = "plain_text"
)

// ExportFormat is the format the download route renders the doc into.
type ExportFormat string

const (
	ExportFormatHTML     ExportFormat = "html"
	ExportFormatMarkdown ExportFormat = "markdown"
)

// DocUpdatePolicy controls how update applies the new content to the
// existing doc.
type DocUpdatePolicy string

const (
	DocUpdatePolicyAppend       DocUpdatePolicy = "append"
	DocUpdatePolicyPrepend      DocUpdatePolicy = "prepend"
	DocUpdatePolicyOverwriteAll DocUpdatePolicy = "overwrite_all"
)

// MarshalJSON writes the tag-only union shape.
func (f ImportFormat) MarshalJSON() ([]byte, error) { return tagOnly(string(f)) }

// MarshalJSON writes the tag-only union shape.
func (f ExportFormat) MarshalJSON() ([]byte, error) { return tagOnly(string(f)) }

// MarshalJSON writes the tag-only union shape.
func (p DocUpdatePolicy) MarshalJSON() ([]byte, error) { return tagOnly(string(p)) }

func tagOnly(tag string) ([]byte, error) {
	return json.Marshal(struct {
		Tag string `json:".tag"`
	}{tag})
}

// CreateArg are the parameters for docs/create. The document bytes travel
// in the request body.
type CreateArg struct {
	ImportFormat   ImportFormat `json:"import_format"`
	ParentFolderID string       `json:"parent_folder_id,omitempty"`
}

// UpdateArg are the parameters for docs/update. Revision must match the
// doc's current revision or the server rejects the call.
type UpdateArg struct {
	DocID           string          `json:"doc_id"`
	DocUpdatePolicy DocUpdatePolicy `json:"doc_update_policy"`
	Revision        int64           `json:"revision"`
	ImportFormat    ImportFormat    `json:"import_format"`
}

// DocResult is the response of create and update.
type DocResult struct {
	DocID    string `json:"doc_id"`
	Revision int64  `json:"revision"`
	Title    string `json:"title"`
}

// DownloadArg are the parameters for docs/download.
type DownloadArg struct {
	DocID        string       `json:"doc_id"`
	ExportFormat ExportFormat `json:"export_format"`
}

// DownloadResult is the metadata half of a docs/download response.
type DownloadResult struct {
	Owner    string `json:"owner"`
	Title    string `json:"title"`
	Revision int64  `json:"revision"`
	MimeType string `json:"mime_type"`
}

// ListArg are the parameters for docs/list.
type ListArg struct {
	Limit int32 `json:"limit,omitempty"`
}

// ListContinueArg are the parameters for docs/list/continue.
type ListContinueArg struct {
	Cursor string `json:"cursor"`
}

// Cursor pages through a doc listing. Value is opaque and must be passed
// back unmodified.
type Cursor struct {
	Value      string `json:"value"`
	Expiration string `json:"expiration,omitempty"`
}

// ListResult is one page of doc ids.
type ListResult struct {
	DocIDs  []string `json:"doc_ids"`
	Cursor  Cursor   `json:"cursor"`
	HasMore bool     `json:"has_more"`
}

// RefArg names a doc by id.
type RefArg struct {
	DocID string `json:"doc_id"`
}
