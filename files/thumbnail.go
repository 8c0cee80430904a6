package files

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/s0up4200/dropboxkit/dropbox"
)

// ThumbnailFormat is the image format of a rendered thumbnail.
type ThumbnailFormat string

const (
	ThumbnailFormatJPEG ThumbnailFormat = "jpeg"
	ThumbnailFormatPNG  ThumbnailFormat = "png"
)

// ThumbnailSize is the pixel size of a rendered thumbnail. The wire values
// are fixed literals; there is no free-form sizing.
type ThumbnailSize string

const (
	ThumbnailSizeW32H32     ThumbnailSize = "w32h32"
	ThumbnailSizeW64H64     ThumbnailSize = "w64h64"
	ThumbnailSizeW128H128   ThumbnailSize = "w128h128"
	ThumbnailSizeW256H256   ThumbnailSize = "w256h256"
	ThumbnailSizeW480H320   ThumbnailSize = "w480h320"
	ThumbnailSizeW640H480   ThumbnailSize = "w640h480"
	ThumbnailSizeW960H640   ThumbnailSize = "w960h640"
	ThumbnailSizeW1024H768  ThumbnailSize = "w1024h768"
	ThumbnailSizeW2048H1536 ThumbnailSize = "w2048h1536"
)

// ThumbnailMode controls how the image is fitted into the requested size.
type ThumbnailMode string

const (
	ThumbnailModeStrict        ThumbnailMode = "strict"
	ThumbnailModeBestfit       ThumbnailMode = "bestfit"
	ThumbnailModeFitoneBestfit ThumbnailMode = "fitone_bestfit"
)

// MarshalJSON writes the tag-only union shape.
func (f ThumbnailFormat) MarshalJSON() ([]byte, error) { return tagOnly(string(f)) }

// MarshalJSON writes the tag-only union shape.
func (s ThumbnailSize) MarshalJSON() ([]byte, error) { return tagOnly(string(s)) }

// MarshalJSON writes the tag-only union shape.
func (m ThumbnailMode) MarshalJSON() ([]byte, error) { return tagOnly(string(m)) }

func tagOnly(tag string) ([]byte, error) {
	return json.Marshal(struct {
		Tag string `json:".tag"`
	}{tag})
}

// PathOrLink identifies the image to thumbnail. Only the path variant is
// supported here.
type PathOrLink struct {
	Tag  string `json:".tag"`
	Path string `json:"path,omitempty"`
}

// PathResource builds the path variant of PathOrLink.
func PathResource(path string) PathOrLink {
	return PathOrLink{Tag: "path", Path: path}
}

// ThumbnailArg are the parameters for get_thumbnail_v2. Zero-valued format,
// size, and mode are omitted and take the server defaults (jpeg, w64h64,
// strict).
type ThumbnailArg struct {
	Resource PathOrLink      `json:"resource"`
	Format   ThumbnailFormat `json:"format,omitempty"`
	Size     ThumbnailSize   `json:"size,omitempty"`
	Mode     ThumbnailMode   `json:"mode,omitempty"`
}

// ThumbnailResult is the metadata half of a thumbnail response.
type ThumbnailResult struct {
	FileMetadata Metadata `json:"file_metadata"`
}

// GetThumbnail renders a thumbnail for an image file. The metadata comes
// from the Dropbox-API-Result header; the returned ReadCloser is the
// thumbnail bytes and is owned by the caller.
func (c *Client) GetThumbnail(ctx context.Context, arg ThumbnailArg) (*ThumbnailResult, io.ReadCloser, error) {
	if arg.Resource.Path == "" {
		return nil, nil, ErrMissingPath
	}
	if arg.Resource.Tag == "" {
		arg.Resource.Tag = "path"
	}

	c.logger.Debug().
		Str("path", arg.Resource.Path).
		Str("size", string(arg.Size)).
		Msg("Fetching thumbnail")

	var res ThumbnailResult
	body, err := c.dbx.Download(ctx, dropbox.HostContent, "files/get_thumbnail_v2", arg, &res)
	if err != nil {
		return nil, nil, fmt.Errorf("get thumbnail failed: %w", err)
	}
	return &res, body, nil
}
