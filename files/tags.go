package files

import (
	"context"
	"fmt"
)

// TagsAdd adds a tag to a file. A file may carry at most 20 tags.
func (c *Client) TagsAdd(ctx context.Context, arg AddTagArg) error {
	if arg.Path == "" {
		return ErrMissingPath
	}
	if arg.TagText == "" {
		return ErrMissingTagText
	}

	c.logger.Debug().Str("path", arg.Path).Str("tag", arg.TagText).Msg("Adding tag")

	if err := c.dbx.RPC(ctx, "files/tags/add", arg, nil); err != nil {
		return fmt.Errorf("tags add failed: %w", err)
	}
	return nil
}

// TagsRemove removes a tag from a file.
func (c *Client) TagsRemove(ctx context.Context, arg RemoveTagArg) error {
	if arg.Path == "" {
		return ErrMissingPath
	}
	if arg.TagText == "" {
		return ErrMissingTagText
	}

	c.logger.Debug().Str("path", arg.Path).Str("tag", arg.TagText).Msg("Removing tag")

	if err := c.dbx.RPC(ctx, "files/tags/remove", arg, nil); err != nil {
		return fmt.Errorf("tags remove failed: %w", err)
	}
	return nil
}

// TagsGet returns the tags on each of the given paths.
func (c *Client) TagsGet(ctx context.Context, arg GetTagsArg) (*GetTagsResult, error) {
	if len(arg.Paths) == 0 {
		return nil, ErrMissingPath
	}

	var res GetTagsResult
	if err := c.dbx.RPC(ctx, "files/tags/get", arg, &res); err != nil {
		return nil, fmt.Errorf("tags get failed: %w", err)
	}
	return &res, nil
}
