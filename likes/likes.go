// Package likes is the accessor for per-post like state.
package likes

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/otonaba/otonaba-cli/transport"
)

// Status reports whether the authenticated user has liked a post.
type Status struct {
	IsLiked bool `json:"isLiked"`
}

// ToggleResult is the post's like state after a toggle.
type ToggleResult struct {
	IsLiked   bool   `json:"isLiked"`
	LikeCount int    `json:"likeCount"`
	Message   string `json:"message"`
}

// Check fetches the authenticated user's like state for a post.
func Check(ctx context.Context, c *transport.Client, postID int64) (*Status, error) {
	var status Status
	if err := c.Get(ctx, fmt.Sprintf("/likes/posts/%d/check", postID), nil, &status); err != nil {
		return nil, errors.Wrapf(err, "[likes.Check] post %d", postID)
	}
	return &status, nil
}

// Toggle flips the like on a post and returns the resulting state. Two toggles
// in a row land back on the original state.
func Toggle(ctx context.Context, c *transport.Client, postID int64) (*ToggleResult, error) {
	var result ToggleResult
	if err := c.Post(ctx, fmt.Sprintf("/likes/posts/%d", postID), struct{}{}, &result); err != nil {
		return nil, errors.Wrapf(err, "[likes.Toggle] post %d", postID)
	}
	return &result, nil
}
