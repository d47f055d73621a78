// Package comments is the accessor for per-post comments.
package comments

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/otonaba/otonaba-cli/transport"
)

// Comment is a comment on a post with its author's public profile fields.
type Comment struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"post_id"`
	UserID         string    `json:"user_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	AuthorNickname string    `json:"author_nickname"`
	AuthorAgeGroup string    `json:"author_age_group"`
	AuthorGender   string    `json:"author_gender"`
	AuthorRegion   string    `json:"author_region"`
}

// ListByPost fetches all comments on a post, oldest first.
func ListByPost(ctx context.Context, c *transport.Client, postID int64) ([]Comment, error) {
	var list []Comment
	if err := c.Get(ctx, fmt.Sprintf("/comments/posts/%d", postID), nil, &list); err != nil {
		return nil, errors.Wrapf(err, "[comments.ListByPost] post %d", postID)
	}
	return list, nil
}

// Create adds a comment to a post.
func Create(ctx context.Context, c *transport.Client, postID int64, content string) (*Comment, error) {
	body := map[string]string{"content": content}
	var comment Comment
	if err := c.Post(ctx, fmt.Sprintf("/comments/posts/%d", postID), body, &comment); err != nil {
		return nil, errors.Wrapf(err, "[comments.Create] post %d", postID)
	}
	return &comment, nil
}

// Update rewrites a comment's content.
func Update(ctx context.Context, c *transport.Client, commentID int64, content string) (*Comment, error) {
	body := map[string]string{"content": content}
	var comment Comment
	if err := c.Put(ctx, fmt.Sprintf("/comments/%d", commentID), body, &comment); err != nil {
		return nil, errors.Wrapf(err, "[comments.Update] id %d", commentID)
	}
	return &comment, nil
}

// Delete removes a comment.
func Delete(ctx context.Context, c *transport.Client, commentID int64) error {
	if err := c.Delete(ctx, fmt.Sprintf("/comments/%d", commentID)); err != nil {
		return errors.Wrapf(err, "[comments.Delete] id %d", commentID)
	}
	return nil
}
