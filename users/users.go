// Package users is the accessor for public member profiles.
package users

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/otonaba/otonaba-cli/transport"
)

// Profile is a member's public profile. Email is only present when the backend
// chooses to expose it.
type Profile struct {
	ID         string    `json:"id"`
	Email      string    `json:"email,omitempty"`
	Nickname   string    `json:"nickname"`
	AgeGroup   string    `json:"age_group"`
	Gender     string    `json:"gender"`
	Region     string    `json:"region"`
	TrustScore int       `json:"trust_score"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostSummary is the condensed post row shown on a member's profile page.
type PostSummary struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
	CommentCount int       `json:"comment_count"`
	LikeCount    int       `json:"like_count"`
}

// GetByNickname looks a member up by their nickname.
func GetByNickname(ctx context.Context, c *transport.Client, nickname string) (*Profile, error) {
	var profile Profile
	if err := c.Get(ctx, "/users/nickname/"+url.PathEscape(nickname), nil, &profile); err != nil {
		return nil, errors.Wrapf(err, "[users.GetByNickname] %q", nickname)
	}
	return &profile, nil
}

// Posts fetches the posts written by a member.
func Posts(ctx context.Context, c *transport.Client, userID string) ([]PostSummary, error) {
	var list []PostSummary
	if err := c.Get(ctx, fmt.Sprintf("/users/%s/posts", url.PathEscape(userID)), nil, &list); err != nil {
		return nil, errors.Wrapf(err, "[users.Posts] user %s", userID)
	}
	return list, nil
}
