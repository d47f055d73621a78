// Package notifications is the accessor for the notification feed.
package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/otonaba/otonaba-cli/transport"
)

// Notification is one entry in the user's notification feed. PostID is nil for
// notifications not tied to a post (e.g. direct messages).
type Notification struct {
	ID               int64     `json:"id"`
	UserID           string    `json:"user_id"`
	Type             string    `json:"type"`
	Content          string    `json:"content"`
	PostID           *int64    `json:"post_id"`
	FromUserID       string    `json:"from_user_id"`
	FromUserNickname string    `json:"from_user_nickname"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}

// List fetches the authenticated user's notifications, newest first.
func List(ctx context.Context, c *transport.Client) ([]Notification, error) {
	var list []Notification
	if err := c.Get(ctx, "/notifications", nil, &list); err != nil {
		return nil, errors.Wrap(err, "[notifications.List]")
	}
	return list, nil
}

// UnreadCount returns how many notifications are unread.
func UnreadCount(ctx context.Context, c *transport.Client) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.Get(ctx, "/notifications/unread/count", nil, &resp); err != nil {
		return 0, errors.Wrap(err, "[notifications.UnreadCount]")
	}
	return resp.Count, nil
}

// MarkRead marks one notification as read.
func MarkRead(ctx context.Context, c *transport.Client, id int64) error {
	if err := c.Put(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil); err != nil {
		return errors.Wrapf(err, "[notifications.MarkRead] id %d", id)
	}
	return nil
}

// MarkAllRead marks every notification as read.
func MarkAllRead(ctx context.Context, c *transport.Client) error {
	if err := c.Put(ctx, "/notifications/read-all", nil, nil); err != nil {
		return errors.Wrap(err, "[notifications.MarkAllRead]")
	}
	return nil
}

// Delete removes a notification from the feed.
func Delete(ctx context.Context, c *transport.Client, id int64) error {
	if err := c.Delete(ctx, fmt.Sprintf("/notifications/%d", id)); err != nil {
		return errors.Wrapf(err, "[notifications.Delete] id %d", id)
	}
	return nil
}
