// Package messages is the accessor for direct messages between members.
package messages

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/otonaba/otonaba-cli/transport"
)

// Message is one direct message. Sender and receiver profile fields are only
// populated on listings where the backend joins them in.
type Message struct {
	ID               int64     `json:"id"`
	SenderID         string    `json:"sender_id"`
	ReceiverID       string    `json:"receiver_id"`
	Subject          string    `json:"subject"`
	Content          string    `json:"content"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
	SenderNickname   string    `json:"sender_nickname,omitempty"`
	SenderAgeGroup   string    `json:"sender_age_group,omitempty"`
	ReceiverNickname string    `json:"receiver_nickname,omitempty"`
	ReceiverAgeGroup string    `json:"receiver_age_group,omitempty"`
	ReplyCount       int       `json:"reply_count,omitempty"`
}

// Reply is a threaded reply to a message.
type Reply struct {
	ID        int64     `json:"id"`
	MessageID int64     `json:"message_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Nickname  string    `json:"nickname"`
	AgeGroup  string    `json:"age_group"`
}

// Detail is a message with its full reply thread.
type Detail struct {
	Message
	Replies []Reply `json:"replies"`
}

// Inbox fetches the messages received by the authenticated user.
func Inbox(ctx context.Context, c *transport.Client) ([]Message, error) {
	var list []Message
	if err := c.Get(ctx, "/messages/inbox", nil, &list); err != nil {
		return nil, errors.Wrap(err, "[messages.Inbox]")
	}
	return list, nil
}

// Sent fetches the messages sent by the authenticated user.
func Sent(ctx context.Context, c *transport.Client) ([]Message, error) {
	var list []Message
	if err := c.Get(ctx, "/messages/sent", nil, &list); err != nil {
		return nil, errors.Wrap(err, "[messages.Sent]")
	}
	return list, nil
}

// Get fetches a message and its reply thread. Reading a message marks it read
// on the backend.
func Get(ctx context.Context, c *transport.Client, id int64) (*Detail, error) {
	var detail Detail
	if err := c.Get(ctx, fmt.Sprintf("/messages/%d", id), nil, &detail); err != nil {
		return nil, errors.Wrapf(err, "[messages.Get] id %d", id)
	}
	return &detail, nil
}

// Send delivers a new message to the given receiver.
func Send(ctx context.Context, c *transport.Client, receiverID, subject, content string) (*Message, error) {
	body := map[string]string{
		"receiver_id": receiverID,
		"subject":     subject,
		"content":     content,
	}
	var msg Message
	if err := c.Post(ctx, "/messages", body, &msg); err != nil {
		return nil, errors.Wrap(err, "[messages.Send]")
	}
	return &msg, nil
}

// ReplyTo appends a reply to a message thread.
func ReplyTo(ctx context.Context, c *transport.Client, messageID int64, content string) (*Reply, error) {
	body := map[string]string{"content": content}
	var reply Reply
	if err := c.Post(ctx, fmt.Sprintf("/messages/%d/reply", messageID), body, &reply); err != nil {
		return nil, errors.Wrapf(err, "[messages.ReplyTo] id %d", messageID)
	}
	return &reply, nil
}

// Delete removes a message.
func Delete(ctx context.Context, c *transport.Client, id int64) error {
	if err := c.Delete(ctx, fmt.Sprintf("/messages/%d", id)); err != nil {
		return errors.Wrapf(err, "[messages.Delete] id %d", id)
	}
	return nil
}

// UnreadCount returns how many received messages are unread.
func UnreadCount(ctx context.Context, c *transport.Client) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.Get(ctx, "/messages/unread/count", nil, &resp); err != nil {
		return 0, errors.Wrap(err, "[messages.UnreadCount]")
	}
	return resp.Count, nil
}
