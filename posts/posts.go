// Package posts is the accessor for the board's post resource.
package posts

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/otonaba/otonaba-cli/transport"
)

// Image is a hosted image attached to a post.
type Image struct {
	ID           int64  `json:"id"`
	ImageURL     string `json:"image_url"`
	CloudinaryID string `json:"cloudinary_id"`
}

// Post is a board post with its author's public profile fields folded in.
type Post struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Category       string    `json:"category"`
	Views          int       `json:"views"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	AuthorNickname string    `json:"author_nickname"`
	AuthorAgeGroup string    `json:"author_age_group"`
	AuthorGender   string    `json:"author_gender"`
	AuthorRegion   string    `json:"author_region"`
	CommentCount   int       `json:"comment_count"`
	LikeCount      int       `json:"like_count"`
	Images         []Image   `json:"images,omitempty"`
}

// Pagination describes one page of a post listing. TotalPages is camelCase on
// the wire; the backend has always sent it that way.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ListResponse is a page of posts plus its pagination envelope.
type ListResponse struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// ListParams filters and pages a post listing. Zero values are omitted from
// the query, except Page and Limit which default to 1 and the caller's page
// size respectively.
type ListParams struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

// NewImage references an uploaded image when creating a post.
type NewImage struct {
	URL          string `json:"url"`
	CloudinaryID string `json:"cloudinary_id"`
}

// List fetches one page of posts, optionally filtered by category and search term.
func List(ctx context.Context, c *transport.Client, params ListParams) (*ListResponse, error) {
	query := url.Values{}
	page := params.Page
	if page < 1 {
		page = 1
	}
	query.Set("page", strconv.Itoa(page))
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	var resp ListResponse
	if err := c.Get(ctx, "/posts", query, &resp); err != nil {
		return nil, errors.Wrap(err, "[posts.List]")
	}
	return &resp, nil
}

// Get fetches a single post by id.
func Get(ctx context.Context, c *transport.Client, id int64) (*Post, error) {
	var post Post
	if err := c.Get(ctx, fmt.Sprintf("/posts/%d", id), nil, &post); err != nil {
		return nil, errors.Wrapf(err, "[posts.Get] id %d", id)
	}
	return &post, nil
}

// Create publishes a new post, optionally with previously uploaded images.
func Create(ctx context.Context, c *transport.Client, title, content, category string, images []NewImage) (*Post, error) {
	body := map[string]any{
		"title":    title,
		"content":  content,
		"category": category,
		"images":   images,
	}
	var post Post
	if err := c.Post(ctx, "/posts", body, &post); err != nil {
		return nil, errors.Wrap(err, "[posts.Create]")
	}
	return &post, nil
}

// Update rewrites a post's title, content and category.
func Update(ctx context.Context, c *transport.Client, id int64, title, content, category string) (*Post, error) {
	body := map[string]string{
		"title":    title,
		"content":  content,
		"category": category,
	}
	var post Post
	if err := c.Put(ctx, fmt.Sprintf("/posts/%d", id), body, &post); err != nil {
		return nil, errors.Wrapf(err, "[posts.Update] id %d", id)
	}
	return &post, nil
}

// Delete removes a post.
func Delete(ctx context.Context, c *transport.Client, id int64) error {
	if err := c.Delete(ctx, fmt.Sprintf("/posts/%d", id)); err != nil {
		return errors.Wrapf(err, "[posts.Delete] id %d", id)
	}
	return nil
}
