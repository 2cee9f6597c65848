package reddit

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/abdulachik/postline/internal/platform"
)

// Submit creates a new post in the given subreddit and returns the
// post ID assigned by Reddit.
func (c *Client) Submit(ctx context.Context, subreddit, title, content string, kind platform.Kind) (string, error) {
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("sr", subreddit)
	form.Set("title", title)

	switch kind {
	case platform.KindText:
		form.Set("kind", "self")
		form.Set("text", content)
	case platform.KindLink:
		form.Set("kind", "link")
		form.Set("url", content)
	case platform.KindImage:
		// content is a local file path; upload it first and submit
		// the resulting asset URL as a link-style image post.
		assetURL, err := c.uploadMedia(ctx, content)
		if err != nil {
			return "", fmt.Errorf("upload image: %w", err)
		}
		form.Set("kind", "image")
		form.Set("url", assetURL)
	default:
		return "", fmt.Errorf("unsupported post kind %q", kind)
	}

	var resp apiResponse
	if err := c.postForm(ctx, "/api/submit", form, &resp); err != nil {
		return "", err
	}
	if err := resp.err(); err != nil {
		return "", err
	}

	if resp.JSON.Data.ID == "" {
		return "", fmt.Errorf("reddit returned no post ID")
	}
	return resp.JSON.Data.ID, nil
}

// Fetch retrieves a post by ID. Returns platform.ErrNotFound if the
// post does not exist or has been deleted.
func (c *Client) Fetch(ctx context.Context, postID string) (*platform.Post, error) {
	query := url.Values{}
	query.Set("id", postThingPrefix+postID)
	query.Set("raw_json", "1")

	var list listing
	if err := c.get(ctx, "/api/info", query, &list); err != nil {
		return nil, err
	}

	if len(list.Data.Children) == 0 {
		return nil, platform.ErrNotFound
	}

	data := list.Data.Children[0].Data
	if data.deleted() {
		return nil, platform.ErrNotFound
	}

	post := toPost(data)
	return &post, nil
}

// Edit replaces the selftext body of an existing post.
func (c *Client) Edit(ctx context.Context, postID, body string) error {
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("thing_id", postThingPrefix+postID)
	form.Set("text", body)

	var resp apiResponse
	if err := c.postForm(ctx, "/api/editusertext", form, &resp); err != nil {
		return err
	}
	return resp.err()
}

// Remove deletes a post.
func (c *Client) Remove(ctx context.Context, postID string) error {
	form := url.Values{}
	form.Set("id", postThingPrefix+postID)

	return c.postForm(ctx, "/api/del", form, nil)
}

// Recent lists up to limit of the account's own submissions, newest
// first as reported by Reddit.
func (c *Client) Recent(ctx context.Context, limit int) ([]platform.PostRef, error) {
	query := url.Values{}
	query.Set("sort", "new")
	query.Set("limit", strconv.Itoa(limit))

	var list listing
	path := "/user/" + url.PathEscape(c.username) + "/submitted"
	if err := c.get(ctx, path, query, &list); err != nil {
		return nil, err
	}

	refs := make([]platform.PostRef, 0, len(list.Data.Children))
	for _, child := range list.Data.Children {
		refs = append(refs, platform.PostRef{
			ID:    child.Data.ID,
			Title: child.Data.Title,
		})
		if len(refs) == limit {
			break
		}
	}
	return refs, nil
}

func toPost(d postData) platform.Post {
	return platform.Post{
		ID:           d.ID,
		Title:        d.Title,
		Body:         d.Selftext,
		Score:        d.Score,
		URL:          d.URL,
		Author:       d.Author,
		Subreddit:    d.Subreddit,
		CommentCount: d.NumComments,
		CreatedAt:    time.Unix(int64(d.CreatedUTC), 0).UTC(),
	}
}
