package reddit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// mediaLease is Reddit's response to a media asset request: a
// pre-signed upload target plus the form fields the upload host
// requires.
type mediaLease struct {
	Args struct {
		Action string `json:"action"`
		Fields []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"fields"`
	} `json:"args"`
	Asset struct {
		AssetID string `json:"asset_id"`
	} `json:"asset"`
}

// uploadMedia uploads a local image file through Reddit's media asset
// lease flow and returns the URL of the uploaded asset, suitable for
// an image submission.
func (c *Client) uploadMedia(ctx context.Context, path string) (string, error) {
	mimetype := mime.TypeByExtension(filepath.Ext(path))
	if !strings.HasPrefix(mimetype, "image/") {
		return "", fmt.Errorf("file %q is not an image", path)
	}

	form := url.Values{}
	form.Set("filepath", filepath.Base(path))
	form.Set("mimetype", mimetype)

	var lease mediaLease
	if err := c.postForm(ctx, "/api/media/asset.json", form, &lease); err != nil {
		return "", fmt.Errorf("request upload lease: %w", err)
	}

	action := lease.Args.Action
	if action == "" {
		return "", fmt.Errorf("upload lease contained no action URL")
	}
	// The action comes back protocol-relative.
	if strings.HasPrefix(action, "//") {
		action = "https:" + action
	}

	key, err := c.uploadToLease(ctx, action, lease, path, mimetype)
	if err != nil {
		return "", err
	}

	return action + "/" + key, nil
}

// uploadToLease posts the file to the lease target as multipart form
// data and returns the storage key of the uploaded object.
func (c *Client) uploadToLease(ctx context.Context, action string, lease mediaLease, path, mimetype string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	key := ""
	for _, field := range lease.Args.Fields {
		if field.Name == "key" {
			key = field.Value
		}
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return "", err
		}
	}
	if key == "" {
		return "", fmt.Errorf("upload lease contained no key field")
	}

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, action, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated &&
		resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("image upload failed (status %d): %s", resp.StatusCode, string(body))
	}

	return key, nil
}
