// Package reddit implements the platform interface over Reddit's
// OAuth API using the password grant for script-type apps.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAuthURL = "https://www.reddit.com/api/v1/access_token"
	defaultBaseURL = "https://oauth.reddit.com"

	// Reddit fullname prefix for link (post) things.
	postThingPrefix = "t3_"
)

// Client talks to the Reddit API on behalf of one account.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	username     string
	password     string
	userAgent    string
	authURL      string
	baseURL      string
	accessToken  string
	tokenExpiry  time.Time
}

// Config holds configuration for the Reddit client.
type Config struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string

	// AuthURL and BaseURL override the real Reddit endpoints,
	// used by tests.
	AuthURL string
	BaseURL string

	Timeout time.Duration
}

// New creates a new Reddit client. No network call is made until the
// first operation needs a token.
func New(cfg Config) *Client {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = defaultAuthURL
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		username:     cfg.Username,
		password:     cfg.Password,
		userAgent:    cfg.UserAgent,
		authURL:      authURL,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
	}
}

// Name returns the platform name.
func (c *Client) Name() string {
	return "reddit"
}

func (c *Client) ensureAccessToken(ctx context.Context) error {
	// Check if we have a valid token
	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return nil
	}

	data := url.Values{}
	data.Set("grant_type", "password")
	data.Set("username", c.username)
	data.Set("password", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL,
		strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}

	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("reddit auth failed (status %d): %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		Error       string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return err
	}

	if tokenResp.Error != "" {
		return fmt.Errorf("reddit auth failed: %s", tokenResp.Error)
	}
	if tokenResp.AccessToken == "" {
		return fmt.Errorf("reddit auth response contained no access token")
	}

	c.accessToken = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn-60) * time.Second)

	return nil
}

// get performs an authenticated GET and decodes the JSON response
// into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.ensureAccessToken(ctx); err != nil {
		return fmt.Errorf("get access token: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("reddit API error (status %d): %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// postForm performs an authenticated form POST and decodes the JSON
// response into out (which may be nil for endpoints with empty
// responses).
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	if err := c.ensureAccessToken(ctx); err != nil {
		return fmt.Errorf("get access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("reddit API error (status %d): %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("User-Agent", c.userAgent)
}

// apiResponse is the envelope Reddit returns for api_type=json calls.
// Errors come as triples of [code, message, field].
type apiResponse struct {
	JSON struct {
		Errors [][]any `json:"errors"`
		Data   struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"data"`
	} `json:"json"`
}

func (r *apiResponse) err() error {
	if len(r.JSON.Errors) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(r.JSON.Errors))
	for _, e := range r.JSON.Errors {
		parts := make([]string, 0, len(e))
		for _, field := range e {
			if s, ok := field.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		msgs = append(msgs, strings.Join(parts, ": "))
	}
	return fmt.Errorf("reddit API error: %s", strings.Join(msgs, "; "))
}

// listing is the shape of Reddit listing responses.
type listing struct {
	Data struct {
		Children []struct {
			Data postData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type postData struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Selftext          string  `json:"selftext"`
	URL               string  `json:"url"`
	Score             int     `json:"score"`
	Author            string  `json:"author"`
	Subreddit         string  `json:"subreddit"`
	NumComments       int     `json:"num_comments"`
	CreatedUTC        float64 `json:"created_utc"`
	RemovedByCategory string  `json:"removed_by_category"`
}

// deleted reports whether the row is a tombstone: Reddit keeps
// serving deleted submissions from /api/info with the removal marker
// set and the author replaced by "[deleted]".
func (d *postData) deleted() bool {
	return d.RemovedByCategory == "deleted" || d.Author == "[deleted]"
}
