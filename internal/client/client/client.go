package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/common"
)

type HTTPClient struct {
	baseURL     string
	http        *http.Client
	accessToken string
}

// NewHTTPClient returns a client for the API mounted at baseURL, prefix
// included (for example "http://127.0.0.1:5000/api").
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetAccessToken sets the token replayed on protected calls. An empty token
// sends no Authorization header.
func (c *HTTPClient) SetAccessToken(token string) {
	c.accessToken = token
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) Register(ctx context.Context, username, email string, password []byte) (*models.Session, error) {
	var s models.Session
	req := registerRequest{Username: username, Email: email, Password: string(password)}
	if err := c.do(ctx, http.MethodPost, "/register", req, false, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	var s models.Session
	req := loginRequest{Email: email, Password: string(password)}
	if err := c.do(ctx, http.MethodPost, "/login", req, false, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	if err := c.do(ctx, http.MethodGet, "/posts", nil, false, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	if err := c.do(ctx, http.MethodGet, postPath(id), nil, false, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, title, content string) (*models.Post, error) {
	var p models.Post
	req := createPostRequest{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPost, "/posts", req, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePost returns nil without an error when the server answered null,
// which happens when the post is missing or owned by someone else.
func (c *HTTPClient) UpdatePost(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	var p *models.Post
	if err := c.do(ctx, http.MethodPut, postPath(id), patch, true, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePost always succeeds on the server side for an authenticated
// caller; it does not reveal whether anything was removed.
func (c *HTTPClient) DeletePost(ctx context.Context, id string) error {
	var m messageResponse
	return c.do(ctx, http.MethodDelete, postPath(id), nil, true, &m)
}

// Health checks the liveness endpoint, which lives outside the API prefix.
func (c *HTTPClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rootURL(c.baseURL)+"/health", nil)
	if err != nil {
		return err
	}
	return c.send(req, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && c.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.accessToken)
	}

	return c.send(req, out)
}

func (c *HTTPClient) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var m messageResponse
		if json.Unmarshal(data, &m) == nil {
			apiErr.Message = m.Message
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// rootURL strips the path from base, leaving scheme and host.
func rootURL(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return base
	}
	u.Path, u.RawPath, u.RawQuery = "", "", ""
	return u.String()
}

func postPath(id string) string {
	return "/posts/" + url.PathEscape(id)
}
