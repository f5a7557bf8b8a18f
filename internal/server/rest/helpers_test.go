package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophblog/internal/logging"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophblog/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// countingPosts wraps a posts.Repository and counts every call that
// reaches storage.
type countingPosts struct {
	posts.Repository
	mu    sync.Mutex
	calls map[string]int
}

func newCountingPosts(inner posts.Repository) *countingPosts {
	return &countingPosts{Repository: inner, calls: map[string]int{}}
}

func (c *countingPosts) hit(name string) {
	c.mu.Lock()
	c.calls[name]++
	c.mu.Unlock()
}

func (c *countingPosts) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.calls {
		n += v
	}
	return n
}

func (c *countingPosts) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	c.hit("Create")
	return c.Repository.Create(ctx, p)
}

func (c *countingPosts) List(ctx context.Context) ([]models.Post, error) {
	c.hit("List")
	return c.Repository.List(ctx)
}

func (c *countingPosts) Find(ctx context.Context, id string) (*models.Post, error) {
	c.hit("Find")
	return c.Repository.Find(ctx, id)
}

func (c *countingPosts) UpdateOwned(ctx context.Context, id, authorID string, patch models.PostPatch) (*models.Post, error) {
	c.hit("UpdateOwned")
	return c.Repository.UpdateOwned(ctx, id, authorID, patch)
}

func (c *countingPosts) DeleteOwned(ctx context.Context, id, authorID string) (bool, error) {
	c.hit("DeleteOwned")
	return c.Repository.DeleteOwned(ctx, id, authorID)
}

type testAPI struct {
	engine *gin.Engine
	posts  *countingPosts
	tokens *auth.TokenService
}

var testSecret = []byte("test-secret")

func newTestAPI(t *testing.T, prefix string) *testAPI {
	t.Helper()

	logger := logging.NewNopLogger()
	tokens := auth.NewTokenService(testSecret, 0)

	us, err := services.NewUserService(memory.NewUserRepository(), auth.NewPasswordHasher(bcrypt.MinCost), tokens, logger)
	require.NoError(t, err)

	cp := newCountingPosts(memory.NewPostRepository())
	ps := services.NewPostService(cp, logger)

	r := NewRouter(RouterConfig{APIPrefix: prefix, AllowOrigins: "*"}, NewHandler(us, ps), tokens, logger)
	return &testAPI{engine: r, posts: cp, tokens: tokens}
}

// do sends a request; body may be nil, a string (sent verbatim) or any
// value (JSON encoded).
func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func (a *testAPI) register(t *testing.T, username, email, password string) authResponse {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"username": username, "email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[authResponse](t, w)
}
