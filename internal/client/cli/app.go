package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/config"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/client/session"
	"github.com/dmitrijs2005/gophblog/internal/logging"
)

// BlogAPI is the part of client.HTTPClient the commands use.
type BlogAPI interface {
	SetAccessToken(token string)
	Register(ctx context.Context, username, email string, password []byte) (*models.Session, error)
	Login(ctx context.Context, email string, password []byte) (*models.Session, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, title, content string) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type SessionStore interface {
	Load() (*models.Session, error)
	Save(s *models.Session) error
	Clear() error
}

type App struct {
	config  *config.Config
	api     BlogAPI
	store   SessionStore
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	session *models.Session
}

func NewApp(c *config.Config) *App {
	logger := logging.NewJSONLogger(os.Stderr, slog.LevelWarn).With("module", "blogctl")
	return newApp(c, client.NewHTTPClient(c.ServerURL, c.RequestTimeout), session.NewStore(c.SessionFile),
		logger, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, api BlogAPI, store SessionStore, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		api:    api,
		store:  store,
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run executes a single command when args are given, otherwise it starts
// the interactive prompt.
func (a *App) Run(ctx context.Context, args []string) error {
	a.restoreSession(ctx)

	if len(args) == 0 {
		runREPL(ctx, a, a.getStatus, a.reader, a.out)
		return nil
	}
	return execute(ctx, a, args, a.out)
}

func (a *App) restoreSession(ctx context.Context) {
	s, err := a.store.Load()
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			a.logger.Warn(ctx, "session file unreadable, ignoring it", "error", err)
		}
		return
	}
	a.setSession(s)
}

func (a *App) setSession(s *models.Session) {
	a.session = s
	token := ""
	if s != nil {
		token = s.Token
	}
	a.api.SetAccessToken(token)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return "(" + a.session.User.Username + ")"
}
