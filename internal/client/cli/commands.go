package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

var errNotLoggedIn = errors.New("not logged in")

// Register creates an account and stores the returned session. Every
// failure prints the same notice; the cause goes to the log.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.api.Register(ctx, username, email, password)
	if err != nil {
		a.logger.Warn(ctx, "register failed", "error", err)
		fmt.Fprintln(a.out, "Registration failed")
		return err
	}

	return a.startSession(ctx, s)
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, "Login failed")
		return err
	}

	return a.startSession(ctx, s)
}

func (a *App) startSession(ctx context.Context, s *models.Session) error {
	a.setSession(s)
	if err := a.store.Save(s); err != nil {
		a.logger.Warn(ctx, "session not saved", "error", err)
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", s.User.Username)
	return nil
}

// Logout forgets the token locally. Tokens are stateless, so the server is
// not involved.
func (a *App) Logout(ctx context.Context) error {
	a.setSession(nil)
	if err := a.store.Clear(); err != nil {
		a.logger.Warn(ctx, "session not cleared", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Posts(ctx context.Context) error {
	posts, err := a.api.ListPosts(ctx)
	if err != nil {
		return a.fail(ctx, "Could not load posts", err)
	}
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts yet")
		return nil
	}
	for _, p := range posts {
		fmt.Fprintf(a.out, "%s  %s  [%s] %s\n", p.ID, p.CreatedAt.Local().Format(time.DateTime), a.authorLabel(p.Author), p.Title)
	}
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	p, err := a.api.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			fmt.Fprintln(a.out, "Post not found")
			return err
		}
		return a.fail(ctx, "Could not load post", err)
	}
	fmt.Fprintf(a.out, "%s\n%s, %s\n\n%s\n", p.Title, a.authorLabel(p.Author), p.CreatedAt.Local().Format(time.DateTime), p.Content)
	return nil
}

func (a *App) Create(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return err
	}

	p, err := a.api.CreatePost(ctx, title, content)
	if err != nil {
		return a.fail(ctx, "Could not create post", err)
	}
	fmt.Fprintf(a.out, "Created %s\n", p.ID)
	return nil
}

// Edit sends only the fields the user filled in; empty answers keep the
// current value.
func (a *App) Edit(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "New title (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "New content (empty keeps current)", a.out)
	if err != nil {
		return err
	}

	var patch models.PostPatch
	if title != "" {
		patch.Title = &title
	}
	if content != "" {
		patch.Content = &content
	}

	p, err := a.api.UpdatePost(ctx, id, patch)
	if err != nil {
		return a.fail(ctx, "Could not update post", err)
	}
	if p == nil {
		fmt.Fprintln(a.out, "Nothing updated: post not found or not yours")
		return nil
	}
	fmt.Fprintf(a.out, "Updated %s\n", p.ID)
	return nil
}

// Delete reports success even when nothing was removed; the server does not
// tell whether the post existed or who owned it.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if err := a.api.DeletePost(ctx, id); err != nil {
		return a.fail(ctx, "Could not delete post", err)
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first")
		return errNotLoggedIn
	}
	return nil
}

// fail prints notice and logs err. A rejected token drops the local session.
func (a *App) fail(ctx context.Context, notice string, err error) error {
	a.logger.Warn(ctx, notice, "error", err)
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		a.setSession(nil)
		_ = a.store.Clear()
		fmt.Fprintln(a.out, "Session is no longer valid, please log in again")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable")
	default:
		fmt.Fprintln(a.out, notice)
	}
	return err
}

func (a *App) authorLabel(authorID string) string {
	if a.session != nil && a.session.User.ID == authorID {
		return "you"
	}
	return authorID
}
