package rest

import (
	"time"

	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/services"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// createPostRequest has no author field: the author is always the caller.
type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// updatePostRequest is a partial update; absent fields are kept.
type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func authToResponse(r *services.AuthResult) authResponse {
	return authResponse{
		Token: r.Token,
		User:  userResponse{ID: r.User.ID, Username: r.User.UserName},
	}
}

func postToResponse(p *models.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.AuthorID,
		CreatedAt: p.CreatedAt,
	}
}

func postsToResponses(list []models.Post) []postResponse {
	out := make([]postResponse, 0, len(list))
	for i := range list {
		out = append(out, postToResponse(&list[i]))
	}
	return out
}

func (r updatePostRequest) patch() models.PostPatch {
	return models.PostPatch{Title: r.Title, Content: r.Content}
}
