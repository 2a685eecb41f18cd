package api

import (
	"net/http"
	"time"

	"github.com/TASVideos/wikimark/db"
	"github.com/TASVideos/wikimark/wikitext"
	"github.com/gin-gonic/gin"
)

type ForumPostResponse struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Subject   string    `json:"subject"`
	HTML      string    `json:"html"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateForumPostRequest struct {
	Subject      string `json:"subject" binding:"max=150"`
	Markup       string `json:"markup" binding:"required,max=200000"`
	EnableBBCode *bool  `json:"enable_bbcode"`
	EnableHTML   bool   `json:"enable_html"`
}

type CreateForumPostResponse struct {
	ID       int64                          `json:"id"`
	Warnings []wikitext.SerializableWarning `json:"warnings"`
}

// getForumPost renders the post in the dialect its author chose.
func (s *Service) getForumPost(ctx *gin.Context) {
	post, err := s.store.GetForumPost(ctx, extractPostIDFromCtx(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	doc, _, err := s.renderDocument(ctx, renderInput{
		dialect: post.Dialect(),
		source:  post.Markup,
		viewer:  extractViewerFromCtx(ctx),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ForumPostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Subject:   post.Subject,
		HTML:      doc.HTML,
		Summary:   doc.Summary,
		CreatedAt: post.CreatedAt,
	})
}

// createForumPost stores the post. BBCode is on unless the author turns it off.
func (s *Service) createForumPost(ctx *gin.Context) {
	viewer := extractViewerFromCtx(ctx)

	var req CreateForumPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	enableBBCode := req.EnableBBCode == nil || *req.EnableBBCode

	post, err := s.store.CreateForumPost(ctx, db.CreateForumPostParams{
		AuthorID:     viewer.UserID,
		Subject:      req.Subject,
		Markup:       req.Markup,
		EnableBBCode: enableBBCode,
		EnableHTML:   req.EnableHTML,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	parser, err := s.newParser(post.Dialect())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CreateForumPostResponse{
		ID:       post.ID,
		Warnings: s.serializeWarnings(post.Markup, parser.ParseForAllErrors(post.Markup)),
	})
}
