package api

import (
	"net/http"
	"slices"

	"github.com/TASVideos/wikimark/wikitext"
	"github.com/gin-gonic/gin"
)

type DiagnosticsResponse struct {
	Warnings []wikitext.SerializableWarning `json:"warnings"`
	// Truncated is true if there were more problems than the configured maximum.
	Truncated bool `json:"truncated"`
}

// diagnostics checks the markup without rendering it.
func (s *Service) diagnostics(ctx *gin.Context) {
	var req MarkupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	dialect, errField := req.dialect()
	if errField != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidDialect, *errField))
		return
	}

	parser, err := s.newParser(dialect)
	if err != nil {
		respondError(ctx, err)
		return
	}

	warns := parser.ParseForAllErrors(req.Markup)

	truncated := slices.ContainsFunc(warns, func(w wikitext.Warning) bool {
		return w.Issue == wikitext.IssueWarningsTruncated
	})

	ctx.JSON(http.StatusOK, DiagnosticsResponse{
		Warnings:  s.serializeWarnings(req.Markup, warns),
		Truncated: truncated,
	})
}
