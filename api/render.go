package api

import (
	"net/http"

	"github.com/TASVideos/wikimark/wikitext"
	"github.com/gin-gonic/gin"
)

// MarkupRequest is a document with its dialect. The markup is capped at 200k runes.
type MarkupRequest struct {
	Markup       string `json:"markup" binding:"max=200000"`
	Dialect      string `json:"dialect" binding:"required,dialect"`
	EnableBBCode bool   `json:"enable_bbcode"`
	EnableHTML   bool   `json:"enable_html"`
}

// dialect returns the ErrorField to report when the flags don't fit the dialect.
func (req *MarkupRequest) dialect() (wikitext.Dialect, *ErrorField) {
	d, err := wikitext.ParseDialect(req.Dialect, req.EnableBBCode, req.EnableHTML)
	if err != nil {
		return wikitext.Dialect{}, &ErrorField{FieldName: "dialect", ErrorMessage: err.Error()}
	}
	return d, nil
}

type RenderRequest struct {
	MarkupRequest
	Flags    []string `json:"flags" binding:"max=20,dive,required,max=64"`
	PageName string   `json:"page_name" binding:"omitempty,page_name"`
}

type RenderResponse struct {
	HTML     string                         `json:"html"`
	Text     string                         `json:"text"`
	Summary  string                         `json:"summary"`
	Warnings []wikitext.SerializableWarning `json:"warnings"`
}

// render previews the markup as the requesting viewer would see it, with additional flags.
func (s *Service) render(ctx *gin.Context) {
	var req RenderRequest
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

	pageName, _ := normalizePageName(req.PageName)

	doc, tree, err := s.renderDocument(ctx, renderInput{
		dialect:  dialect,
		source:   req.Markup,
		pageName: pageName,
		viewer:   extractViewerFromCtx(ctx),
		flags:    req.Flags,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, RenderResponse{
		HTML:     doc.HTML,
		Text:     doc.Text,
		Summary:  doc.Summary,
		Warnings: s.serializeWarnings(req.Markup, tree.Warnings),
	})
}
