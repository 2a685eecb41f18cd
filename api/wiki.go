package api

import (
	"net/http"
	"time"

	"github.com/TASVideos/wikimark/db"
	"github.com/TASVideos/wikimark/util"
	"github.com/TASVideos/wikimark/wikitext"
	"github.com/gin-gonic/gin"
)

type WikiPageResponse struct {
	Page      string    `json:"page"`
	Revision  int32     `json:"revision"`
	HTML      string    `json:"html"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateWikiRevisionRequest struct {
	Markup          string  `json:"markup" binding:"required,max=200000"`
	RevisionMessage *string `json:"revision_message" binding:"omitempty,max=500"`
}

type CreateWikiRevisionResponse struct {
	Page     string                         `json:"page"`
	Revision int32                          `json:"revision"`
	Warnings []wikitext.SerializableWarning `json:"warnings"`
}

// pageNameFromParam returns the page name of the "*page" route parameter.
func pageNameFromParam(ctx *gin.Context) (string, bool) {
	name, ok := normalizePageName(ctx.Param("page"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(
			ErrInvalidPageName,
			ErrorField{FieldName: "page", ErrorMessage: getBindingErrorMessage("page_name")},
		))
	}
	return name, ok
}

// getWikiPage renders the current revision of the page for the viewer.
func (s *Service) getWikiPage(ctx *gin.Context) {
	name, ok := pageNameFromParam(ctx)
	if !ok {
		return
	}

	page, err := s.store.GetWikiPage(ctx, name)
	if err != nil {
		respondError(ctx, err)
		return
	}

	doc, _, err := s.renderDocument(ctx, renderInput{
		dialect:  wikitext.Wiki(),
		source:   page.Markup,
		pageName: page.PageName,
		viewer:   extractViewerFromCtx(ctx),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, WikiPageResponse{
		Page:      page.PageName,
		Revision:  page.Revision,
		HTML:      doc.HTML,
		Summary:   doc.Summary,
		CreatedAt: page.CreatedAt,
	})
}

// createWikiRevision stores a new revision of the page. Broken markup is saved as is,
// the problems are returned to the author.
func (s *Service) createWikiRevision(ctx *gin.Context) {
	viewer := extractViewerFromCtx(ctx)
	if viewer == nil || !viewer.CanEditPages {
		ctx.JSON(http.StatusForbidden, NewErrorResponse(ErrCannotEditPages))
		return
	}

	name, ok := pageNameFromParam(ctx)
	if !ok {
		return
	}

	var req CreateWikiRevisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	page, err := s.store.CreateWikiRevision(ctx, db.CreateWikiRevisionParams{
		PageName:        name,
		Markup:          req.Markup,
		RevisionMessage: util.OptionalText(req.RevisionMessage),
		AuthorID:        viewer.UserID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CreateWikiRevisionResponse{
		Page:     page.PageName,
		Revision: page.Revision,
		Warnings: s.serializeWarnings(page.Markup, s.wikiParser.ParseForAllErrors(page.Markup)),
	})
}
