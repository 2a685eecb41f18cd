package api

import (
	"net/http"

	"github.com/TASVideos/wikimark/modules"
	"github.com/gin-gonic/gin"
)

type BrokenPagesResponse struct {
	Pages []modules.BrokenPage `json:"pages"`
}

// listBrokenPages reports every wiki page whose current revision has a syntax problem.
func (s *Service) listBrokenPages(ctx *gin.Context) {
	viewer := extractViewerFromCtx(ctx)
	if viewer == nil || !viewer.CanEditPages {
		ctx.JSON(http.StatusForbidden, NewErrorResponse(ErrCannotEditPages))
		return
	}

	broken, err := modules.FindBrokenPages(ctx, s.store, s.wikiParser, s.excerptRadius())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, BrokenPagesResponse{Pages: broken})
}
