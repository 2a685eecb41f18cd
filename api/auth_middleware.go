package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/TASVideos/wikimark/token"
	"github.com/gin-gonic/gin"
)

const (
	authorizationheaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

var (
	ErrMissingAuthHeader = errors.New("authorization header is not provided")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// verifyAuthorization checks the bearer token of the request.
func verifyAuthorization(tokenMaker token.Maker, header string) (*token.Payload, error) {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, ErrInvalidAuthHeader
	}

	authorizationType := strings.ToLower(fields[0])
	if authorizationType != authorizationTypeBearer {
		return nil, fmt.Errorf("unsupported authorization type %s", authorizationType)
	}

	return tokenMaker.VerifyToken(fields[1])
}

// authMiddleware rejects requests without a valid bearer token.
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader(authorizationheaderKey)
		if len(header) == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(ErrMissingAuthHeader))
			return
		}

		payload, err := verifyAuthorization(tokenMaker, header)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// viewerMiddleware accepts anonymous requests, but a provided token must be valid.
func viewerMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader(authorizationheaderKey)
		if len(header) == 0 {
			ctx.Next()
			return
		}

		payload, err := verifyAuthorization(tokenMaker, header)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// extractViewerFromCtx returns nil for anonymous viewers.
func extractViewerFromCtx(ctx *gin.Context) *token.Payload {
	payload, ok := ctx.Get(authorizationPayloadKey)
	if !ok {
		return nil
	}

	viewer, _ := payload.(*token.Payload)
	return viewer
}
