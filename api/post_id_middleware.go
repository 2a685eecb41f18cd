package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const postIDKey = "provided_post_id"

func postIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// getting mandatory post id form the request, abort with 400 on error
		postIDRaw := ctx.Param("post_id")

		postID, err := strconv.ParseInt(postIDRaw, 10, 64)
		if err != nil || postID < 1 {
			errField := ErrorField{"post_id", fmt.Sprintf("Invalid post id: %s", postIDRaw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidPostID, errField),
			)
			return
		}

		ctx.Set(postIDKey, postID)
		ctx.Next()
	}
}

func extractPostIDFromCtx(ctx *gin.Context) int64 {
	return ctx.GetInt64(postIDKey)
}
