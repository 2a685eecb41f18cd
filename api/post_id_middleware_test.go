package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// router with the middleware wired the same way as the forum post route
func setupPostIDTestRouter(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET(ForumPostURL, postIDMiddleware(), handler)
	return r
}

func TestPostIDMiddleware(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		called   bool
		expected int
	}{
		{"Valid", "/forum/posts/123", true, http.StatusOK},
		{"NotANumber", "/forum/posts/abc", false, http.StatusBadRequest},
		{"Zero", "/forum/posts/0", false, http.StatusBadRequest},
		{"Negative", "/forum/posts/-4", false, http.StatusBadRequest},
		{"Overflow", "/forum/posts/99999999999999999999", false, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false

			router := setupPostIDTestRouter(func(ctx *gin.Context) {
				called = true
				require.Equal(t, int64(123), extractPostIDFromCtx(ctx))
				ctx.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			require.Equal(t, tc.called, called)
			require.Equal(t, tc.expected, resp.Code)

			if !tc.called {
				res, err := extractErrorFromBuffer(resp.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidPostID.Error(), res.Error)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "post_id", res.Fields[0].FieldName)
			}
		})
	}
}
