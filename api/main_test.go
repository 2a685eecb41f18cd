package api

import (
	"fmt"
	"net/http"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/TASVideos/wikimark/db"
	"github.com/TASVideos/wikimark/modules"
	"github.com/TASVideos/wikimark/tmpstore"
	"github.com/TASVideos/wikimark/token"
	"github.com/TASVideos/wikimark/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	HTTPServerAddress: "http://localhost:8080",
	TokenSymmetricKey: util.RandomString(32),
	RenderCacheTTL:    time.Minute,
	MaxWarnings:       10,
	MaxNestingDepth:   0,
	ExcerptRadius:     5,
	AllowedOrigins:    []string{"http://localhost:3000"},
}

func newTestService(
	t *testing.T,
	store db.Store,
	tokenMaker token.Maker,
	cache tmpstore.Store,
) *Service {
	t.Helper()

	service, err := NewService(testConfig, store, tokenMaker, cache, modules.Default())
	require.NoError(t, err)
	return service
}

func newTestTokenMaker(t *testing.T) token.Maker {
	t.Helper()

	tokenMaker, err := token.NewJWTMaker(testConfig.TokenSymmetricKey)
	require.NoError(t, err)
	return tokenMaker
}

func setAuthorizationHeader(
	t *testing.T,
	tokenMaker token.Maker,
	authorizationType string,
	userID int64,
	canEditPages bool,
	duration time.Duration,
	request *http.Request,
) {
	accessToken, payload, err := tokenMaker.CreateToken(userID, canEditPages, duration)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	authorizationToken := fmt.Sprintf("%s %s", authorizationType, accessToken)
	request.Header.Set(authorizationheaderKey, authorizationToken)
}
