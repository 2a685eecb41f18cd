package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TASVideos/wikimark/wikitext"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	testCases := []struct {
		name          string
		body          gin.H
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Clean",
			body: gin.H{
				"markup":  "!!! Title\n[[ escaped",
				"dialect": "wiki",
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				res := requireDiagnosticsResponse(t, recorder.Body)
				require.NotNil(t, res.Warnings)
				require.Empty(t, res.Warnings)
				require.False(t, res.Truncated)
			},
		},
		{
			name: "Problems",
			body: gin.H{
				"markup":        "ab[/b]",
				"dialect":       "forum",
				"enable_bbcode": true,
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				res := requireDiagnosticsResponse(t, recorder.Body)
				require.Len(t, res.Warnings, 1)

				w := res.Warnings[0]
				require.Equal(t, wikitext.IssueMisplacedClosingTag.String(), w.Issue)
				require.Equal(t, 2, w.ByteIdx)
				require.Equal(t, 2, w.SymbolIdx)
				require.Equal(t, "ab", w.Before)
				require.False(t, res.Truncated)
			},
		},
		{
			name: "Truncated",
			body: gin.H{
				"markup":        strings.Repeat("[/b]", testConfig.MaxWarnings+5),
				"dialect":       "forum",
				"enable_bbcode": true,
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				res := requireDiagnosticsResponse(t, recorder.Body)
				require.True(t, res.Truncated)
				require.LessOrEqual(t, len(res.Warnings), testConfig.MaxWarnings+1)
			},
		},
		{
			name: "MissingDialect",
			body: gin.H{
				"markup": "x",
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidParams.Error(), res.Error)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "dialect", res.Fields[0].FieldName)
				require.Equal(t, getBindingErrorMessage("required"), res.Fields[0].ErrorMessage)
			},
		},
		{
			name: "WikiWithHTML",
			body: gin.H{
				"markup":      "x",
				"dialect":     "wiki",
				"enable_html": true,
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidDialect.Error(), res.Error)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService(t, nil, newTestTokenMaker(t), nil)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, DiagnosticsURL, bytes.NewReader(data))
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func requireDiagnosticsResponse(t *testing.T, body *bytes.Buffer) DiagnosticsResponse {
	t.Helper()

	var res DiagnosticsResponse
	require.NoError(t, json.NewDecoder(body).Decode(&res))
	return res
}
