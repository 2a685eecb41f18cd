package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCORSMiddleware(t *testing.T) {
	testCases := []struct {
		name          string
		method        string
		origin        string
		allowed       []string
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:    "AllowedOrigin",
			method:  http.MethodGet,
			origin:  "http://localhost:3000",
			allowed: []string{"http://localhost:3000"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
				require.Equal(t, "Origin", recorder.Header().Get("Vary"))
			},
		},
		{
			name:    "OtherOrigin",
			method:  http.MethodGet,
			origin:  "http://evil.example",
			allowed: []string{"http://localhost:3000"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "Wildcard",
			method:  http.MethodGet,
			origin:  "http://anything.example",
			allowed: []string{"*"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "Preflight",
			method:  http.MethodOptions,
			origin:  "http://localhost:3000",
			allowed: []string{"http://localhost:3000"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNoContent, recorder.Code)
				require.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), RequestIDHeader)
				require.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService(t, nil, newTestTokenMaker(t), nil)
			service.config.AllowedOrigins = tc.allowed
			service.setupRouter(service.server)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(tc.method, "/ping", nil)
			require.NoError(t, err)
			request.Header.Set("Origin", tc.origin)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	service := newTestService(t, nil, newTestTokenMaker(t), nil)

	t.Run("Generated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)

		service.router.ServeHTTP(recorder, request)

		_, err = uuid.Parse(recorder.Header().Get(RequestIDHeader))
		require.NoError(t, err)
	})

	t.Run("FromClient", func(t *testing.T) {
		id := uuid.NewString()

		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		request.Header.Set(RequestIDHeader, id)

		service.router.ServeHTTP(recorder, request)
		require.Equal(t, id, recorder.Header().Get(RequestIDHeader))
	})

	t.Run("InvalidFromClient", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		request.Header.Set(RequestIDHeader, "not-a-uuid")

		service.router.ServeHTTP(recorder, request)

		got := recorder.Header().Get(RequestIDHeader)
		require.NotEqual(t, "not-a-uuid", got)
		_, err = uuid.Parse(got)
		require.NoError(t, err)
	})
}
