package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/TASVideos/wikimark/db"
	"github.com/TASVideos/wikimark/modules"
	"github.com/TASVideos/wikimark/tmpstore"
	"github.com/TASVideos/wikimark/token"
	"github.com/TASVideos/wikimark/util"
	"github.com/TASVideos/wikimark/wikitext"
	"github.com/gin-gonic/gin"
)

var (
	// api errors
	ErrInvalidParams   = errors.New("invalid params")
	ErrInvalidPostID   = errors.New("invalid post id")
	ErrInvalidPageName = errors.New("invalid page name")
	ErrInvalidDialect  = errors.New("invalid dialect")
	ErrCannotEditPages = errors.New("user cannot edit wiki pages")
	ErrInternal        = errors.New("internal server error")
)

type Service struct {
	config     util.Config
	store      db.Store
	tokenMaker token.Maker
	cache      tmpstore.Store
	modules    *modules.Registry
	wikiParser *wikitext.Parser
	server     *http.Server
	router     *gin.Engine
}

// Returns new service instance with provided config and store.
// The render cache is optional.
func NewService(
	config util.Config,
	store db.Store,
	tokenMaker token.Maker,
	cache tmpstore.Store,
	registry *modules.Registry,
) (*Service, error) {
	// the parser limits come from the config, bad ones should stop the server early
	wikiParser, err := wikitext.NewParser(wikitext.Wiki(), config.ParserOptions()...)
	if err != nil {
		return nil, err
	}

	addr, err := config.ListenAddress()
	if err != nil {
		return nil, err
	}

	if err = registerValidators(); err != nil {
		return nil, err
	}

	service := &Service{
		config:     config,
		store:      store,
		tokenMaker: tokenMaker,
		cache:      cache,
		modules:    registry,
		wikiParser: wikiParser,
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
