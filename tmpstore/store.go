package tmpstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/TASVideos/wikimark/util"
	"github.com/TASVideos/wikimark/wikitext"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	RenderPrefix = "render:"
)

// ErrRenderNotFound is returned when there is no cached render for the document.
var ErrRenderNotFound = errors.New("render not found or expired")

// RenderedDocument is the cached output of a document which doesn't depend on the viewer.
type RenderedDocument struct {
	HTML    string `json:"html"`
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

type Store interface {
	SaveRender(ctx context.Context, dialect wikitext.Dialect, source string, doc RenderedDocument, ttl time.Duration) error
	GetRender(ctx context.Context, dialect wikitext.Dialect, source string) (*RenderedDocument, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// RenderKey is the cache key of the document. The same source renders differently in
// different dialects, so both are hashed.
func RenderKey(dialect wikitext.Dialect, source string) string {
	h := sha256.New()
	h.Write([]byte(dialect.String()))
	h.Write([]byte{0})
	h.Write([]byte(source))

	return RenderPrefix + hex.EncodeToString(h.Sum(nil))
}

func (store *RedisStore) SaveRender(
	ctx context.Context,
	dialect wikitext.Dialect,
	source string,
	doc RenderedDocument,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize rendered document: %w", err)
	}

	return store.client.Set(ctx, RenderKey(dialect, source), jsonData, ttl).Err()
}

// GetRender returns ErrRenderNotFound if the document isn't cached.
func (store *RedisStore) GetRender(ctx context.Context, dialect wikitext.Dialect, source string) (*RenderedDocument, error) {
	jsonData, err := store.client.Get(ctx, RenderKey(dialect, source)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRenderNotFound
		}
		return nil, fmt.Errorf("failed to get rendered document: %w", err)
	}

	var doc RenderedDocument
	if err := json.Unmarshal([]byte(jsonData), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rendered document json: %w", err)
	}

	return &doc, nil
}
