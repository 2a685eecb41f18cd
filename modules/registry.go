package modules

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/TASVideos/wikimark/db"
	"github.com/TASVideos/wikimark/token"
	"github.com/TASVideos/wikimark/wikitext"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// Env is what a module knows about the document being rendered.
type Env struct {
	Store db.Store

	// Parser is used by modules which inspect other documents.
	Parser *wikitext.Parser

	// PageName is the wiki page being rendered, empty for previews and forum posts.
	PageName string

	// Viewer is nil for anonymous viewers.
	Viewer *token.Payload

	// ExcerptRadius is the count of runes shown around a syntax problem.
	ExcerptRadius int
}

// Module renders one invocation into an HTML fragment.
type Module func(ctx context.Context, env Env, opts wikitext.ModuleOptions) (string, error)

// Registry maps module names to their implementations. It's built once at startup and
// is read-only afterwards, so it's safe to share between requests.
type Registry struct {
	modules map[string]Module
}

func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Default returns the registry with every built-in module.
func Default() *Registry {
	r := NewRegistry()
	r.Register(NameListSubpages, ListSubpages)
	r.Register(NameBrokenMarkup, BrokenMarkup)
	return r
}

// Register adds the module, replacing the one with the same name. Names are case-insensitive.
func (r *Registry) Register(name string, m Module) {
	r.modules[strings.ToLower(name)] = m
}

// Names returns the sorted names of the registered modules.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolver binds the registry to one render call.
// Unknown modules render an inline error instead of failing the whole document.
// Repeated invocations with the same options run the module once per render.
func (r *Registry) Resolver(ctx context.Context, env Env) wikitext.ModuleResolver {
	rendered := make(map[string]string)

	return wikitext.ModuleResolverFunc(func(name, options string) (string, error) {
		key := strings.ToLower(name) + "|" + options
		if out, ok := rendered[key]; ok {
			return out, nil
		}

		m, ok := r.modules[strings.ToLower(name)]
		if !ok {
			log.Warn().
				Str("module", name).
				Str("page", env.PageName).
				Msg("unknown module")

			return moduleError("Unknown module: " + name), nil
		}

		out, err := m(ctx, env, wikitext.ParseModuleOptions(options))
		if err != nil {
			return "", fmt.Errorf("module %q: %w", name, err)
		}

		rendered[key] = out
		return out, nil
	})
}

func moduleError(msg string) string {
	return `<div class="module-error">` + html.EscapeString(msg) + `</div>`
}
