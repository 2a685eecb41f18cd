package api

import (
	"context"
	"errors"

	"github.com/TASVideos/wikimark/modules"
	"github.com/TASVideos/wikimark/tmpstore"
	"github.com/TASVideos/wikimark/token"
	"github.com/TASVideos/wikimark/wikitext"
	"github.com/rs/zerolog/log"
)

// summaryRunes is the length of the document summary.
const summaryRunes = 200

// Flags of the viewer visible to the conditionals.
const (
	FlagUserIsLoggedIn = "UserIsLoggedIn"
	FlagCanEditPages   = "CanEditPages"
)

type renderInput struct {
	dialect  wikitext.Dialect
	source   string
	pageName string
	viewer   *token.Payload

	// flags are added to the viewer's flags
	flags []string
}

func (s *Service) newParser(dialect wikitext.Dialect) (*wikitext.Parser, error) {
	return wikitext.NewParser(dialect, s.config.ParserOptions()...)
}

func (s *Service) excerptRadius() int {
	return s.config.ExcerptRadius
}

// viewerCondition makes the flags of the viewer visible to the conditionals.
func viewerCondition(viewer *token.Payload, flags ...string) wikitext.Condition {
	if viewer != nil {
		flags = append(flags, FlagUserIsLoggedIn)
		if viewer.CanEditPages {
			flags = append(flags, FlagCanEditPages)
		}
	}

	return wikitext.Flags(flags...)
}

// renderDocument parses and renders the source. Documents without modules and
// conditionals look the same for every viewer, so their output is cached.
// A failing cache never fails the render.
func (s *Service) renderDocument(ctx context.Context, in renderInput) (tmpstore.RenderedDocument, *wikitext.AST, error) {
	// 1. Parse, the warnings are always fresh
	parser, err := s.newParser(in.dialect)
	if err != nil {
		return tmpstore.RenderedDocument{}, nil, err
	}

	tree := parser.Parse(in.source)
	cacheable := s.cache != nil && tree.IsStatic()

	// 2. Cached output
	if cacheable {
		cached, err := s.cache.GetRender(ctx, in.dialect, in.source)
		if err == nil {
			return *cached, tree, nil
		}

		if !errors.Is(err, tmpstore.ErrRenderNotFound) {
			log.Warn().Err(err).Msg("cannot read the render cache")
		}
	}

	// 3. Render
	resolver := s.modules.Resolver(ctx, modules.Env{
		Store:         s.store,
		Parser:        s.wikiParser,
		PageName:      in.pageName,
		Viewer:        in.viewer,
		ExcerptRadius: s.excerptRadius(),
	})

	html, err := wikitext.RenderHTML(tree, resolver, viewerCondition(in.viewer, in.flags...))
	if err != nil {
		return tmpstore.RenderedDocument{}, nil, err
	}

	doc := tmpstore.RenderedDocument{
		HTML:    html,
		Text:    wikitext.RenderText(tree),
		Summary: wikitext.Summarize(tree, summaryRunes),
	}

	// 4. Store the output for the next viewer
	if cacheable {
		err = s.cache.SaveRender(ctx, in.dialect, in.source, doc, s.config.RenderCacheTTL)
		if err != nil {
			log.Warn().Err(err).Msg("cannot save the render cache")
		}
	}

	return doc, tree, nil
}

// serializeWarnings never returns nil, so the JSON is always a list.
func (s *Service) serializeWarnings(source string, warns []wikitext.Warning) []wikitext.SerializableWarning {
	return wikitext.SerializeWarnings(source, warns, s.excerptRadius())
}
