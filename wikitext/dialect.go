package wikitext

import (
	"errors"
	"fmt"
	"strings"
)

// DialectKind selects the grammar used to read the source.
type DialectKind uint8

const (
	// DialectWiki is the grammar of wiki pages.
	DialectWiki DialectKind = iota + 1

	// DialectForum is the grammar of forum posts.
	DialectForum
)

// Dialect is the per-call grammar configuration.
// The two flags are owned by the forum post and only make sense for [DialectForum].
type Dialect struct {
	Kind         DialectKind
	EnableBBCode bool
	EnableHTML   bool
}

// Wiki returns the wiki page dialect.
func Wiki() Dialect {
	return Dialect{Kind: DialectWiki}
}

// Forum returns the forum post dialect with the post's BBCode and HTML flags.
func Forum(enableBBCode, enableHTML bool) Dialect {
	return Dialect{
		Kind:         DialectForum,
		EnableBBCode: enableBBCode,
		EnableHTML:   enableHTML,
	}
}

// ParseDialect builds a Dialect from its name, "wiki" or "forum".
func ParseDialect(name string, enableBBCode, enableHTML bool) (Dialect, error) {
	var d Dialect

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wiki":
		d = Dialect{Kind: DialectWiki, EnableBBCode: enableBBCode, EnableHTML: enableHTML}
	case "forum":
		d = Forum(enableBBCode, enableHTML)
	default:
		return Dialect{}, NewConfigError(IssueInvalidDialect, fmt.Errorf("unknown dialect %q", name))
	}

	return d, d.Validate()
}

// Validate returns a [ConfigError] if the Dialect cannot be used for parsing.
func (d Dialect) Validate() error {
	switch d.Kind {
	case DialectWiki:
		if d.EnableBBCode || d.EnableHTML {
			return NewConfigError(
				IssueInvalidDialect,
				errors.New("wiki dialect does not accept the forum BBCode and HTML flags"),
			)
		}
		return nil

	case DialectForum:
		return nil
	}

	return NewConfigError(IssueInvalidDialect, fmt.Errorf("unknown dialect kind %d", d.Kind))
}

func (d Dialect) IsWiki() bool {
	return d.Kind == DialectWiki
}

func (d Dialect) bbcode() bool {
	return d.Kind == DialectForum && d.EnableBBCode
}

func (d Dialect) html() bool {
	return d.Kind == DialectForum && d.EnableHTML
}

// String returns a stable name of the Dialect, e.g. "wiki" or "forum+bbcode".
// It's used as a part of the render cache key.
func (d Dialect) String() string {
	switch d.Kind {
	case DialectWiki:
		return "wiki"
	case DialectForum:
		s := "forum"
		if d.EnableBBCode {
			s += "+bbcode"
		}
		if d.EnableHTML {
			s += "+html"
		}
		return s
	}

	return "invalid"
}
