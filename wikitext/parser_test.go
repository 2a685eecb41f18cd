package wikitext

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t testing.TB, input string, dialect Dialect, opts ...Option) *AST {
	t.Helper()
	p, err := NewParser(dialect, opts...)
	require.NoError(t, err)
	return p.Parse(input)
}

func issuesOf(warns []Warning) []Issue {
	out := make([]Issue, 0, len(warns))
	for _, w := range warns {
		out = append(out, w.Issue)
	}
	return out
}

func TestParse_WikiHeaderAndParagraph(t *testing.T) {
	tree := mustParse(t, "!!! Title\nHello", Wiki())

	require.Empty(t, tree.Warnings)
	require.Equal(t, &Element{
		Name: NameDocument,
		Span: Span{0, 15},
		Children: []Node{
			&Element{
				Name:     "h3",
				Span:     Span{0, 10},
				Children: []Node{&Text{Content: "Title", Span: Span{4, 9}}},
			},
			&Text{Content: "Hello", Span: Span{10, 15}},
		},
	}, tree.Root)
}

func TestParse_Module(t *testing.T) {
	input := "[module:tabularmovielist|limit=10|tier=Vault]"
	tree := mustParse(t, input, Wiki())

	require.Empty(t, tree.Warnings)
	require.Len(t, tree.Root.Children, 1)

	elem, ok := tree.Root.Children[0].(*Element)
	require.True(t, ok)
	require.Equal(t, "module:tabularmovielist", elem.Name)
	require.Equal(t, "limit=10|tier=Vault", elem.Options)
	require.True(t, elem.IsModule())
	require.Equal(t, "tabularmovielist", elem.ModuleName())
	require.Empty(t, elem.Children)

	require.Equal(t, 1, tree.Modules)
	require.False(t, tree.IsStatic())
}

func TestParse_Conditional(t *testing.T) {
	tree := mustParse(t, "[if:UserIsLoggedIn]Secret[endif]", Wiki())

	require.Empty(t, tree.Warnings)
	require.Equal(t, []Node{
		&Element{
			Name:     NameConditional,
			Options:  "UserIsLoggedIn",
			Span:     Span{0, 32},
			Children: []Node{&Text{Content: "Secret", Span: Span{19, 25}}},
		},
	}, tree.Root.Children)
	require.Equal(t, 1, tree.Conditionals)
}

func TestParse_ContentReference(t *testing.T) {
	tree := mustParse(t, "100S", Wiki())

	require.Empty(t, tree.Warnings)
	require.Equal(t, []Node{
		&Element{Name: NameSubmission, Options: "100", Span: Span{0, 4}},
	}, tree.Root.Children)
	require.True(t, tree.IsStatic())
}

func TestParse_Link(t *testing.T) {
	tree := mustParse(t, "see [Game Resources|the resources]", Wiki())

	require.Len(t, tree.Root.Children, 2)
	link := tree.Root.Children[1].(*Element)
	require.Equal(t, NameLink, link.Name)
	require.Equal(t, "Game Resources", link.Options)
	require.Equal(t, "the resources", link.Text())
}

func TestParse_UnclosedTag(t *testing.T) {
	input := "[b]bold"

	t.Run("force close", func(t *testing.T) {
		tree := mustParse(t, input, Forum(true, false))

		require.Equal(t, []Issue{IssueUnclosedTag}, issuesOf(tree.Warnings))
		require.Equal(t, 0, tree.Warnings[0].Pos)
		require.Equal(t, []Node{
			&Element{
				Name:     "b",
				Span:     Span{0, 7},
				Children: []Node{&Text{Content: "bold", Span: Span{3, 7}}},
			},
		}, tree.Root.Children)
	})

	t.Run("literal", func(t *testing.T) {
		tree := mustParse(t, input, Forum(true, false), WithRecovery(RecoverLiteral))

		require.Equal(t, []Issue{IssueUnclosedTag}, issuesOf(tree.Warnings))
		require.Equal(t, 0, tree.Warnings[0].Pos)
		require.Equal(t, []Node{
			&Text{Content: "[b]bold", Span: Span{0, 7}},
		}, tree.Root.Children)
	})
}

func TestParse_NestedUnclosedLiteral(t *testing.T) {
	input := "[b]x[i]y[u]z[/u]"
	tree := mustParse(t, input, Forum(true, false), WithRecovery(RecoverLiteral))

	require.Equal(t, []Issue{IssueUnclosedTag, IssueUnclosedTag}, issuesOf(tree.Warnings))
	require.Equal(t, 0, tree.Warnings[0].Pos)
	require.Equal(t, 4, tree.Warnings[1].Pos)

	require.Len(t, tree.Root.Children, 2)
	require.Equal(t, &Text{Content: "[b]x[i]y", Span: Span{0, 8}}, tree.Root.Children[0])

	u := tree.Root.Children[1].(*Element)
	require.Equal(t, "u", u.Name)
	require.Equal(t, "z", u.Text())
}

func TestParse_MisplacedClosingTag(t *testing.T) {
	tree := mustParse(t, "a[/b]", Forum(true, false))

	require.Equal(t, []Issue{IssueMisplacedClosingTag}, issuesOf(tree.Warnings))
	require.Equal(t, 1, tree.Warnings[0].Pos)
	require.Equal(t, []Node{&Text{Content: "a[/b]", Span: Span{0, 5}}}, tree.Root.Children)
}

func TestParse_ClosingOuterTagForceClosesInner(t *testing.T) {
	tree := mustParse(t, "[b][i]x[/b]", Forum(true, false))

	require.Equal(t, []Issue{IssueUnclosedTag}, issuesOf(tree.Warnings))
	require.Equal(t, 3, tree.Warnings[0].Pos)

	require.Equal(t, []Node{
		&Element{
			Name: "b",
			Span: Span{0, 11},
			Children: []Node{
				&Element{
					Name:     "i",
					Span:     Span{3, 7},
					Children: []Node{&Text{Content: "x", Span: Span{6, 7}}},
				},
			},
		},
	}, tree.Root.Children)
}

func TestParse_HeaderBoundsClosingTags(t *testing.T) {
	input := "!!! [if:A]x\ny[endif]"
	tree := mustParse(t, input, Wiki())

	require.Equal(t, []Issue{IssueUnclosedTag, IssueMisplacedClosingTag}, issuesOf(tree.Warnings))
	require.Equal(t, 4, tree.Warnings[0].Pos)
	require.Equal(t, 13, tree.Warnings[1].Pos)

	header := tree.Root.Children[0].(*Element)
	require.Equal(t, "h3", header.Name)
	require.Equal(t, "x", header.Text())

	require.Equal(t, &Text{Content: "y[endif]", Span: Span{12, 20}}, tree.Root.Children[1])
}

func TestParse_ListItemsCloseImplicitly(t *testing.T) {
	tree := mustParse(t, "[list][*]a[*]b[/list]", Forum(true, false))

	require.Empty(t, tree.Warnings)
	require.Len(t, tree.Root.Children, 1)

	list := tree.Root.Children[0].(*Element)
	require.Equal(t, "list", list.Name)
	require.Len(t, list.Children, 2)

	for i, text := range []string{"a", "b"} {
		item := list.Children[i].(*Element)
		require.Equal(t, NameListItem, item.Name)
		require.Equal(t, text, item.Text())
	}
}

func TestParse_MalformedModuleOptions(t *testing.T) {
	tree := mustParse(t, "[module:x|=5||a]", Wiki())

	require.Equal(t, []Issue{IssueMalformedModuleOption, IssueMalformedModuleOption}, issuesOf(tree.Warnings))
	require.Equal(t, 10, tree.Warnings[0].Pos)
	require.Equal(t, 13, tree.Warnings[1].Pos)

	// the element is kept
	elem := tree.Root.Children[0].(*Element)
	require.Equal(t, "module:x", elem.Name)
	require.Equal(t, "=5||a", elem.Options)
}

func TestParse_MalformedDirectivesAreText(t *testing.T) {
	testCases := []struct {
		input string
		issue Issue
	}{
		{"[module:]x", IssueEmptyDirectiveName},
		{"[if:]x", IssueEmptyDirectiveName},
		{"[module:foo x", IssueUnterminatedDirective},
		{"[if:Foo x", IssueUnterminatedDirective},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			tree := mustParse(t, tc.input, Wiki())

			require.Equal(t, []Issue{tc.issue}, issuesOf(tree.Warnings))
			require.Equal(t, 0, tree.Warnings[0].Pos)
			require.Equal(t, []Node{
				&Text{Content: tc.input, Span: Span{0, len(tc.input)}},
			}, tree.Root.Children)
		})
	}
}

func TestParse_NestingTooDeep(t *testing.T) {
	input := "[b][i][u]x[/u][/i][/b]"
	tree := mustParse(t, input, Forum(true, false), WithMaxDepth(2))

	require.Equal(t, []Issue{IssueNestingTooDeep}, issuesOf(tree.Warnings))
	require.Equal(t, 6, tree.Warnings[0].Pos)
	require.Equal(t, 2, tree.MaxDepth)

	b := tree.Root.Children[0].(*Element)
	i := b.Children[0].(*Element)
	require.Equal(t, []Node{&Text{Content: "[u]x[/u]", Span: Span{6, 14}}}, i.Children)
}

func TestParse_EscapedBracket(t *testing.T) {
	tree := mustParse(t, "a [[b] c", Wiki())

	require.Empty(t, tree.Warnings)
	require.Equal(t, []Node{&Text{Content: "a [b] c", Span: Span{0, 8}}}, tree.Root.Children)
}

func TestParse_CodeBodyIsVerbatim(t *testing.T) {
	tree := mustParse(t, "[code][b]x[/code]", Forum(true, false))

	require.Empty(t, tree.Warnings)
	code := tree.Root.Children[0].(*Element)
	require.Equal(t, []Node{&Text{Content: "[b]x", Span: Span{6, 10}}}, code.Children)
}

func TestParse_EmptyInput(t *testing.T) {
	tree := mustParse(t, "", Wiki())

	require.Empty(t, tree.Warnings)
	require.Equal(t, &Element{Name: NameDocument, Span: Span{0, 0}}, tree.Root)
}

func TestParse_BalancedInputHasNoWarnings(t *testing.T) {
	testCases := []struct {
		input   string
		dialect Dialect
	}{
		{"!! H\ntext [Page] 1S 2M 3G\n----\n[if:A][module:m|a=1][endif]", Wiki()},
		{"[if:A]x[if:B]y[endif][endif] [[literal]] <b>", Wiki()},
		{"[b][i]x[/i][/b] [list][*]a[*]b[/list] [code][b][/code]", Forum(true, false)},
		{"[quote=Bob][url=http://x.org]x[/url][/quote] [color=red]r[/color]", Forum(true, true)},
		{"<b>x</b><br>[b]", Forum(false, true)},
		{"plain [b] text", Forum(false, false)},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			tree := mustParse(t, tc.input, tc.dialect)
			require.Empty(t, tree.Warnings)
		})
	}
}

func TestParse_WarningsAreSorted(t *testing.T) {
	tree := mustParse(t, "[b]x[/i]", Forum(true, false))

	require.Equal(t, []Issue{IssueUnclosedTag, IssueMisplacedClosingTag}, issuesOf(tree.Warnings))
	require.Equal(t, 0, tree.Warnings[0].Pos)
	require.Equal(t, 4, tree.Warnings[1].Pos)
}

func TestParse_WarningsCap(t *testing.T) {
	input := strings.Repeat("[/b]", 10)
	tree := mustParse(t, input, Forum(true, false), WithWarningsPolicy(WarnOverflowTrunc, 3))

	require.Equal(t, []Issue{
		IssueMisplacedClosingTag,
		IssueMisplacedClosingTag,
		IssueWarningsTruncated,
	}, issuesOf(tree.Warnings))
	require.Equal(t, 8, tree.Warnings[2].Pos)
}

func TestParse_DeepBalancedNesting(t *testing.T) {
	const depth = 10000
	input := strings.Repeat("[b]", depth) + "x" + strings.Repeat("[/b]", depth)
	tree := mustParse(t, input, Forum(true, false))

	require.Empty(t, tree.Warnings)
	require.Equal(t, depth, tree.MaxDepth)

	_, broken, err := ParseForErrors(input, Forum(true, false))
	require.NoError(t, err)
	require.False(t, broken)

	html, err := RenderHTML(tree, nil, nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(html, "<b><b>"))
	require.True(t, strings.HasSuffix(html, "</b></b>"))
}

func TestParse_DeepNestingWithLimit(t *testing.T) {
	input := strings.Repeat("[b]", 10000) + "x"
	tree := mustParse(t, input, Forum(true, false), WithMaxDepth(256))

	require.Equal(t, 256, tree.MaxDepth)
	require.NotEmpty(t, tree.Warnings)
}

func TestParse_UnmatchedClosingTagsUnderDeepNesting(t *testing.T) {
	const depth = 20000
	input := strings.Repeat("[i]", depth) + strings.Repeat("[/b]", depth)
	tree := mustParse(t, input, Forum(true, false), WithWarningsPolicy(WarnOverflowTrunc, 5))

	require.Equal(t, depth, tree.MaxDepth)
	require.Len(t, tree.Warnings, 5)
}

func TestNewParser_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		dialect Dialect
		opts    []Option
		issue   Issue
	}{
		{"zero dialect", Dialect{}, nil, IssueInvalidDialect},
		{"wiki with forum flags", Dialect{Kind: DialectWiki, EnableBBCode: true}, nil, IssueInvalidDialect},
		{"negative depth", Wiki(), []Option{WithMaxDepth(-1)}, IssueNegativeLimit},
		{"negative warnings cap", Wiki(), []Option{WithWarningsPolicy(WarnOverflowDrop, -1)}, IssueNegativeWarningsCap},
		{"unknown recovery", Wiki(), []Option{WithRecovery(RecoveryMode(7))}, IssueInvalidRecoveryMode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewParser(tc.dialect, tc.opts...)
			require.Nil(t, p)

			var ce *ConfigError
			require.True(t, errors.As(err, &ce), "expected *ConfigError, got %T (%v)", err, err)
			require.Equal(t, tc.issue, ce.Issue)
		})
	}
}

func TestParse_InvalidDialect(t *testing.T) {
	tree, err := Parse("x", Dialect{})
	require.Nil(t, tree)

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, IssueInvalidDialect, ce.Issue)
}

func TestWalk(t *testing.T) {
	tree := mustParse(t, "[b]x[i]y[/i][/b]z", Forum(true, false))

	var names []string
	Walk(tree.Root, func(n Node) bool {
		if e, ok := n.(*Element); ok {
			names = append(names, e.Name)
			// skipping the content of italics
			return e.Name != "i"
		}
		return true
	})

	require.Equal(t, []string{NameDocument, "b", "i"}, names)
	require.Equal(t, "xyz", tree.Root.Text())
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"!!! Title\nHello",
		"[module:tabularmovielist|limit=10|tier=Vault]",
		"[if:UserIsLoggedIn]Secret[endif]",
		"[b]bold",
		"100S",
		"[list][*]a[*][b]b[/list][/b]",
		"[code][noparse]<x>[/code]",
		"<a href=\"javascript:x\">y</a><script>",
		"[[ [[ [module:|] [if:] ---- \r\n!!!!!",
		"ж100S [ü|ö] \xff\xfe",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	dialects := []Dialect{Wiki(), Forum(false, false), Forum(true, false), Forum(true, true)}
	resolver := ModuleResolverFunc(func(name, options string) (string, error) {
		return "<module>", nil
	})

	f.Fuzz(func(t *testing.T, input string) {
		for _, d := range dialects {
			for _, mode := range []RecoveryMode{RecoverForceClose, RecoverLiteral} {
				tree := mustParse(t, input, d, WithRecovery(mode))

				for _, w := range tree.Warnings {
					require.GreaterOrEqual(t, w.Pos, 0)
					require.LessOrEqual(t, w.Pos, len(input))
				}

				// the diagnostics pass reports the same problems
				p, err := NewParser(d, WithRecovery(mode))
				require.NoError(t, err)
				require.Equal(t, tree.Warnings, p.ParseForAllErrors(input))

				out, err := RenderHTML(tree, resolver, Flags("A"))
				require.NoError(t, err)
				lower := strings.ToLower(out)
				require.NotContains(t, lower, "<script")
				require.NotContains(t, lower, `href="javascript`)

				RenderText(tree)
			}
		}
	})
}
