package modules

import (
	"context"
	"errors"
	"testing"

	mockdb "github.com/TASVideos/wikimark/db/mock"
	"github.com/TASVideos/wikimark/wikitext"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func renderWiki(t *testing.T, r *Registry, env Env, source string) (string, error) {
	t.Helper()

	tree, err := wikitext.Parse(source, wikitext.Wiki())
	require.NoError(t, err)

	return wikitext.RenderHTML(tree, r.Resolver(context.Background(), env), nil)
}

func TestRegistry_Names(t *testing.T) {
	require.Equal(t, []string{NameBrokenMarkup, NameListSubpages}, Default().Names())
}

func TestRegistry_Resolver(t *testing.T) {
	var gotOpts []wikitext.ModuleOptions

	r := NewRegistry()
	r.Register("Echo", func(ctx context.Context, env Env, opts wikitext.ModuleOptions) (string, error) {
		gotOpts = append(gotOpts, opts)
		return "<b>" + env.PageName + "</b>", nil
	})

	out, err := renderWiki(t, r, Env{PageName: "Main"}, "[module:echo|a=1][module:ECHO|Flag]")
	require.NoError(t, err)
	require.Equal(t, "<b>Main</b><b>Main</b>", out)

	require.Equal(t, []wikitext.ModuleOptions{{"a": "1"}, {"flag": ""}}, gotOpts)
}

func TestRegistry_ResolverReusesOutput(t *testing.T) {
	calls := 0

	r := NewRegistry()
	r.Register("count", func(ctx context.Context, env Env, opts wikitext.ModuleOptions) (string, error) {
		calls++
		return "<i>" + opts.String("n", "") + "</i>", nil
	})

	out, err := renderWiki(t, r, Env{}, "[module:count|n=1][module:COUNT|n=1][module:count|n=2]")
	require.NoError(t, err)
	require.Equal(t, "<i>1</i><i>1</i><i>2</i>", out)
	require.Equal(t, 2, calls)
}

func TestRegistry_UnknownModule(t *testing.T) {
	out, err := renderWiki(t, NewRegistry(), Env{}, "[module:<nope>]")
	require.NoError(t, err)
	require.Equal(t, `<div class="module-error">Unknown module: &lt;nope&gt;</div>`, out)
}

func TestRegistry_ModuleError(t *testing.T) {
	errBoom := errors.New("boom")

	r := NewRegistry()
	r.Register("fail", func(ctx context.Context, env Env, opts wikitext.ModuleOptions) (string, error) {
		return "", errBoom
	})

	_, err := renderWiki(t, r, Env{}, "a [module:fail] b")
	require.ErrorIs(t, err, errBoom)
}

func TestListSubpages(t *testing.T) {
	testCases := []struct {
		name       string
		source     string
		pageName   string
		buildStubs func(store *mockdb.MockStore)
		check      func(t *testing.T, out string, err error)
	}{
		{
			name:     "CurrentPage",
			source:   "[module:listsubpages]",
			pageName: "Games",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListSubpages(gomock.Any(), "Games").
					Times(1).
					Return([]string{"Games/NES", "Games/Super Mario"}, nil)
			},
			check: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				require.Equal(t, `<ul class="subpages">`+
					`<li><a href="/Games/NES">Games/NES</a></li>`+
					`<li><a href="/Games/Super%20Mario">Games/Super Mario</a></li>`+
					`</ul>`, out)
			},
		},
		{
			name:     "PageOption",
			source:   "[module:listsubpages|page=Articles]",
			pageName: "Games",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListSubpages(gomock.Any(), "Articles").
					Times(1).
					Return(nil, nil)
			},
			check: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				require.Equal(t, `<ul class="subpages"></ul>`, out)
			},
		},
		{
			name:   "NoPage",
			source: "[module:listsubpages]",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListSubpages(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				require.Contains(t, out, `class="module-error"`)
			},
		},
		{
			name:     "StoreError",
			source:   "[module:listsubpages]",
			pageName: "Games",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListSubpages(gomock.Any(), "Games").
					Times(1).
					Return(nil, errors.New("connection reset"))
			},
			check: func(t *testing.T, out string, err error) {
				require.Error(t, err)
				require.Empty(t, out)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mockdb.NewMockStore(ctrl)

			tc.buildStubs(store)

			out, err := renderWiki(t, Default(), Env{Store: store, PageName: tc.pageName}, tc.source)
			tc.check(t, out, err)
		})
	}
}
