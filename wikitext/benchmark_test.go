package wikitext

import (
	"strings"
	"testing"
)

const benchWiki = "!!! Title\nHello [Page|link] with 100S and [module:x|a=1]\n" +
	"[if:UserIsLoggedIn]Secret[endif] [[escaped\n----\n"

const benchForum = "[quote=Bob][b]bold[/b] and [i]italic[/i][/quote]\n" +
	"[list][*]one[*]two[/list] [url=https://x.org]x[/url] <b>raw</b>\n"

var benchResolver = ModuleResolverFunc(func(name, options string) (string, error) {
	return "<div></div>", nil
})

func BenchmarkTokenize(b *testing.B) {
	input := strings.Repeat(benchWiki, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tokenize(input, Wiki())
	}
}

func BenchmarkParse(b *testing.B) {
	p, err := NewParser(Wiki())
	if err != nil {
		b.Fatal(err)
	}
	input := strings.Repeat(benchWiki, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(input)
	}
}

func BenchmarkParseForAllErrors(b *testing.B) {
	p, err := NewParser(Wiki())
	if err != nil {
		b.Fatal(err)
	}
	input := strings.Repeat(benchWiki, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.ParseForAllErrors(input)
	}
}

func BenchmarkRenderHTML_Forum(b *testing.B) {
	p, err := NewParser(Forum(true, true))
	if err != nil {
		b.Fatal(err)
	}
	tree := p.Parse(strings.Repeat(benchForum, 20))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RenderHTML(tree, benchResolver, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderText(b *testing.B) {
	p, err := NewParser(Wiki())
	if err != nil {
		b.Fatal(err)
	}
	tree := p.Parse(strings.Repeat(benchWiki, 20))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RenderText(tree)
	}
}

func BenchmarkParse_UnclosedTags(b *testing.B) {
	p, err := NewParser(Forum(true, false))
	if err != nil {
		b.Fatal(err)
	}
	input := strings.Repeat("[b][i]", 2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(input)
	}
}
