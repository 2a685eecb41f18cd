// Package wikitext turns wiki pages and forum posts into HTML and plain text.
//
// The source goes through three stages: [Tokenize] splits it into [Token] values
// which are spans into the source, the [Parser] builds an [AST] of [Element] and
// [Text] nodes, and the renderers ([RenderHTML], [RenderText]) walk the tree.
//
// # Dialects
//
// There are two grammars sharing the same node types.
//
// The wiki dialect knows:
//
//	!!! Header              one to four bangs at the start of a line, h5..h2
//	----                    a separator line
//	[module:name|k=v|flag]  a module call, resolved by the host at render time
//	[if:Flag]...[endif]     a conditional block
//	[Target] [Target|text]  internal or external links
//	[[                      a literal '['
//	100S 100M 100G          submission, publication and game references
//
// The forum dialect knows BBCode tags ([b], [quote=Name], [url=...], [code], ...)
// when BBCode is enabled for the post, and passes an allow-listed subset of raw
// HTML through when HTML is enabled. Everything else is literal text.
//
// # Notes and Policies
//
//  1. Parsing never fails because of the input. Malformed constructs become literal
//     text and a [Warning] with the byte offset of the problem is recorded.
//  2. A closing tag without an opening counterpart is kept as literal text.
//  3. A closing tag matching an outer open tag closes every tag opened after it.
//     Each of those gets its own [IssueUnclosedTag] warning.
//  4. Tags left open at the end of the input are handled according to the [RecoveryMode].
//  5. Element options are stored verbatim. Module options are parsed by the module
//     itself, see [ParseModuleOptions].
//  6. Trees are built per call and never modified after [Parser.Parse] returns, so
//     any number of parses and renders may run concurrently.
package wikitext
