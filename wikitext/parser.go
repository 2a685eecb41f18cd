package wikitext

import (
	"fmt"
	"slices"
)

// RecoveryMode defines what happens to the tags which are still open at the end of the input.
type RecoveryMode int

const (
	// RecoverForceClose closes the tag at the end of the input, keeping the element with
	// the children collected so far.
	RecoverForceClose RecoveryMode = iota

	// RecoverLiteral replaces the element by its raw opening text followed by its children,
	// as if the opening tag was never recognized.
	RecoverLiteral
)

// Option configures a [Parser].
type Option func(*Parser)

// WithRecovery sets the recovery mode for unclosed tags.
func WithRecovery(mode RecoveryMode) Option {
	return func(p *Parser) {
		p.recovery = mode
	}
}

// WithMaxDepth sets the maximum count of simultaneously open tags. Deeper opening tags
// are kept as plain text with [IssueNestingTooDeep]. Zero disables the limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithWarningsPolicy sets the overflow policy and the capacity of the Warnings list.
func WithWarningsPolicy(policy WarningOverflowPolicy, cap int) Option {
	return func(p *Parser) {
		p.warnPolicy = policy
		p.maxWarnings = cap
	}
}

// Parser turns the source into an [AST]. It's immutable and safe for concurrent use.
type Parser struct {
	dialect     Dialect
	recovery    RecoveryMode
	maxDepth    int
	warnPolicy  WarningOverflowPolicy
	maxWarnings int
}

// NewParser creates a Parser for the dialect. It returns a [ConfigError] if the dialect
// or any of the options is invalid.
func NewParser(dialect Dialect, opts ...Option) (*Parser, error) {
	if err := dialect.Validate(); err != nil {
		return nil, err
	}

	p := &Parser{
		dialect:     dialect,
		recovery:    RecoverForceClose,
		maxDepth:    DefaultMaxDepth,
		warnPolicy:  WarnOverflowTrunc,
		maxWarnings: DefaultMaxWarnings,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.maxDepth < 0 {
		return nil, NewConfigError(
			IssueNegativeLimit,
			fmt.Errorf("max depth must be >= 0, got %d", p.maxDepth),
		)
	}

	if p.recovery != RecoverForceClose && p.recovery != RecoverLiteral {
		return nil, NewConfigError(
			IssueInvalidRecoveryMode,
			fmt.Errorf("unknown recovery mode %d", p.recovery),
		)
	}

	// validating the capacity the same way the collector does
	if _, err := NewWarnings(p.warnPolicy, p.maxWarnings); err != nil {
		return nil, err
	}

	return p, nil
}

// Dialect returns the dialect of the Parser.
func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// Parse builds the AST of the source. It never fails: every syntax problem is recorded
// in [AST.Warnings], sorted by position, and the malformed fragment is kept as text.
func (p *Parser) Parse(source string) *AST {
	return p.run(source, true)
}

// ParseForAllErrors returns every syntax problem of the source without building the tree.
// The positions are identical to the ones [Parser.Parse] records.
func (p *Parser) ParseForAllErrors(source string) []Warning {
	return p.run(source, false).Warnings
}

// ParseForErrors returns the syntax problem with the smallest position. The bool is false
// if the source is clean. The cap on the Warnings does not affect the result.
func (p *Parser) ParseForErrors(source string) (Warning, bool) {
	_, warns := p.exec(source, false)
	return warns.Earliest()
}

func (p *Parser) run(source string, build bool) *AST {
	tree, _ := p.exec(source, build)
	return tree
}

// exec parses the source and returns the collector along with the tree.
func (p *Parser) exec(source string, build bool) (*AST, *Warnings) {
	// the capacity was validated by NewParser
	warns, _ := NewWarnings(p.warnPolicy, p.maxWarnings)

	state := newParserState(p, source, build, &warns)

	for _, tok := range Tokenize(source, p.dialect) {
		switch tok.Type {
		case TokenText:
			processText(state, tok)

		case TokenOpenTag:
			processOpeningTag(state, tok)

		case TokenCloseTag:
			processClosingTag(state, tok)

		case TokenDirective:
			processDirective(state, tok)
		}
	}

	closeAll(state)

	tree := state.tree
	tree.Warnings = warns.List()
	slices.SortStableFunc(tree.Warnings, func(a, b Warning) int {
		return a.Pos - b.Pos
	})

	return tree, &warns
}

// Parse builds the AST of the source with the default options.
// The error is a [ConfigError] for an invalid dialect.
func Parse(source string, dialect Dialect) (*AST, error) {
	p, err := NewParser(dialect)
	if err != nil {
		return nil, err
	}
	return p.Parse(source), nil
}

// ParseForErrors is the shortcut for [Parser.ParseForErrors] with the default options.
// No Warnings are kept besides the earliest one.
func ParseForErrors(source string, dialect Dialect) (Warning, bool, error) {
	p, err := NewParser(dialect, WithWarningsPolicy(WarnOverflowNoRec, 0))
	if err != nil {
		return Warning{}, false, err
	}
	w, ok := p.ParseForErrors(source)
	return w, ok, nil
}

// ParseForAllErrors is the shortcut for [Parser.ParseForAllErrors] without a cap on
// the count of Warnings.
func ParseForAllErrors(source string, dialect Dialect) ([]Warning, error) {
	p, err := NewParser(dialect, WithWarningsPolicy(WarnOverflowNoCap, 0))
	if err != nil {
		return nil, err
	}
	return p.ParseForAllErrors(source), nil
}
