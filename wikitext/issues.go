package wikitext

// Issue defines types of problems we might encounter during the tokenizing or the parsing processes.
type Issue int

const (
	// IssueNone is the zero value carried by well-formed tokens.
	IssueNone Issue = iota

	// IssueUnclosedTag means that a tag was opened but its closing tag was never found,
	// or an outer tag was closed first.
	IssueUnclosedTag

	// IssueMisplacedClosingTag means that a closing tag has no opening counterpart.
	// The closing tag is kept as plain text.
	IssueMisplacedClosingTag

	// IssueUnterminatedDirective occurs when "[module:" or "[if:" has no closing ']'
	// on the same line.
	IssueUnterminatedDirective

	// IssueEmptyDirectiveName occurs for "[module:]", "[module:|x=1]" or "[if:]".
	IssueEmptyDirectiveName

	// IssueMalformedModuleOption occurs when a module option segment has no name,
	// e.g. "[module:x|=5]" or "[module:x||a]".
	IssueMalformedModuleOption

	// IssueNestingTooDeep occurs when an opening tag would exceed the parser's maximum depth.
	IssueNestingTooDeep

	// IssueWarningsTruncated occurs when there are too many Warnings recorded.
	IssueWarningsTruncated

	// IssueInvalidDialect is a configuration problem: the dialect kind is unknown, or
	// the wiki dialect was given forum flags.
	IssueInvalidDialect

	// IssueNegativeWarningsCap reports an invalid (negative) warnings capacity.
	IssueNegativeWarningsCap

	// IssueNegativeLimit occurs during configuration when a parser limit is negative.
	IssueNegativeLimit

	// IssueInvalidRecoveryMode occurs during configuration when the recovery mode is unknown.
	IssueInvalidRecoveryMode

	// NumIssues is the total number of Issues. Should be placed as last const.
	NumIssues
)

var issueNames = [NumIssues]string{
	IssueNone:                  "None",
	IssueUnclosedTag:           "Unclosed Tag",
	IssueMisplacedClosingTag:   "Misplaced Closing Tag",
	IssueUnterminatedDirective: "Unterminated Directive",
	IssueEmptyDirectiveName:    "Empty Directive Name",
	IssueMalformedModuleOption: "Malformed Module Option",
	IssueNestingTooDeep:        "Nesting Too Deep",
	IssueWarningsTruncated:     "Warnings Truncated",
	IssueInvalidDialect:        "Invalid Dialect",
	IssueNegativeWarningsCap:   "Negative Warnings Cap",
	IssueNegativeLimit:         "Negative Limit",
	IssueInvalidRecoveryMode:   "Invalid Recovery Mode",
}

// String returns the human-readable name of the Issue.
func (i Issue) String() string {
	if i < 0 || i >= NumIssues {
		return "Unknown Issue"
	}
	return issueNames[i]
}
