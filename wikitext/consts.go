package wikitext

// Element names produced by the parser.
const (
	NameDocument    = "document"
	NameSeparator   = "hr"
	NameConditional = "if"
	NameModule      = "module"
	NameLink        = "link"
	NameSubmission  = "submission"
	NamePublication = "publication"
	NameGame        = "game"
	NameHTML        = "html"
	NameListItem    = "*"

	// ModulePrefix starts the name of every module element, e.g. "module:listsubpages".
	ModulePrefix = NameModule + ":"
)

// headerNames maps the number of leading bangs to the header element name.
var headerNames = [...]string{1: "h5", 2: "h4", 3: "h3", 4: "h2"}

// MaxHeaderBangs is the largest count of leading bangs which still makes a header.
const MaxHeaderBangs = 4

// MinSeparatorDashes is the smallest count of dashes forming a separator line.
const MinSeparatorDashes = 4

// contentRefNames maps the suffix of a numbered content reference to the element name.
var contentRefNames = [256]string{
	'S': NameSubmission,
	'M': NamePublication,
	'G': NameGame,
}

// contentRefSuffix is the reverse of contentRefNames.
var contentRefSuffix = map[string]string{
	NameSubmission:  "S",
	NamePublication: "M",
	NameGame:        "G",
}

// bbcodeTags is the forum vocabulary. Lookup is case-insensitive, the value is the
// canonical element name.
var bbcodeTags = map[string]string{
	"b":       "b",
	"i":       "i",
	"u":       "u",
	"s":       "s",
	"sub":     "sub",
	"sup":     "sup",
	"quote":   "quote",
	"code":    "code",
	"noparse": "noparse",
	"url":     "url",
	"img":     "img",
	"color":   "color",
	"size":    "size",
	"list":    "list",
	"*":       NameListItem,
	"spoiler": "spoiler",
}

// verbatimTags take their body as-is up to the matching closing tag.
var verbatimTags = map[string]bool{
	"code":    true,
	"noparse": true,
}

const (
	// DefaultMaxDepth is the default maximum count of simultaneously open tags,
	// zero means no limit.
	DefaultMaxDepth = 0

	// DefaultMaxWarnings is the default capacity of the warnings list.
	DefaultMaxWarnings = 100

	// DefaultExcerptRadius is the count of runes shown on each side of a problem.
	DefaultExcerptRadius = 20
)

// bytesPerToken is the estimated ratio of the input length to the count of Tokens.
// It is used to estimate the initial capacity of the Tokens slice.
const bytesPerToken = 8
