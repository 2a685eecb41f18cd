package wikitext

// frame is a pending Element which is still open. It owns the children collected so far.
type frame struct {
	name    string
	options string

	// open is the opening Token of the frame, the root frame has a zero one.
	open Token

	children []Node
	run      textRun
}

type parserState struct {
	src   string
	build bool

	recovery RecoveryMode
	maxDepth int

	warns *Warnings
	tree  *AST

	// frames is the stack of open constructs, frames[0] is the document.
	frames []frame

	// skip counts closing tags per name which belong to opening tags kept as plain text.
	skip map[string]int

	// opened holds the indexes in frames of the open frames per name, innermost last.
	opened map[string][]int
}

func newParserState(p *Parser, src string, build bool, warns *Warnings) *parserState {
	return &parserState{
		src:      src,
		build:    build,
		recovery: p.recovery,
		maxDepth: p.maxDepth,
		warns:    warns,
		tree: &AST{
			Source:  src,
			Dialect: p.dialect,
		},
		// root frame should always be present
		frames: []frame{{name: NameDocument}},
		opened: make(map[string][]int),
	}
}

func (s *parserState) top() *frame {
	return &s.frames[len(s.frames)-1]
}

// depth is the count of open frames, excluding the document.
func (s *parserState) depth() int {
	return len(s.frames) - 1
}

func (s *parserState) push(name, options string, open Token) {
	s.frames = append(s.frames, frame{
		name:    name,
		options: options,
		open:    open,
	})
	s.opened[name] = append(s.opened[name], len(s.frames)-1)

	s.tree.MaxDepth = max(s.tree.MaxDepth, s.depth())
}

// pop closes the top frame at end and attaches its Element to the parent.
func (s *parserState) pop(end int) {
	f := s.top()
	s.flushText(f)

	var elem *Element
	if s.build {
		elem = &Element{
			Name:     f.name,
			Options:  f.options,
			Children: f.children,
			Span:     Span{f.open.Pos, end},
		}
	}

	s.drop()
	s.attach(f.name, elem)
}

// drop removes the top frame from the stack without attaching anything.
func (s *parserState) drop() {
	name := s.top().name
	idx := s.opened[name]
	s.opened[name] = idx[:len(idx)-1]
	s.frames = s.frames[:len(s.frames)-1]
}

// innermost returns the index of the innermost open frame with the name, or -1.
func (s *parserState) innermost(name string) int {
	if idx := s.opened[name]; len(idx) > 0 {
		return idx[len(idx)-1]
	}
	return -1
}

// attach appends the Element to the children of the top frame and updates the counters.
// The Element is nil when the tree is not built.
func (s *parserState) attach(name string, elem *Element) {
	switch {
	case name == NameConditional:
		s.tree.Conditionals++
	case len(name) > len(ModulePrefix) && name[:len(ModulePrefix)] == ModulePrefix:
		s.tree.Modules++
	}

	if !s.build {
		return
	}

	f := s.top()
	s.flushText(f)
	f.children = append(f.children, elem)
}

// addText appends the source text at payload to the top frame, bounds is the part of the
// source the text was built from.
func (s *parserState) addText(payload, bounds Span) {
	if !s.build || payload.Width() == 0 {
		return
	}
	s.top().run.appendSlice(s.src, payload, bounds)
}

// flushText moves the pending text run of the frame into its children.
func (s *parserState) flushText(f *frame) {
	if t := f.run.flush(s.src); t != nil {
		f.children = append(f.children, t)
	}
}

func (s *parserState) warn(issue Issue, pos int, desc string) {
	s.warns.Add(Warning{
		Issue:       issue,
		Pos:         pos,
		Description: desc,
	})
}

// textRun coalesces adjacent text. While the pieces are contiguous in the source the
// content is a slice of it, otherwise the pieces are copied into buf.
type textRun struct {
	active bool
	bounds Span
	slice  Span
	buf    []byte
}

func (r *textRun) appendSlice(src string, payload, bounds Span) {
	if !r.active {
		r.active = true
		r.bounds = bounds
		r.slice = payload
		r.buf = nil
		return
	}

	r.bounds.End = max(r.bounds.End, bounds.End)

	if r.buf == nil && payload.Start == r.slice.End {
		r.slice.End = payload.End
		return
	}

	r.appendBytes(src, payload.Of(src))
}

func (r *textRun) appendString(src, content string, bounds Span) {
	if !r.active {
		r.active = true
		r.bounds = bounds
		r.buf = append([]byte(nil), content...)
		return
	}

	r.bounds.End = max(r.bounds.End, bounds.End)
	r.appendBytes(src, content)
}

func (r *textRun) appendBytes(src, content string) {
	if r.buf == nil {
		r.buf = make([]byte, 0, r.slice.Width()+len(content))
		r.buf = append(r.buf, r.slice.Of(src)...)
	}
	r.buf = append(r.buf, content...)
}

// flush returns the collected Text and resets the run. It returns nil if nothing is pending.
func (r *textRun) flush(src string) *Text {
	if !r.active {
		return nil
	}

	t := &Text{Span: r.bounds}
	if r.buf != nil {
		t.Content = string(r.buf)
	} else {
		t.Content = r.slice.Of(src)
	}

	*r = textRun{}
	return t
}
