package stylesheet

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/wycats/language-reporting/pkg/logging"
)

// tracingEnabled reports whether the lookup trace channel is active. The
// global level defaults to warn, so tracing stays silent unless the
// consumer raises verbosity.
func tracingEnabled() bool {
	return zerolog.GlobalLevel() <= zerolog.TraceLevel
}

// node represents a selector segment, child segments, and an optional style
// stored when a selector terminated exactly at this node.
type node struct {
	segment  Segment
	children map[Segment]*node
	style    *Style
}

func newNode(segment Segment) *node {
	return &node{
		segment:  segment,
		children: make(map[Segment]*node),
	}
}

// terminal returns the terminal node relative to this node. If this node
// has no children, it is the terminal node. Otherwise, if it has a glob
// child, that child is the terminal node. Otherwise there is none.
func (n *node) terminal() *node {
	if glob, ok := n.children[Glob()]; ok {
		return glob
	}
	if len(n.children) == 0 {
		return n
	}
	return nil
}

// add walks or creates nodes for the segment path and stores the style at
// the terminal node, overwriting any previous style at that exact path.
func (n *node) add(segments []Segment, style Style) {
	if len(segments) == 0 {
		n.style = &style
		return
	}

	child, ok := n.children[segments[0]]
	if !ok {
		child = newNode(segments[0])
		n.children[segments[0]] = child
	}
	child.add(segments[1:], style)
}

// match holds the up-to-four candidate child traversals for one path
// segment, in ascending precedence order: glob, star, skippedGlob, literal.
type match struct {
	// glob is either this node itself (when this node is a glob, which
	// absorbs the segment) or this node's glob child (entered without
	// consuming, so the glob may still absorb zero segments).
	glob *node
	// globAdvances is true in the self-match case
	globAdvances bool
	star         *node
	skippedGlob  *node
	literal      *node
}

// findMatch finds the candidate traversals in this node for a section name.
//
//   - A glob node always matches itself, absorbing the name.
//   - A node with a glob child matches through that child without
//     consuming the name. These two cases cannot coincide, since a glob
//     cannot immediately follow a glob.
//   - A glob child with a literal child matching the name is the
//     skipped-glob match: the glob matched some prefix, then a literal
//     resumes.
//   - A star child matches, consuming exactly the one name.
func (n *node) findMatch(name string) match {
	m := match{
		star:    n.children[Star()],
		literal: n.children[Name(name)],
	}

	if n.segment.IsGlob() {
		m.glob = n
		m.globAdvances = true
	} else if glob, ok := n.children[Glob()]; ok {
		m.glob = glob
		m.skippedGlob = glob.children[Name(name)]
	}

	return m
}

// find resolves the style for a section path below this node. The result
// merges every matching branch per attribute, literal beating skipped-glob
// beating star beating glob, while attributes a higher-precedence rule
// leaves unset fall through to lower-precedence rules.
func (n *node) find(names []string, depth int) *Style {
	if tracingEnabled() {
		logger := logging.GetLogger("stylesheet")
		logger.Trace().
			Int("depth", depth).
			Stringer("node", n.segment).
			Str("names", strings.Join(names, " ")).
			Msg("finding")
	}

	if len(names) == 0 {
		terminal := n.terminal()
		if terminal == nil {
			return nil
		}
		return terminal.style
	}

	m := n.findMatch(names[0])

	var style *Style

	if m.glob != nil {
		if m.globAdvances {
			style = Union(style, m.glob.find(names[1:], depth+1))
		} else {
			style = Union(style, m.glob.find(names, depth+1))
		}
		traceMatch(depth, "glob", style)
	}

	if m.star != nil {
		style = Union(style, m.star.find(names[1:], depth+1))
		traceMatch(depth, "star", style)
	}

	if m.skippedGlob != nil {
		style = Union(style, m.skippedGlob.find(names[1:], depth+1))
		traceMatch(depth, "skipped_glob", style)
	}

	if m.literal != nil {
		style = Union(style, m.literal.find(names[1:], depth+1))
		traceMatch(depth, "literal", style)
	}

	return style
}

func traceMatch(depth int, kind string, style *Style) {
	if !tracingEnabled() {
		return
	}
	logger := logging.GetLogger("stylesheet")
	event := logger.Trace().Int("depth", depth).Str("match", kind)
	if style != nil {
		event = event.Stringer("style", style)
	}
	event.Msg("matched")
}

// SelectorSpec is satisfied by both Selector and GlobSelector, so a
// trailing-glob selector can be added without converting it.
type SelectorSpec interface {
	Segments() []Segment
}

// Stylesheet maps selector paths to styles. It is built once with Add and
// immutable afterwards; concurrent lookups are safe.
type Stylesheet struct {
	root *node
}

// New constructs an empty stylesheet
func New() *Stylesheet {
	return &Stylesheet{root: newNode(Root())}
}

// Add parses a selector string and a style declaration string and inserts
// the pair, returning the stylesheet for chaining. Both strings are
// developer-authored literals; malformed declarations panic.
func (s *Stylesheet) Add(selector string, declarations string) *Stylesheet {
	return s.AddStyle(ParseSelector(selector), MustStyle(declarations))
}

// AddStyle inserts a typed (selector, style) pair. Adding a second style
// for an identical selector replaces the first outright.
func (s *Stylesheet) AddStyle(selector SelectorSpec, style Style) *Stylesheet {
	s.root.add(selector.Segments(), style)
	return s
}

// Get resolves the merged style for a section path, or nil when no
// selector covers the path.
func (s *Stylesheet) Get(names []string) *Style {
	if !tracingEnabled() {
		return s.root.find(names, 0)
	}

	logger := logging.GetLogger("stylesheet")
	logger.Trace().Str("path", strings.Join(names, " ")).Msg("searching")

	style := s.root.find(names, 0)

	if style == nil {
		logger.Trace().Msg("no style found")
	} else {
		logger.Trace().Stringer("style", style).Msg("found")
	}

	return style
}
