package stylesheet

import "strings"

type segmentKind int

const (
	segmentRoot segmentKind = iota
	segmentStar
	segmentGlob
	segmentName
)

// Segment is one atomic unit of a selector path:
//
//   - Root: the trie root, never matched by user selectors
//   - Star: `*`, matches exactly one section name
//   - Glob: `**`, matches zero or more section names
//   - Name: matches a section name exactly
//
// Segments are comparable and usable as map keys.
type Segment struct {
	kind segmentKind
	name string
}

// Root returns the sentinel root segment
func Root() Segment { return Segment{kind: segmentRoot} }

// Star returns the single-segment wildcard
func Star() Segment { return Segment{kind: segmentStar} }

// Glob returns the multi-segment wildcard
func Glob() Segment { return Segment{kind: segmentGlob} }

// Name returns a literal segment matching the given section name
func Name(name string) Segment { return Segment{kind: segmentName, name: name} }

// IsGlob reports whether the segment is the multi-segment wildcard
func (s Segment) IsGlob() bool { return s.kind == segmentGlob }

func (s Segment) String() string {
	switch s.kind {
	case segmentRoot:
		return "ε"
	case segmentStar:
		return "*"
	case segmentGlob:
		return "**"
	default:
		return s.name
	}
}

// appendSegment copies before appending so selectors branched from a
// shared prefix never alias each other's backing array.
func appendSegment(segments []Segment, seg Segment) []Segment {
	out := make([]Segment, len(segments), len(segments)+1)
	copy(out, segments)
	return append(out, seg)
}

func parseSegment(token string) Segment {
	switch token {
	case "**":
		return Glob()
	case "*":
		return Star()
	default:
		return Name(token)
	}
}

// Selector is an ordered sequence of segments describing the nesting paths
// a style rule applies to.
type Selector struct {
	segments []Segment
}

// NewSelector returns an empty selector to extend with the builder methods
func NewSelector() Selector {
	return Selector{}
}

// ParseSelector parses a space-delimited selector string. `**` is a glob,
// `*` a star, and anything else a literal name.
func ParseSelector(input string) Selector {
	var segments []Segment
	for _, token := range strings.Split(input, " ") {
		if token == "" {
			continue
		}
		segments = append(segments, parseSegment(token))
	}
	return Selector{segments: segments}
}

// Name appends a literal segment
func (s Selector) Name(name string) Selector {
	return Selector{segments: appendSegment(s.segments, Name(name))}
}

// Star appends a single-segment wildcard
func (s Selector) Star() Selector {
	return Selector{segments: appendSegment(s.segments, Star())}
}

// Glob appends a multi-segment wildcard. The result is a GlobSelector,
// which statically prevents appending another glob immediately after.
func (s Selector) Glob() GlobSelector {
	return GlobSelector{segments: appendSegment(s.segments, Glob())}
}

// Segments returns the selector's segments in order
func (s Selector) Segments() []Segment {
	return s.segments
}

func (s Selector) String() string {
	parts := make([]string, len(s.segments))
	for i, seg := range s.segments {
		parts[i] = seg.String()
	}
	return strings.Join(parts, " ")
}

// GlobSelector is a selector whose last segment is a glob. It shares the
// Name and Star methods with Selector but has no Glob method, making an
// adjacent-glob selector unrepresentable.
type GlobSelector struct {
	segments []Segment
}

// Name appends a literal segment after the glob
func (s GlobSelector) Name(name string) Selector {
	return Selector{segments: appendSegment(s.segments, Name(name))}
}

// Star appends a single-segment wildcard after the glob
func (s GlobSelector) Star() Selector {
	return Selector{segments: appendSegment(s.segments, Star())}
}

// Segments returns the selector's segments in order
func (s GlobSelector) Segments() []Segment {
	return s.segments
}

func (s GlobSelector) String() string {
	return Selector{segments: s.segments}.String()
}
