// Package spec recovers campaign specifications from model output and checks
// them before they reach the advertising platform.
package spec

import (
	"cmp"
	"encoding/json"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/gjson"

	"adpilot/internal/core/domain"
)

// Strategy is one way of locating a specification inside free text.
// Implementations must be pure and must not panic on any input.
//
// Extract returns (nil, nil) when nothing spec-shaped is present. A candidate
// with a "campaign" object that does not fit the schema is reported as a
// *domain.ValidationError with rule RuleSchema.
type Strategy interface {
	Name() string
	Extract(raw string) (*domain.CampaignSpec, error)
}

// Extractor runs strategies in order and returns the first hit.
type Extractor struct {
	strategies []Strategy
}

// NewExtractor returns an extractor over the given strategies. Without
// arguments the default chain (fenced block, then balanced object) is used.
func NewExtractor(strategies ...Strategy) *Extractor {
	if len(strategies) == 0 {
		strategies = []Strategy{FencedBlock{}, BalancedObject{}}
	}
	return &Extractor{strategies: strategies}
}

// Extract returns the first specification any strategy finds. A miss is a
// normal outcome: the model may have answered in prose only, so (nil, nil)
// is returned. When the only candidates found are malformed, the first
// schema error is returned instead.
func (e *Extractor) Extract(raw string) (*domain.CampaignSpec, error) {
	var malformed error
	for _, s := range e.strategies {
		spec, err := s.Extract(raw)
		if spec != nil {
			return spec, nil
		}
		if err != nil && malformed == nil {
			malformed = err
		}
	}
	return nil, malformed
}

var fencePattern = regexp.MustCompile("(?is)```[ \\t]*json[ \\t]*\\r?\\n?(.*?)```")

// FencedBlock looks for ```json fenced code blocks.
type FencedBlock struct{}

func (FencedBlock) Name() string { return "fenced_block" }

func (FencedBlock) Extract(raw string) (*domain.CampaignSpec, error) {
	var malformed error
	for _, m := range fencePattern.FindAllStringSubmatch(raw, -1) {
		spec, err := decode(strings.TrimSpace(m[1]))
		if spec != nil {
			return spec, nil
		}
		if err != nil && malformed == nil {
			malformed = err
		}
	}
	return nil, malformed
}

// maxCandidates bounds how many balanced objects are decoded per input.
const maxCandidates = 64

// BalancedObject scans for the first brace-balanced JSON object that has a
// top-level "campaign" object. Braces inside string literals are ignored.
type BalancedObject struct{}

func (BalancedObject) Name() string { return "balanced_object" }

func (BalancedObject) Extract(raw string) (*domain.CampaignSpec, error) {
	var malformed error
	tried := 0
	for _, sp := range balancedSpans(raw) {
		if tried == maxCandidates {
			break
		}
		candidate := raw[sp.start : sp.end+1]
		if !opensWithKey(candidate) {
			continue
		}
		tried++
		spec, err := decode(candidate)
		if spec != nil {
			return spec, nil
		}
		if err != nil && malformed == nil {
			malformed = err
		}
	}
	return nil, malformed
}

type span struct {
	start, end int
}

// balancedSpans finds every brace-balanced region of s in a single pass and
// returns them ordered by opening offset, so outer objects come before the
// objects nested in them. String state is only tracked inside an open brace;
// quotes in the surrounding prose are ignored.
func balancedSpans(s string) []span {
	var (
		open     []int
		spans    []span
		inString bool
		escaped  bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = len(open) > 0
		case '{':
			open = append(open, i)
		case '}':
			if n := len(open); n > 0 {
				spans = append(spans, span{start: open[n-1], end: i})
				open = open[:n-1]
			}
		}
	}
	slices.SortFunc(spans, func(a, b span) int { return cmp.Compare(a.start, b.start) })
	return spans
}

// opensWithKey reports whether the object candidate begins with a string key.
func opensWithKey(candidate string) bool {
	rest := strings.TrimLeft(candidate[1:], " \t\r\n")
	return rest != "" && rest[0] == '"'
}

// decode accepts candidate only if it is a JSON object whose "campaign" key
// holds an object and the whole value fits the specification schema. A
// spec-shaped candidate that fails the typed decode yields a schema
// rejection rather than a miss.
func decode(candidate string) (*domain.CampaignSpec, error) {
	if candidate == "" || !gjson.Valid(candidate) {
		return nil, nil
	}
	root := gjson.Parse(candidate)
	if !root.IsObject() || !root.Get("campaign").IsObject() {
		return nil, nil
	}
	var spec domain.CampaignSpec
	if err := json.Unmarshal([]byte(candidate), &spec); err != nil {
		return nil, reject(RuleSchema, err.Error())
	}
	if spec.Campaign == nil {
		return nil, nil
	}
	return &spec, nil
}
