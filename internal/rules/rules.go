// Package rules decides what goes into each scaffolded file. A Table is an
// ordered list of rules evaluated top-down; the first rule whose matcher
// accepts a path produces its content. Every table ends in a catch-all, so
// selection is total.
package rules

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var (
	// ErrNoCatchAll is returned when the last rule of a table has a matcher.
	ErrNoCatchAll = errors.New("rule table must end with a catch-all rule")
	// ErrUnreachableRule is returned when a catch-all is followed by more rules.
	ErrUnreachableRule = errors.New("rule after catch-all is unreachable")
	// ErrNoProducer is returned for a rule without a content producer.
	ErrNoProducer = errors.New("rule has no producer")
)

// Kind tells the writer how to treat Content.Data.
type Kind int

const (
	KindText Kind = iota
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Content is what gets written to one path.
type Content struct {
	Kind Kind
	Data []byte
}

// Text wraps a UTF-8 string.
func Text(s string) Content { return Content{Kind: KindText, Data: []byte(s)} }

// Binary wraps raw bytes. A nil slice is a zero-length file.
func Binary(b []byte) Content { return Content{Kind: KindBinary, Data: b} }

// Target is a declared path broken into the parts rules match on.
type Target struct {
	Path string // slash-separated, relative to the scaffold root
	Base string // file name, e.g. "App.jsx"
	Stem string // file name without extension, e.g. "App"
	Ext  string // lower-cased extension without the dot, e.g. "jsx"
}

// NewTarget splits a slash-separated relative path.
func NewTarget(p string) Target {
	base := path.Base(p)
	ext := path.Ext(base)
	return Target{
		Path: p,
		Base: base,
		Stem: strings.TrimSuffix(base, ext),
		Ext:  strings.ToLower(strings.TrimPrefix(ext, ".")),
	}
}

// Matcher reports whether a rule applies to a target.
type Matcher func(Target) bool

// Producer builds the content for a target.
type Producer func(Target) (Content, error)

// Rule pairs a matcher with a producer. A nil Match makes it a catch-all.
type Rule struct {
	Name    string
	Match   Matcher
	Produce Producer
}

// CatchAll reports whether the rule accepts every target.
func (r Rule) CatchAll() bool { return r.Match == nil }

// Table is an immutable, ordered rule set.
type Table struct {
	rules []Rule
}

// NewTable checks the rule order and returns a table.
func NewTable(rules ...Rule) (*Table, error) {
	if len(rules) == 0 {
		return nil, ErrNoCatchAll
	}
	for i, r := range rules {
		if r.Produce == nil {
			return nil, fmt.Errorf("rule %d %q: %w", i, r.Name, ErrNoProducer)
		}
		if r.CatchAll() && i != len(rules)-1 {
			return nil, fmt.Errorf("rule %d %q: %w", i+1, rules[i+1].Name, ErrUnreachableRule)
		}
	}
	if !rules[len(rules)-1].CatchAll() {
		return nil, ErrNoCatchAll
	}

	own := make([]Rule, len(rules))
	copy(own, rules)
	return &Table{rules: own}, nil
}

// MustNewTable is NewTable for package-level tables; it panics on a bad order.
func MustNewTable(rules ...Rule) *Table {
	t, err := NewTable(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of rules.
func (t *Table) Len() int { return len(t.rules) }

// Rules returns a copy of the rules in evaluation order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Select returns the first rule that accepts the target and its index.
func (t *Table) Select(target Target) (Rule, int) {
	for i, r := range t.rules {
		if r.CatchAll() || r.Match(target) {
			return r, i
		}
	}
	// NewTable guarantees the last rule is a catch-all.
	panic("rules: table without catch-all")
}

// Render selects a rule for p and produces its content.
func (t *Table) Render(p string) (Content, Rule, error) {
	target := NewTarget(p)
	rule, _ := t.Select(target)
	content, err := rule.Produce(target)
	if err != nil {
		return Content{}, rule, fmt.Errorf("rule %q for %s: %w", rule.Name, p, err)
	}
	return content, rule, nil
}
