// Package content holds the single content model read by both the rendered
// pages and the editorial PDF documents.
//
// The values are literal constants for one client. [Informe] and [Propuesta]
// build a fresh copy on every call, so callers may modify what they get back.
package content

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Brand is the client name printed on covers, labels and footers.
const Brand = "NORGESTION"

// MaxDescriptionRunes bounds every description so it always wraps to a
// handful of lines at the editorial content width.
const MaxDescriptionRunes = 600

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("content: invalid block")

// Section is the heading shared by every report and proposal section.
type Section struct {
	ID         string // anchor id on the rendered page
	Label      string // small green kicker above the title
	Title      string
	Lead       string
	Disclaimer string
}

// Block is a titled paragraph, optionally numbered.
type Block struct {
	Number      string
	Title       string
	Description string
}

// Stat is a headline figure with its label and an optional explanation.
type Stat struct {
	Value       string
	Label       string
	Description string
}

// Keyword is a search term and its Google position.
type Keyword struct {
	Term     string
	Position int
}

// GeoGroup groups keywords by city.
type GeoGroup struct {
	City     string
	Keywords []Keyword
}

// Ranking is one row of a page ranking table.
type Ranking struct {
	Name  string
	URL   string
	Value int
}

// KPI is a LinkedIn metric measured against its target.
type KPI struct {
	Title    string
	Total    int
	PerPost  float64
	Target   float64
	Achieved bool
}

// Category is a business-impact bucket of inbound contacts.
type Category struct {
	Value       int
	Descriptor  string
	Subtext     string
	Highlighted bool
}

// Comparison is one side of the traditional vs full-stack comparison.
type Comparison struct {
	Title string
	Items []string
}

// Service is one recurring line of the pricing breakdown.
type Service struct {
	Title   string
	Concept string
	Detail  string
}

// Step is a dated activation milestone.
type Step struct {
	Period      string
	Title       string
	Description string
}

// Quarter is one column of the roadmap.
type Quarter struct {
	Label  string
	Months string
	Items  []string
}

// validator accumulates the first failure while walking a document.
type validator struct {
	err error
}

func (v *validator) block(where string, b Block) {
	v.titled(where, b.Title, b.Description)
}

func (v *validator) titled(where, title, desc string) {
	if v.err != nil {
		return
	}
	if strings.TrimSpace(title) == "" {
		v.err = fmt.Errorf("%w: %s has an empty title", ErrInvalid, where)
		return
	}
	if n := utf8.RuneCountInString(desc); n > MaxDescriptionRunes {
		v.err = fmt.Errorf("%w: %s %q description is %d runes (max %d)", ErrInvalid, where, title, n, MaxDescriptionRunes)
	}
}

func (v *validator) section(where string, s Section) {
	v.titled(where, s.Title, s.Lead)
}
