package parser

import (
	"sort"
	"time"

	"quartz/pkg/datemath"
)

// Parser classifies free-text chat messages into commands. It is stateless
// between calls; concurrent use is safe because the rule table is read-only
// after construction.
type Parser struct {
	rules []PatternRule
	dates *datemath.Resolver
	now   func() time.Time
}

// New creates a Parser over the static pattern table. The datemath resolver
// is used to turn weekday phrases into due dates during extraction.
func New(dates *datemath.Resolver) *Parser {
	rules := patternTable()
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return &Parser{
		rules: rules,
		dates: dates,
		now:   time.Now,
	}
}

// SetNow overrides the clock used for due-date resolution. Test seam.
func (p *Parser) SetNow(now func() time.Time) {
	p.now = now
}
