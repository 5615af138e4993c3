// Package extractor resolves semantic fields from a rendered product page.
// Each field carries an ordered list of locator candidates; the page renders
// one of several alternative layouts depending on promotion state, and the
// candidate order encodes "try layout A, else layout B" without any layout
// detection logic.
package extractor

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// By is the kind of query a Locator holds.
type By string

// Locator query kinds.
const (
	ByCSS   By = "css"
	ByXPath By = "xpath"
)

// Locator is one way of addressing the DOM element expected to contain a field's value.
type Locator struct {
	By    By
	Query string
}

// Field is a semantic field with its ordered locator candidates.
// New page layouts are supported by appending a candidate, not by editing control flow.
type Field struct {
	Name       string
	Candidates []Locator
}

// Page waits for the element addressed by a locator and returns its trimmed text.
// The wait is bounded by the context deadline.
type Page interface {
	Text(ctx context.Context, loc Locator) (string, error)
}

// Extractor resolves fields from one rendered page.
type Extractor struct {
	page    Page
	timeout time.Duration
	logger  *zerolog.Logger
}

// New returns new Extractor reading from page with a bounded wait per locator candidate.
func New(page Page, timeout time.Duration, logger *zerolog.Logger) *Extractor {
	return &Extractor{
		page:    page,
		timeout: timeout,
		logger:  logger,
	}
}

// Field tries the field's locator candidates in order and returns the first
// resolved text. Every single-candidate failure is swallowed and the next
// candidate is tried; only exhaustion of all candidates yields nil.
// Field never returns an error.
func (e *Extractor) Field(ctx context.Context, field Field) *string {
	for _, loc := range field.Candidates {
		if ctx.Err() != nil {
			break
		}

		waitCtx, cancel := context.WithTimeout(ctx, e.timeout)
		text, err := e.page.Text(waitCtx, loc)
		cancel()
		if err != nil {
			continue
		}

		return lo.ToPtr(text)
	}

	e.logger.Warn().
		Str("field", field.Name).
		Msg("field not found on page")

	return nil
}
