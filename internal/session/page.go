package session

import (
	"context"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/ozonwatch/price-watcher/internal/extractor"
)

// Visit navigates the session's tab to url and waits, within timeout, for the
// page to become minimally available. It returns platform.ErrPageUnavailable
// wrapped errors when the page doesn't render in time and platform.ErrSessionLost
// wrapped errors when the browser itself is gone.
func (s *Session) Visit(ctx context.Context, url string, timeout time.Duration) (extractor.Page, error) {
	page := s.page.Context(ctx).Timeout(timeout)

	if err := page.Navigate(url); err != nil {
		return nil, s.classify(err, "can't navigate to product page")
	}
	if err := page.WaitLoad(); err != nil {
		return nil, s.classify(err, "product page didn't load in time")
	}

	return &Page{page: s.page.Context(ctx)}, nil
}

// Page adapts one rendered rod page to the extractor's element waits.
type Page struct {
	page *rod.Page
}

// Text waits for the element addressed by loc to be present and returns its
// trimmed text content. The wait is bounded by the context deadline.
func (p *Page) Text(ctx context.Context, loc extractor.Locator) (string, error) {
	page := p.page.Context(ctx)

	var (
		element *rod.Element
		err     error
	)
	switch loc.By {
	case extractor.ByXPath:
		element, err = page.ElementX(loc.Query)
	default:
		element, err = page.Element(loc.Query)
	}
	if err != nil {
		return "", err
	}

	text, err := element.Text()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}
