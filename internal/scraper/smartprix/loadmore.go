package smartprix

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// loadMoreSelector is the site's pagination control. It stays in the DOM
// after the last page but is no longer rendered, so visibility is the
// termination condition, not mere presence.
const loadMoreSelector = ".sm-load-more"

// pager abstracts the pagination control of a rendered listing page.
type pager interface {
	// VisibleLoadMore reports whether the "load more" control is present
	// and actually rendered.
	VisibleLoadMore() (bool, error)
	// ClickLoadMore triggers the control once.
	ClickLoadMore() error
}

// exhaustLoadMore clicks the pagination control until it is no longer
// visible, pausing after each click so new cards can render. The click
// count is bounded: a site that keeps the control visible forever fails
// the category instead of hanging the run.
func exhaustLoadMore(p pager, maxClicks int, settle time.Duration) (int, error) {
	clicks := 0
	for {
		visible, err := p.VisibleLoadMore()
		if err != nil {
			return clicks, err
		}
		if !visible {
			return clicks, nil
		}
		if clicks >= maxClicks {
			return clicks, fmt.Errorf("load more control still visible after %d clicks", maxClicks)
		}
		if err := p.ClickLoadMore(); err != nil {
			return clicks, err
		}
		clicks++
		time.Sleep(settle)
	}
}

// rodPager drives the pagination control on a live rod page.
type rodPager struct {
	page *rod.Page
}

func (r rodPager) VisibleLoadMore() (bool, error) {
	has, el, err := r.page.Has(loadMoreSelector)
	if err != nil {
		return false, err
	}
	if !has {
		return false, nil
	}
	return el.Visible()
}

func (r rodPager) ClickLoadMore() error {
	el, err := r.page.Element(loadMoreSelector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}
