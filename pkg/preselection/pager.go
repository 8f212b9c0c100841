package preselection

import "github.com/artem13815/ats/pkg/pipeline"

// PageSizes lists the allowed page sizes.
var PageSizes = []int{10, 25, 50}

const DefaultPageSize = 10

func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// Pager keeps the current page and page size. Page is 1-based.
type Pager struct {
	page int
	size int
}

func NewPager() *Pager { return &Pager{page: 1, size: DefaultPageSize} }

func (p *Pager) Page() int { return p.page }
func (p *Pager) Size() int { return p.size }

// SetPageSize changes the size and returns to page 1.
func (p *Pager) SetPageSize(n int) error {
	if !ValidPageSize(n) {
		return ErrInvalidPageSize
	}
	p.size = n
	p.page = 1
	return nil
}

func (p *Pager) Reset() { p.page = 1 }

// TotalPages is never below 1.
func (p *Pager) TotalPages(total int) int {
	pages := (total + p.size - 1) / p.size
	if pages < 1 {
		return 1
	}
	return pages
}

// GoTo moves to page n clamped to [1, TotalPages(total)].
func (p *Pager) GoTo(n, total int) {
	last := p.TotalPages(total)
	switch {
	case n < 1:
		n = 1
	case n > last:
		n = last
	}
	p.page = n
}

func (p *Pager) Next(total int) { p.GoTo(p.page+1, total) }
func (p *Pager) Prev(total int) { p.GoTo(p.page-1, total) }

func (p *Pager) HasPrev() bool          { return p.page > 1 }
func (p *Pager) HasNext(total int) bool { return p.page < p.TotalPages(total) }

// Slice returns the items of the current page.
func (p *Pager) Slice(items []pipeline.Application) []pipeline.Application {
	start := (p.page - 1) * p.size
	if start >= len(items) {
		return []pipeline.Application{}
	}
	end := start + p.size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
