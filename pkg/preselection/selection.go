package preselection

import "sort"

// Selection хранит множество отмеченных заявок в рамках сессии администратора.
type Selection struct {
	ids map[int64]struct{}
}

func NewSelection(ids ...int64) *Selection {
	s := &Selection{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s *Selection) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Toggle(id int64) {
	if s.Has(id) {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// ToggleAll deselects exactly pageIDs when all of them are selected, otherwise selects them.
// Ids on other pages are never touched.
func (s *Selection) ToggleAll(pageIDs []int64) {
	if len(pageIDs) == 0 {
		return
	}
	if s.AllSelected(pageIDs) {
		for _, id := range pageIDs {
			delete(s.ids, id)
		}
		return
	}
	for _, id := range pageIDs {
		s.ids[id] = struct{}{}
	}
}

// AllSelected is false for an empty page.
func (s *Selection) AllSelected(ids []int64) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

func (s *Selection) Len() int { return len(s.ids) }

// IDs returns the selected ids in ascending order; bulk actions iterate in this order.
func (s *Selection) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s *Selection) Clear() { s.ids = make(map[int64]struct{}) }

// Stale reports selected ids missing from the given snapshot ids.
func (s *Selection) Stale(snapshotIDs []int64) []int64 {
	present := make(map[int64]struct{}, len(snapshotIDs))
	for _, id := range snapshotIDs {
		present[id] = struct{}{}
	}
	var out []int64
	for _, id := range s.IDs() {
		if _, ok := present[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
