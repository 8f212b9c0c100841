package preselection

import (
	"go.uber.org/zap"

	"github.com/artem13815/ats/pkg/pipeline"
)

// Session — явное состояние экрана предварительного отбора.
// It is owned by one admin view; derived data is recomputed from the store on every read.
type Session struct {
	Store     *Store
	Selection *Selection
	Pager     *Pager

	query    string
	criteria Criteria
	coord    *Coordinator
}

func NewSession(api API, log *zap.Logger) *Session {
	store := NewStore(api, log)
	sel := NewSelection()
	return &Session{
		Store:     store,
		Selection: sel,
		Pager:     NewPager(),
		criteria:  DefaultCriteria(),
		coord:     NewCoordinator(api, store, sel, log),
	}
}

func (s *Session) Coordinator() *Coordinator { return s.coord }

func (s *Session) Query() string { return s.query }

func (s *Session) Criteria() Criteria { return s.criteria.clone() }

func (s *Session) SetQuery(q string) {
	s.query = q
	s.Pager.Reset()
}

func (s *Session) SetCriteria(c Criteria) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.criteria = c.clone()
	s.Pager.Reset()
	return nil
}

func (s *Session) ClearCriteria() {
	s.criteria = DefaultCriteria()
	s.Pager.Reset()
}

func (s *Session) SetPageSize(n int) error { return s.Pager.SetPageSize(n) }

func (s *Session) filtered() []pipeline.Application {
	return Filter(s.Store.Snapshot(), s.query, s.criteria)
}

func (s *Session) NextPage()  { s.Pager.Next(len(s.filtered())) }
func (s *Session) PrevPage()  { s.Pager.Prev(len(s.filtered())) }
func (s *Session) GoTo(n int) { s.Pager.GoTo(n, len(s.filtered())) }

// SelectAllOnPage toggles the ids visible on the current page.
func (s *Session) SelectAllOnPage() {
	s.Selection.ToggleAll(ids(s.Pager.Slice(s.filtered())))
}

// StaleSelection reports selected ids that the current snapshot no longer contains.
func (s *Session) StaleSelection() []int64 {
	return s.Selection.Stale(ids(s.Store.Snapshot()))
}

// View содержит всё, что нужно для отрисовки текущей страницы.
// Stale lists selected ids that the snapshot no longer contains; they are reported, not dropped.
type View struct {
	Items           []Row    `json:"items"`
	Page            int      `json:"page"`
	PageSize        int      `json:"pageSize"`
	TotalPages      int      `json:"totalPages"`
	Total           int      `json:"total"`
	HasPrev         bool     `json:"hasPrev"`
	HasNext         bool     `json:"hasNext"`
	JobTitles       []string `json:"jobTitles"`
	Selected        []int64  `json:"selected"`
	AllPageSelected bool     `json:"allPageSelected"`
	Stale           []int64  `json:"stale,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// Row is an application decorated with its derived statuses.
type Row struct {
	pipeline.Application
	General    pipeline.GeneralStatus                  `json:"general_status"`
	GeneralTag pipeline.Tag                            `json:"general_tag"`
	Stages     map[pipeline.Stage]pipeline.StageStatus `json:"stages"`
	Selected   bool                                    `json:"selected"`
}

func (s *Session) View() View {
	snapshot := s.Store.Snapshot()
	filtered := Filter(snapshot, s.query, s.criteria)
	// the result set may have shrunk since the page was chosen
	s.Pager.GoTo(s.Pager.Page(), len(filtered))
	page := s.Pager.Slice(filtered)

	rows := make([]Row, 0, len(page))
	for _, a := range page {
		general := pipeline.DeriveGeneralStatus(a)
		stages := make(map[pipeline.Stage]pipeline.StageStatus, len(pipeline.Stages))
		for _, st := range pipeline.Stages {
			stages[st] = pipeline.DeriveStageStatus(a, st)
		}
		rows = append(rows, Row{
			Application: a,
			General:     general,
			GeneralTag:  pipeline.GeneralStatusTag(general),
			Stages:      stages,
			Selected:    s.Selection.Has(a.ID),
		})
	}
	v := View{
		Items:           rows,
		Page:            s.Pager.Page(),
		PageSize:        s.Pager.Size(),
		TotalPages:      s.Pager.TotalPages(len(filtered)),
		Total:           len(filtered),
		HasPrev:         s.Pager.HasPrev(),
		HasNext:         s.Pager.HasNext(len(filtered)),
		JobTitles:       JobTitles(snapshot),
		Selected:        s.Selection.IDs(),
		AllPageSelected: s.Selection.AllSelected(ids(page)),
		Stale:           s.Selection.Stale(ids(snapshot)),
	}
	if err := s.Store.Err(); err != nil {
		v.Error = err.Error()
	}
	return v
}

func ids(apps []pipeline.Application) []int64 {
	out := make([]int64, len(apps))
	for i, a := range apps {
		out[i] = a.ID
	}
	return out
}
