package preselection

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/artem13815/ats/pkg/pipeline"
)

// All is the "no filter" value for every categorical filter.
const All = "Todos"

type SimilarityOrder string

const (
	OrderNone  SimilarityOrder = "none"
	OrderBest  SimilarityOrder = "best"
	OrderWorst SimilarityOrder = "worst"
)

// Sentinels for missing similarity: lowest under best, highest under worst.
const (
	missingBest  = -1.0
	missingWorst = 9999.0
)

// Criteria хранит состояние расширенных фильтров.
type Criteria struct {
	GeneralStatus   string                    `json:"generalStatus"`
	JobTitle        string                    `json:"jobTitle"`
	StageStatuses   map[pipeline.Stage]string `json:"stageStatuses"`
	SimilarityOrder SimilarityOrder           `json:"similarityOrder"`
}

func DefaultCriteria() Criteria {
	st := make(map[pipeline.Stage]string, len(pipeline.Stages))
	for _, s := range pipeline.Stages {
		st[s] = All
	}
	return Criteria{
		GeneralStatus:   All,
		JobTitle:        All,
		StageStatuses:   st,
		SimilarityOrder: OrderNone,
	}
}

func (c Criteria) clone() Criteria {
	st := make(map[pipeline.Stage]string, len(c.StageStatuses))
	for k, v := range c.StageStatuses {
		st[k] = v
	}
	c.StageStatuses = st
	return c
}

// Validate rejects values that no application could ever produce.
func (c Criteria) Validate() error {
	if c.GeneralStatus != "" && c.GeneralStatus != All && !pipeline.GeneralStatus(c.GeneralStatus).Valid() {
		return fmt.Errorf("%w: general status %q", ErrInvalidCriteria, c.GeneralStatus)
	}
	for stage, v := range c.StageStatuses {
		if !stage.Valid() {
			return fmt.Errorf("%w: stage %q", ErrInvalidCriteria, stage)
		}
		if v != "" && v != All && !pipeline.StageStatus(v).Valid() {
			return fmt.Errorf("%w: %s status %q", ErrInvalidCriteria, stage, v)
		}
	}
	switch c.SimilarityOrder {
	case "", OrderNone, OrderBest, OrderWorst:
	default:
		return fmt.Errorf("%w: similarity order %q", ErrInvalidCriteria, c.SimilarityOrder)
	}
	return nil
}

func active(v string) bool { return v != "" && v != All }

// Filter applies the text query and criteria, then the similarity ordering.
// The input slice is never modified.
func Filter(apps []pipeline.Application, query string, c Criteria) []pipeline.Application {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	out := make([]pipeline.Application, 0, len(apps))
	for _, a := range apps {
		if q != "" && !matchesQuery(fold, a, q) {
			continue
		}
		if active(c.GeneralStatus) && string(pipeline.DeriveGeneralStatus(a)) != c.GeneralStatus {
			continue
		}
		if active(c.JobTitle) && a.JobTitle() != c.JobTitle {
			continue
		}
		if !matchesStages(a, c.StageStatuses) {
			continue
		}
		out = append(out, a)
	}

	switch c.SimilarityOrder {
	case OrderBest:
		sort.SliceStable(out, func(i, j int) bool {
			return similarity(out[i], missingBest) > similarity(out[j], missingBest)
		})
	case OrderWorst:
		sort.SliceStable(out, func(i, j int) bool {
			return similarity(out[i], missingWorst) < similarity(out[j], missingWorst)
		})
	}
	return out
}

func matchesQuery(fold cases.Caser, a pipeline.Application, q string) bool {
	return strings.Contains(fold.String(a.UserName()), q) ||
		strings.Contains(fold.String(a.UserEmail()), q) ||
		strings.Contains(fold.String(a.JobTitle()), q)
}

func matchesStages(a pipeline.Application, wanted map[pipeline.Stage]string) bool {
	for _, stage := range pipeline.Stages {
		w := wanted[stage]
		if !active(w) {
			continue
		}
		if string(pipeline.DeriveStageStatus(a, stage)) != w {
			return false
		}
	}
	return true
}

func similarity(a pipeline.Application, missing float64) float64 {
	if a.SimilarityPercent == nil {
		return missing
	}
	return *a.SimilarityPercent
}

// JobTitles returns the job filter options: All followed by distinct titles in first-seen order.
func JobTitles(apps []pipeline.Application) []string {
	out := []string{All}
	seen := make(map[string]struct{})
	for _, a := range apps {
		t := a.JobTitle()
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
