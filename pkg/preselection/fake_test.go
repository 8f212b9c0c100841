package preselection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/artem13815/ats/pkg/pipeline"
)

type call struct {
	ID  int64
	Upd StageUpdate
}

// fakeAPI keeps applications in memory and applies stage updates the way the server does.
type fakeAPI struct {
	mu      sync.Mutex
	apps    []pipeline.Application
	calls   []call
	lists   int
	listErr error
	failOn  map[int]error // call index (0-based) -> error
}

func newFakeAPI(apps ...pipeline.Application) *fakeAPI {
	return &fakeAPI{apps: apps, failOn: map[int]error{}}
}

func (f *fakeAPI) ListApplications(ctx context.Context) ([]pipeline.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]pipeline.Application, len(f.apps))
	for i, a := range f.apps {
		a.Timeline = append([]pipeline.TimelineEntry(nil), a.Timeline...)
		out[i] = a
	}
	return out, nil
}

func (f *fakeAPI) UpdateStage(ctx context.Context, id int64, upd StageUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := len(f.calls)
	f.calls = append(f.calls, call{ID: id, Upd: upd})
	if err, ok := f.failOn[idx]; ok {
		return err
	}
	for i := range f.apps {
		if f.apps[i].ID != id {
			continue
		}
		for j := range f.apps[i].Timeline {
			if f.apps[i].Timeline[j].Stage == upd.Stage {
				f.apps[i].Timeline[j].Status = upd.Status
				if upd.Feedback != nil {
					f.apps[i].Timeline[j].Feedback = upd.Feedback
				}
				return nil
			}
		}
		f.apps[i].Timeline = append(f.apps[i].Timeline, pipeline.TimelineEntry{Stage: upd.Stage, Status: upd.Status, Feedback: upd.Feedback})
		return nil
	}
	return errors.New("application not found")
}

func strp(s string) *string   { return &s }
func f64p(v float64) *float64 { return &v }
func i64p(v int64) *int64     { return &v }

func app(id int64, name, email, title string) pipeline.Application {
	return pipeline.Application{
		ID:     id,
		User:   &pipeline.User{ID: i64p(id), Name: strp(name), Email: strp(email)},
		Job:    &pipeline.JobRef{ID: 1, Title: title},
		Status: "in_progress",
		Timeline: []pipeline.TimelineEntry{
			{Stage: pipeline.StageApplication, Status: pipeline.StatusCompleted},
		},
	}
}

func manyApps(n int) []pipeline.Application {
	out := make([]pipeline.Application, n)
	for i := range out {
		id := int64(i + 1)
		out[i] = app(id, fmt.Sprintf("Candidate %d", id), fmt.Sprintf("c%d@mail.test", id), "Frontend Dev")
	}
	return out
}
