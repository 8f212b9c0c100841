package pipeline

import "fmt"

// Stage — шаг фиксированного пайплайна найма.
type Stage string

const (
	StageApplication  Stage = "application"
	StagePreselection Stage = "preselection"
	StageInterview    Stage = "interview"
	StageTest         Stage = "test"
	StageResult       Stage = "result"
)

// Stages in display order.
var Stages = []Stage{StageApplication, StagePreselection, StageInterview, StageTest, StageResult}

// Order returns the stage position used as sort_order in storage; 99 for unknown stages.
func (s Stage) Order() int {
	for i, st := range Stages {
		if st == s {
			return i + 1
		}
	}
	return 99
}

func (s Stage) Valid() bool { return s.Order() != 99 }

func ParseStage(v string) (Stage, error) {
	s := Stage(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown stage %q", v)
	}
	return s, nil
}

// StageStatus — состояние одного этапа для одной заявки.
type StageStatus string

const (
	StatusPending    StageStatus = "pending"
	StatusInProgress StageStatus = "in_progress"
	StatusScheduled  StageStatus = "scheduled"
	StatusCompleted  StageStatus = "completed"
	StatusRejected   StageStatus = "rejected"
	StatusAccepted   StageStatus = "accepted"
)

var Statuses = []StageStatus{StatusPending, StatusInProgress, StatusScheduled, StatusCompleted, StatusRejected, StatusAccepted}

func (s StageStatus) Valid() bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

// Terminal reports statuses that close a stage and get a date stamp.
func (s StageStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAccepted || s == StatusRejected
}

func ParseStageStatus(v string) (StageStatus, error) {
	s := StageStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown stage status %q", v)
	}
	return s, nil
}
