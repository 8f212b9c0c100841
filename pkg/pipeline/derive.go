package pipeline

import "strings"

// GeneralStatus — агрегированный статус заявки. Никогда не хранится.
type GeneralStatus string

const (
	GeneralInProcess GeneralStatus = "En Proceso"
	GeneralFinished  GeneralStatus = "Finalizado"
	GeneralDiscarded GeneralStatus = "Descartado"
)

var GeneralStatuses = []GeneralStatus{GeneralInProcess, GeneralFinished, GeneralDiscarded}

func (g GeneralStatus) Valid() bool {
	return g == GeneralInProcess || g == GeneralFinished || g == GeneralDiscarded
}

// Entry returns the first timeline entry for the stage.
// Duplicated stages are resolved as first match wins.
func Entry(app Application, stage Stage) (TimelineEntry, bool) {
	for _, e := range app.Timeline {
		if e.Stage == stage {
			return e, true
		}
	}
	return TimelineEntry{}, false
}

// DeriveStageStatus returns the status recorded for stage, or pending when absent.
func DeriveStageStatus(app Application, stage Stage) StageStatus {
	e, ok := Entry(app, stage)
	if !ok || e.Status == "" {
		return StatusPending
	}
	return e.Status
}

// DeriveGeneralStatus computes the aggregate status. Rule order matters:
// an accepted or completed result wins over any rejection elsewhere.
func DeriveGeneralStatus(app Application) GeneralStatus {
	switch DeriveStageStatus(app, StageResult) {
	case StatusAccepted, StatusCompleted:
		return GeneralFinished
	}
	for _, e := range app.Timeline {
		if e.Status == StatusRejected {
			return GeneralDiscarded
		}
	}
	switch strings.ToLower(app.Status) {
	case "discarded", "descartado":
		return GeneralDiscarded
	}
	return GeneralInProcess
}

// Tag описывает визуальную метку статуса для UI.
type Tag string

const (
	TagSuccess Tag = "success"
	TagInfo    Tag = "info"
	TagDanger  Tag = "danger"
	TagMuted   Tag = "muted"
)

func StatusTag(s StageStatus) Tag {
	switch s {
	case StatusAccepted, StatusCompleted:
		return TagSuccess
	case StatusScheduled, StatusInProgress:
		return TagInfo
	case StatusRejected:
		return TagDanger
	default:
		return TagMuted
	}
}

func GeneralStatusTag(g GeneralStatus) Tag {
	switch g {
	case GeneralFinished:
		return TagSuccess
	case GeneralDiscarded:
		return TagDanger
	default:
		return TagInfo
	}
}
