package pipeline

import "time"

// TimelineEntry описывает состояние одного этапа заявки.
type TimelineEntry struct {
	Stage    Stage       `json:"name"`
	Status   StageStatus `json:"status"`
	Date     *time.Time  `json:"date,omitempty"`
	Feedback *string     `json:"feedback,omitempty"`
}

// User описывает кандидата, подавшего заявку.
type User struct {
	ID    *int64  `json:"id"`
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

// JobRef хранит краткую информацию о вакансии внутри заявки.
type JobRef struct {
	ID          int64  `json:"id"`
	Title       string `json:"title_job"`
	Description string `json:"description"`
}

// Application — заявка кандидата с таймлайном этапов.
// Status хранит "сырой" статус сервера; общий статус всегда вычисляется.
type Application struct {
	ID                int64           `json:"id"`
	User              *User           `json:"user"`
	Job               *JobRef         `json:"job"`
	Status            string          `json:"status"`
	CreatedAt         *time.Time      `json:"created_at,omitempty"`
	SimilarityPercent *float64        `json:"similarity_percent"`
	Timeline          []TimelineEntry `json:"timeline"`
}

func (a Application) UserName() string {
	if a.User == nil || a.User.Name == nil {
		return ""
	}
	return *a.User.Name
}

func (a Application) UserEmail() string {
	if a.User == nil || a.User.Email == nil {
		return ""
	}
	return *a.User.Email
}

func (a Application) JobTitle() string {
	if a.Job == nil {
		return ""
	}
	return a.Job.Title
}
