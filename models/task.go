package models

import "time"

/************************************************
/**** MARK: TASK STATUS ****/
/************************************************/
const TASK_STATUS_PENDING = "pending"
const TASK_STATUS_PROCESSING = "processing"
const TASK_STATUS_DONE = "done"
const TASK_STATUS_FAILED = "failed"

// Task é uma unidade de trabalho assíncrona: o dispatcher entrega os Params
// via POST form para Path e marca done em 2xx. Entrega é at-least-once —
// os handlers de /tasks/* precisam tolerar execução duplicada.
type Task struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	PublicID    string     `gorm:"not null;unique_index" json:"public_id"`
	Queue       string     `gorm:"not null;index" json:"queue"`
	Path        string     `gorm:"not null" json:"path"`
	Params      string     `gorm:"type:text" json:"params"` // JSON object string->string
	Status      string     `gorm:"not null;default:'pending';index" json:"status"`
	Attempts    int        `gorm:"not null;default:0" json:"attempts"`
	ScheduledAt *time.Time `gorm:"index" json:"scheduled_at"`
	ClaimedAt   *time.Time `json:"claimed_at"`
	DoneAt      *time.Time `json:"done_at"`
	LastError   string     `gorm:"type:text" json:"last_error"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
