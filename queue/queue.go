package queue

import (
	"encoding/json"
	"time"

	"linerelay/models"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// Task descreve uma unidade de trabalho ainda não persistida. As funções de
// pipeline devolvem descritores e quem chamou decide submeter — a lógica de
// negócio fica testável sem dispatcher.
type Task struct {
	Queue  string
	Path   string
	Params map[string]string
}

func NewTask(queue, path string, params map[string]string) Task {
	return Task{Queue: queue, Path: path, Params: params}
}

// Enqueue persiste os descritores como pending, agendados para agora.
func Enqueue(db *gorm.DB, tasks ...Task) error {
	now := time.Now()
	for _, t := range tasks {
		params, err := json.Marshal(t.Params)
		if err != nil {
			return err
		}
		scheduled := now
		rec := models.Task{
			PublicID:    uuid.NewString(),
			Queue:       t.Queue,
			Path:        t.Path,
			Params:      string(params),
			Status:      models.TASK_STATUS_PENDING,
			ScheduledAt: &scheduled,
		}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

// ClaimDue pega até limit tasks pendentes já vencidas. O claim é um update
// otimista status pending -> processing; quem perder a corrida é pulado.
func ClaimDue(db *gorm.DB, limit int) ([]models.Task, error) {
	now := time.Now()

	var due []models.Task
	if err := db.
		Where("status = ?", models.TASK_STATUS_PENDING).
		Where("scheduled_at IS NOT NULL AND scheduled_at <= ?", now).
		Order("scheduled_at asc, id asc").
		Limit(limit).
		Find(&due).Error; err != nil {
		return nil, err
	}

	claimed := make([]models.Task, 0, len(due))
	for _, t := range due {
		res := db.Model(&models.Task{}).
			Where("id = ? AND status = ?", t.ID, models.TASK_STATUS_PENDING).
			Updates(map[string]any{
				"status":     models.TASK_STATUS_PROCESSING,
				"claimed_at": &now,
			})
		if res.Error != nil || res.RowsAffected == 0 {
			continue
		}
		t.Status = models.TASK_STATUS_PROCESSING
		t.ClaimedAt = &now
		claimed = append(claimed, t)
	}
	return claimed, nil
}

func MarkDone(db *gorm.DB, taskID int64) error {
	now := time.Now()
	return db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Updates(map[string]any{
			"status":  models.TASK_STATUS_DONE,
			"done_at": &now,
		}).Error
}

// Reschedule devolve a task para pending com novo horário e registra o erro.
func Reschedule(db *gorm.DB, taskID int64, attempts int, delay time.Duration, lastError string) error {
	next := time.Now().Add(delay)
	return db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Updates(map[string]any{
			"status":       models.TASK_STATUS_PENDING,
			"attempts":     attempts,
			"scheduled_at": &next,
			"last_error":   lastError,
		}).Error
}

func MarkFailed(db *gorm.DB, taskID int64, attempts int, lastError string) error {
	return db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Updates(map[string]any{
			"status":     models.TASK_STATUS_FAILED,
			"attempts":   attempts,
			"last_error": lastError,
		}).Error
}

// RequeueStale devolve para pending claims de processing mais velhos que
// maxAge (processo morreu no meio; entrega at-least-once cobre o resto).
func RequeueStale(db *gorm.DB, maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)
	return db.Model(&models.Task{}).
		Where("status = ? AND claimed_at IS NOT NULL AND claimed_at < ?", models.TASK_STATUS_PROCESSING, cutoff).
		Update("status", models.TASK_STATUS_PENDING).Error
}

// ParamsMap desserializa o saco de parâmetros de uma task persistida.
func ParamsMap(t models.Task) (map[string]string, error) {
	params := map[string]string{}
	if t.Params == "" {
		return params, nil
	}
	if err := json.Unmarshal([]byte(t.Params), &params); err != nil {
		return nil, err
	}
	return params, nil
}
