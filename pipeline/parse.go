package pipeline

import (
	"encoding/json"

	"linerelay/models"
	"linerelay/queue"

	"github.com/jinzhu/gorm"
)

type inboundItem struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	Content struct {
		From string `json:"from"`
		Text string `json:"text"` // ausente para stickers/imagens
	} `json:"content"`
}

// Ingest armazena um item de mensagem com semântica get-or-insert pelo id
// externo: entrega duplicada reutiliza o registro e sobrescreve os campos.
// No sucesso devolve exatamente uma task de generate (to = content.from).
func Ingest(db *gorm.DB, raw string) (*models.Message, []queue.Task, error) {
	var item inboundItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, nil, &IngestError{Reason: "invalid message json", Err: err}
	}
	if item.ID == "" {
		return nil, nil, &IngestError{Reason: "missing id"}
	}
	if item.From == "" {
		return nil, nil, &IngestError{Reason: "missing from"}
	}
	if item.Content.From == "" {
		return nil, nil, &IngestError{Reason: "missing content.from"}
	}

	var msg models.Message
	err := db.Where("external_id = ?", item.ID).First(&msg).Error
	if gorm.IsRecordNotFoundError(err) {
		msg = models.Message{ExternalID: item.ID}
	} else if err != nil {
		return nil, nil, &IngestError{Reason: "lookup failed", Err: err}
	}

	msg.Text = item.Content.Text
	msg.Sender = item.From
	msg.ContentFrom = item.Content.From
	msg.Body = raw
	if err := db.Save(&msg).Error; err != nil {
		return nil, nil, &IngestError{Reason: "save failed", Err: err}
	}

	next := []queue.Task{
		queue.NewTask("send", "/tasks/generate", map[string]string{
			"to":   item.Content.From,
			"text": msg.Text,
		}),
	}
	return &msg, next, nil
}
