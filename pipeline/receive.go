package pipeline

import (
	"encoding/json"
	"fmt"

	"linerelay/models"
	"linerelay/queue"
	"linerelay/tools"

	"github.com/jinzhu/gorm"
)

// ReceiveInput é o que o endpoint público captura de uma entrega: o header de
// assinatura, o body cru e o endereço de quem chamou.
type ReceiveInput struct {
	Signature string
	Body      string
	Address   string
}

// Receive verifica a assinatura da entrega e, se válida, devolve uma task de
// parse por item do batch, na ordem original. Toda tentativa — válida ou não —
// vira um registro Signature antes de qualquer fan-out. Assinatura inválida é
// terminal: nil tasks, nil error, auditoria preservada.
func Receive(db *gorm.DB, in ReceiveInput) ([]queue.Task, error) {
	secret, err := models.GetSetting(db, models.SETTING_CHANNEL_SECRET)
	if err != nil {
		return nil, fmt.Errorf("load channel_secret: %w", err)
	}

	calculated, valid := tools.VerifySignature([]byte(secret), []byte(in.Body), in.Signature)

	sig := models.Signature{
		Given:      in.Signature,
		Calculated: calculated,
		IsValid:    valid,
		Address:    in.Address,
	}
	if err := db.Create(&sig).Error; err != nil {
		return nil, fmt.Errorf("store signature: %w", err)
	}

	if !valid {
		return nil, nil
	}

	var batch struct {
		Result []json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal([]byte(in.Body), &batch); err != nil {
		return nil, &BatchError{Err: err}
	}

	tasks := make([]queue.Task, 0, len(batch.Result))
	for _, item := range batch.Result {
		tasks = append(tasks, queue.NewTask("parse", "/tasks/parse", map[string]string{
			"message": string(item),
		}))
	}
	return tasks, nil
}
