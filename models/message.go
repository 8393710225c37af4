package models

import "time"

// Message é uma mensagem inbound já verificada. ExternalID é o id atribuído
// pela plataforma e funciona como chave de idempotência: entregas duplicadas
// reutilizam o registro existente e sobrescrevem os campos (não é write-once).
type Message struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ExternalID  string     `gorm:"not null;unique_index" json:"external_id"`
	Text        string     `gorm:"type:text" json:"text"` // vazio para stickers/imagens
	Sender      string     `gorm:"not null;index" json:"sender"`
	ContentFrom string     `gorm:"not null;index" json:"content_from"`
	Body        string     `gorm:"type:text" json:"body"` // payload cru, mainly for debug
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
