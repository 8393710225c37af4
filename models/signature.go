package models

import "time"

// Signature registra cada tentativa de verificação do webhook (válida ou não).
// Append-only: criado uma vez por entrega e nunca alterado.
type Signature struct {
	ID         int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Given      string     `gorm:"type:text" json:"given"`
	Calculated string     `gorm:"type:text" json:"calculated"`
	IsValid    bool       `gorm:"not null;default:false;index" json:"is_valid"`
	Address    string     `gorm:"default:''" json:"address"`
	CreatedAt  *time.Time `json:"created_at"`
}
