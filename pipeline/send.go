package pipeline

import (
	"context"
	"fmt"

	"linerelay/models"
	"linerelay/tools"

	"github.com/jinzhu/gorm"
)

// Send monta o payload e entrega via LineClient. As credenciais são lidas do
// store no momento da chamada; store incompleto é falha dura. Este é o único
// estágio cujo erro fica visível para o dispatcher (retry é problema dele).
func Send(ctx context.Context, db *gorm.DB, endpoint, to, output string) error {
	settings, err := models.LoadChannelSettings(db)
	if err != nil {
		return fmt.Errorf("channel settings: %w", err)
	}
	client := tools.NewLineClient(endpoint, settings)
	return client.Send(ctx, to, output)
}
