package pipeline

import (
	"context"
	"log"

	"linerelay/queue"
	"linerelay/tools"
)

// Generate computa a resposta e devolve a task de send. Qualquer erro do
// ReplyComputer é mapeado para o sentinel "" — downstream responde com o
// stamp de fallback em vez de propagar falha pelo pipeline.
func Generate(ctx context.Context, rc tools.ReplyComputer, to, text string) []queue.Task {
	output, err := rc.Compute(ctx, text)
	if err != nil {
		log.Printf("generate: reply computation failed, falling back to stamp: %v", err)
		output = ""
	}

	return []queue.Task{
		queue.NewTask("send", "/tasks/send", map[string]string{
			"to":     to,
			"output": output,
		}),
	}
}
