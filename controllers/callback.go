package controllers

import (
	"log"
	"net/http"
	"strings"

	dbpkg "linerelay/db"
	"linerelay/queue"

	"github.com/gin-gonic/gin"
)

// GET /callback
func CallbackGet(c *gin.Context) {
	c.String(http.StatusOK, "Hello world!")
}

// POST /callback
//
// Endpoint público chamado pela plataforma. Captura assinatura, body cru e
// endereço do chamador e enfileira a task de receive. Responde 200 SEMPRE:
// a plataforma nunca pode ver falha de processamento aqui (senão ela
// re-entrega e vira tempestade de retry).
func CallbackPost(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		// ainda assim 200; sem db não há o que fazer além de logar
		log.Printf("callback: db não configurado no contexto")
		c.String(http.StatusOK, "Thanks, LINE!")
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		log.Printf("callback: failed to read body: %v", err)
		c.String(http.StatusOK, "Thanks, LINE!")
		return
	}

	task := queue.NewTask("receive", "/tasks/receive", map[string]string{
		"signature": strings.TrimSpace(c.GetHeader("X-Line-Channelsignature")),
		"body":      string(body),
		"address":   c.ClientIP(),
	})
	if err := queue.Enqueue(db, task); err != nil {
		log.Printf("callback: enqueue receive error: %v", err)
	}

	c.String(http.StatusOK, "Thanks, LINE!")
}
