package controllers

import (
	"log"
	"net/http"

	dbpkg "linerelay/db"
	"linerelay/models"
	"linerelay/queue"

	"github.com/gin-gonic/gin"
)

var configNames = []string{
	models.SETTING_CHANNEL_ID,
	models.SETTING_CHANNEL_SECRET,
	models.SETTING_MID,
	models.SETTING_FB_VALIDATION_TOKEN,
}

// POST /admin/config
//
// Grava os campos de configuração do canal a partir de form params e ecoa
// os valores escritos. Last-write-wins; não há remoção.
func AdminConfig(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	response := gin.H{}
	for _, name := range configNames {
		value := c.PostForm(name)
		if err := models.PutSetting(db, name, value); err != nil {
			RespondError(c, "failed to store "+name, http.StatusInternalServerError)
			return
		}
		response[name] = value
	}

	c.JSON(http.StatusOK, response)
}

// GET /admin/send/:to/:text
//
// Atalho administrativo: enfileira um send direto, pulando os estágios de
// parse/generate. Útil para testar credenciais de canal de ponta a ponta.
func AdminSend(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	task := queue.NewTask("send", "/tasks/send", map[string]string{
		"to":     c.Param("to"),
		"output": c.Param("text"),
	})
	if err := queue.Enqueue(db, task); err != nil {
		log.Printf("admin send: enqueue error: %v", err)
		RespondError(c, "enqueue failed", http.StatusInternalServerError)
		return
	}

	c.String(http.StatusOK, "ok")
}
