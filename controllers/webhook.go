package controllers

import (
	"net/http"

	dbpkg "linerelay/db"
	"linerelay/models"

	"github.com/gin-gonic/gin"
)

// GET /webhook
//
// Handshake de verificação da plataforma: compara hub.verify_token com o
// fb_validation_token armazenado e ecoa hub.challenge no match. Sai SEMPRE
// com HTTP 200, inclusive no mismatch — comportamento herdado do serviço
// original; o body de erro deixa a má configuração visível mesmo assim.
func WebhookVerify(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		c.String(http.StatusOK, "Error: no database")
		return
	}

	expected, err := models.GetSetting(db, models.SETTING_FB_VALIDATION_TOKEN)
	if err != nil {
		c.String(http.StatusOK, "Error: fb_validation_token not set")
		return
	}

	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if token != expected {
		c.String(http.StatusOK, "Error: invalid verify token")
		return
	}

	c.String(http.StatusOK, "%s", challenge)
}
