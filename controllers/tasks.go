package controllers

import (
	"errors"
	"log"
	"net/http"

	"linerelay/config"
	dbpkg "linerelay/db"
	"linerelay/pipeline"
	"linerelay/queue"
	"linerelay/tools"

	"github.com/gin-gonic/gin"
)

var conf config.Configuration
var replyComputer tools.ReplyComputer = tools.EchoComputer{}

// SetConfigurations injeta a configuração do processo e seleciona a
// estratégia de resposta. Chamado uma vez no boot, antes das rotas.
func SetConfigurations(configuration config.Configuration) {
	conf = configuration
	replyComputer = tools.NewReplyComputer(conf.ReplyMode, conf.QuoteEndpoint)
}

// Os handlers abaixo são chamados apenas pelo dispatcher. Cada um executa uma
// transição do pipeline e enfileira as tasks que a transição devolve. Erro
// absorvido responde 200 "ok" mesmo assim — retry do dispatcher não conserta
// payload malformado nem assinatura inválida. A exceção é o send: DeliveryError
// fica visível (não-2xx) para o dispatcher decidir o retry.

// POST /tasks/receive
func TaskReceive(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	in := pipeline.ReceiveInput{
		Signature: c.PostForm("signature"),
		Body:      c.PostForm("body"),
		Address:   c.PostForm("address"),
	}

	next, err := pipeline.Receive(db, in)
	if err != nil {
		var batchErr *pipeline.BatchError
		if errors.As(err, &batchErr) {
			// body verificado mas ilegível: loga e descarta, sem retry
			log.Printf("receive: %v", err)
			c.String(http.StatusOK, "ok")
			return
		}
		// falha de infraestrutura (settings/db) vale retry
		log.Printf("receive: %v", err)
		RespondError(c, "receive failed", http.StatusInternalServerError)
		return
	}

	if err := queue.Enqueue(db, next...); err != nil {
		log.Printf("receive: enqueue parse tasks error: %v", err)
		RespondError(c, "enqueue failed", http.StatusInternalServerError)
		return
	}

	c.String(http.StatusOK, "ok")
}

// POST /tasks/parse
func TaskParse(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	msg, next, err := pipeline.Ingest(db, c.PostForm("message"))
	if err != nil {
		var ingestErr *pipeline.IngestError
		if errors.As(err, &ingestErr) {
			// item malformado: perda de dado aceita, inbound nunca vê falha
			log.Printf("parse: %v", err)
			c.String(http.StatusOK, "ok")
			return
		}
		log.Printf("parse: %v", err)
		RespondError(c, "parse failed", http.StatusInternalServerError)
		return
	}

	if err := queue.Enqueue(db, next...); err != nil {
		log.Printf("parse: enqueue generate task error (message %s): %v", msg.ExternalID, err)
		RespondError(c, "enqueue failed", http.StatusInternalServerError)
		return
	}

	c.String(http.StatusOK, "ok")
}

// POST /tasks/generate
func TaskGenerate(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	next := pipeline.Generate(c.Request.Context(), replyComputer, c.PostForm("to"), c.PostForm("text"))

	if err := queue.Enqueue(db, next...); err != nil {
		log.Printf("generate: enqueue send task error: %v", err)
		RespondError(c, "enqueue failed", http.StatusInternalServerError)
		return
	}

	c.String(http.StatusOK, "ok")
}

// POST /tasks/send
func TaskSend(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	err := pipeline.Send(c.Request.Context(), db, conf.LineEndpoint, c.PostForm("to"), c.PostForm("output"))
	if err != nil {
		log.Printf("send: %v", err)
		RespondError(c, "delivery failed", http.StatusBadGateway)
		return
	}

	c.String(http.StatusOK, "ok")
}
