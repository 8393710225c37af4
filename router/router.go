package router

import (
	"log"

	"linerelay/config"
	"linerelay/controllers"
	"linerelay/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares. The /tasks/* group is only
// ever called by the dispatcher, so it skips the request logger — the
// dispatcher already logs every delivery with the task id.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Platform-facing
	r.GET("/callback", controllers.CallbackGet)
	r.POST("/callback", Logger(), controllers.CallbackPost)
	r.GET("/webhook", Logger(), controllers.WebhookVerify)

	// Admin
	r.POST("/admin/config", Logger(), controllers.AdminConfig)
	r.GET("/admin/send/:to/:text", Logger(), controllers.AdminSend)

	// Internal stage endpoints (dispatcher only)
	tasks := r.Group("/tasks")
	tasks.POST("/receive", controllers.TaskReceive)
	tasks.POST("/parse", controllers.TaskParse)
	tasks.POST("/generate", controllers.TaskGenerate)
	tasks.POST("/send", controllers.TaskSend)

	log.Printf("Routes initialized")
}
