package main

import (
	"log"
	"os"

	"linerelay/config"
	"linerelay/controllers"
	dbpkg "linerelay/db"
	"linerelay/router"
	"linerelay/workers"

	"github.com/gin-gonic/gin"
)

func main() {
	path := "config.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg := config.Get(path)

	dbpkg.SetConfigurations(cfg)
	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	controllers.SetConfigurations(cfg)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg)

	dispatcher := workers.NewDispatcher(database, cfg)
	dispatcher.Start()

	log.Printf("linerelay listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}
