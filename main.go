package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/lacomanda/comanda/catalog"
	"github.com/lacomanda/comanda/config"
	"github.com/lacomanda/comanda/router"
	"github.com/lacomanda/comanda/services"
	"github.com/lacomanda/comanda/store"
	"github.com/lacomanda/comanda/utils"
)

func main() {
	utils.InitLogger()

	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := cfg.OpenDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database: %v", err)
	}

	st, err := store.Open(db)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load order store: %v", err)
	}

	cat := catalog.Default()

	monitor := services.NewClockMonitor(st)
	monitor.Start()
	defer monitor.Stop()

	r := router.SetupRouter(cfg, st, cat)

	utils.InfoLogger.Infof("Comanda listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		utils.ErrorLogger.Fatalf("Server stopped: %v", err)
	}
}
