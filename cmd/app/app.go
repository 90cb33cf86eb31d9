package main

import (
	"os"

	"github.com/maison-aurelle/storefront/internal/app"
	config "github.com/maison-aurelle/storefront/internal/cfg"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

//	@title			Maison Aurelle Storefront API
//	@version		1.0
//	@description	API витрины: каталог, корзина, чекаут, избранное и дашборд продавца.
//	@host			localhost:8080
//	@BasePath		/api/v1
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
