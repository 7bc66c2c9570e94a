package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/api"
	"github.com/linesmerrill/storefront-api/api/handlers"
	"github.com/linesmerrill/storefront-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	// initialize store, uploader and router
	if err := a.Initialize(); err != nil {
		zap.S().Fatalw("failed to initialize", "error", err)
	}
	defer a.Close()

	zap.S().Infow("storefront-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
		"store", a.Config.StoreBackend,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), api.TimeoutMiddleware(a.Config.RequestTimeout)(a.Router)))
}
