package main

import (
	"github.com/dixieflatline76/Stencil/config"
	"github.com/dixieflatline76/Stencil/ui"
	"github.com/dixieflatline76/Stencil/util/log"
)

func main() {
	ok, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single instance lock: %v", err)
	}
	if !ok {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	log.Printf("Starting %s %s", config.AppName, config.AppVersion)
	ui.NewStencilApp().Start()
}
