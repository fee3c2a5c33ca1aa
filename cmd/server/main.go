package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/authorizer/internal/server"
	"github.com/dmitrijs2005/authorizer/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		// fail closed: refuse to serve without a valid user list
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
