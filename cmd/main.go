package main

import (
	"log"

	"github.com/campushub/club-directory/cmd/app"
	"github.com/campushub/club-directory/internal/adapters/config"
	setupHTTP "github.com/campushub/club-directory/internal/adapters/controller/http/setup"
)

func main() {
	cfg := config.Get()
	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	if err = setupHTTP.Setup(a); err != nil {
		log.Panic(err)
	}

	a.Start()
}
