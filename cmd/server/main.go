package main

import (
	"log"
	"net/http"

	"github.com/DilerFeed/CodeEmpire/internal/config"
	"github.com/DilerFeed/CodeEmpire/internal/serverapp"
)

func main() {
	cfg, err := config.ServerFromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	balance := config.BalanceFromEnv()

	handler, err := serverapp.NewHandler(serverapp.Options{
		Server:  cfg,
		Balance: balance,
		Logger:  log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("codeempire listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
