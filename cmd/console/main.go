package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ArchitSaxena349/credit-approval-system/internal/cli"
	"github.com/ArchitSaxena349/credit-approval-system/internal/config"
	"github.com/ArchitSaxena349/credit-approval-system/internal/creditapi"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	client, err := creditapi.NewClient(cfg.CreditAPIBaseURL, cfg.CreditAPITimeout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid credit api configuration:", err)
		os.Exit(1)
	}

	fmt.Printf("Credit Approval System console (%s)\n", cfg.CreditAPIBaseURL)
	ui := cli.NewUI(client, bufio.NewReader(os.Stdin), os.Stdout)
	ui.Run(context.Background())
}
