// Command quote prints current Upbit quotes for the markets given as arguments.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/upbit-quotation/internal/app"
	"github.com/samvad-hq/upbit-quotation/internal/config"
	"github.com/samvad-hq/upbit-quotation/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "quote: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	full := fs.Bool("full", false, "print full ticker objects instead of trade prices")
	if err := fs.Parse(args); err != nil {
		return err
	}
	markets := fs.Args()
	if len(markets) == 0 {
		return fmt.Errorf("usage: quote [-full] MARKET [MARKET...]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if _, err := logger.InitTo(cfg, os.Stderr); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	client, err := app.NewQuotationClient(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.DebugObj("quote request", "quote_request", map[string]any{
		"markets": markets,
		"full":    *full,
	})

	var out any
	if *full {
		out, err = client.Ticker(ctx, markets...)
	} else {
		out, err = pricesByMarket(ctx, client, markets)
	}
	if err != nil {
		logger.ErrorObj("quote request failed", "error", err.Error())
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
