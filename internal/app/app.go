package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	gildedrose "github.com/liolin/gildedrose-refactoring-kata"
)

// ErrNegativeDays is returned when -days is below zero.
var ErrNegativeDays = errors.New("days must not be negative")

// Config captures CLI flags so the simulation can run with a single Run call.
type Config struct {
	days          int
	cataloguePath string
	summary       bool
	verbose       bool
}

// Run loads the catalogue, then prints and advances the shop for days 0..N.
func Run(ctx context.Context, args []string, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if logger == nil {
		logger = NewLogger(os.Stderr, cfg.verbose)
	}

	entries, err := loadEntries(cfg.cataloguePath)
	if err != nil {
		return err
	}

	items, err := gildedrose.BuildItems(entries)
	if err != nil {
		return fmt.Errorf("unable to build items: %w", err)
	}
	shop := gildedrose.NewShop(items...)
	for _, item := range shop.Items() {
		logger.Debug("stocked item", "id", item.ID, "name", item.Name, "kind", item.Kind(), "sell_in", item.SellIn, "quality", item.Quality)
	}

	logger.Info("starting simulation", "days", cfg.days, "items", len(items), "catalogue", catalogueSource(cfg.cataloguePath))

	out := bufio.NewWriter(stdout)
	if err := simulate(ctx, out, shop, cfg, logger); err != nil {
		_ = out.Flush()
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	logger.Info("simulation finished", "days", cfg.days)
	return nil
}

// NewLogger builds the text logger used by the CLI.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func simulate(ctx context.Context, out io.Writer, shop *gildedrose.Shop, cfg Config, logger *slog.Logger) error {
	fmt.Fprintln(out, "OMGHAI!")

	for day := 0; day <= cfg.days; day++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(out, "-------- day %d --------\n", day)
		fmt.Fprintln(out, "name, sellIn, quality")
		for _, item := range shop.Items() {
			fmt.Fprintln(out, item.String())
		}
		if cfg.summary {
			sum := shop.Summary()
			fmt.Fprintf(out, "summary: items=%d expired=%d total_quality=%d average_quality=%s\n",
				sum.Items, sum.Expired, sum.TotalQuality, sum.AverageQuality.StringFixed(2))
		}
		fmt.Fprintln(out)

		shop.UpdateQuality()
		logger.Debug("advanced day", "day", day)
	}

	return nil
}

func loadEntries(path string) ([]gildedrose.CatalogueEntry, error) {
	if path == "" {
		return gildedrose.DefaultCatalogue(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open catalogue: %w", err)
	}
	defer file.Close()

	entries, err := gildedrose.LoadCatalogue(file)
	if err != nil {
		return nil, fmt.Errorf("unable to load catalogue %s: %w", path, err)
	}
	return entries, nil
}

func catalogueSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}

// parseFlags uses a dedicated FlagSet so Run can be called from tests.
func parseFlags(args []string) (Config, error) {
	set := flag.NewFlagSet("gildedrose", flag.ContinueOnError)
	set.SetOutput(io.Discard)

	var cfg Config
	set.IntVar(&cfg.days, "days", 30, "Number of days to simulate after day 0.")
	set.StringVar(&cfg.cataloguePath, "catalogue", "", "YAML catalogue file; defaults to the built-in stock.")
	set.BoolVar(&cfg.summary, "summary", false, "Print a stock summary after each day.")
	set.BoolVar(&cfg.verbose, "v", false, "Enable debug logging.")

	if err := set.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.days < 0 {
		return Config{}, fmt.Errorf("%w: %d", ErrNegativeDays, cfg.days)
	}
	return cfg, nil
}
