// Package main provides the game master demo: it builds dice, decks and coins,
// lets a game master pick one at random, and runs a critical-hit check.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/critcheck/internal/config"
	"github.com/cory-johannsen/critcheck/internal/game/dice"
	"github.com/cory-johannsen/critcheck/internal/game/element"
	"github.com/cory-johannsen/critcheck/internal/game/gamemaster"
	"github.com/cory-johannsen/critcheck/internal/game/inventory"
	"github.com/cory-johannsen/critcheck/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty = defaults and CRIT_ env only")
	inventoryPath := flag.String("inventory", "", "path to inventory YAML; empty = built-in demo inventory")
	elements := flag.String("elements", "", "comma-separated element notation overriding the inventory, e.g. d6,deck:4x13,coin")
	percentage := flag.Float64("percentage", 0, "critical-hit percentage; overrides crit.percentage when set")
	seed := flag.Uint64("seed", 0, "non-zero forces a seeded source with this seed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "percentage" {
			cfg.Crit.Percentage = *percentage
		}
	})
	if *seed != 0 {
		cfg.RNG.Source = "seeded"
		cfg.RNG.Seed = *seed
	}

	logger, err := observability.NewLogger(cfg.Logging, observability.RNGFields(cfg.RNG)...)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	src, err := dice.NewSource(cfg.RNG.Source, cfg.RNG.Seed)
	if err != nil {
		logger.Fatal("creating random source", zap.Error(err))
	}
	rule, err := element.ParseCommitRule(cfg.Coin.CommitRule)
	if err != nil {
		logger.Fatal("parsing coin commit rule", zap.Error(err))
	}
	denominator, err := gamemaster.ParseDenominator(cfg.Crit.Denominator)
	if err != nil {
		logger.Fatal("parsing crit denominator", zap.Error(err))
	}

	var dies, decks, coins []element.Element
	if *elements != "" {
		dies, decks, coins, err = element.ParseList(*elements, src, rule)
		if err != nil {
			logger.Fatal("parsing elements", zap.Error(err))
		}
	} else {
		inv := inventory.Default()
		if *inventoryPath != "" {
			inv, err = inventory.LoadFile(*inventoryPath)
			if err != nil {
				logger.Fatal("loading inventory", zap.Error(err))
			}
		}
		dies, decks, coins, err = inv.Build(src, rule)
		if err != nil {
			logger.Fatal("building inventory", zap.Error(err))
		}
	}
	logger.Info("elements ready",
		zap.Int("dice", len(dies)),
		zap.Int("decks", len(decks)),
		zap.Int("coins", len(coins)),
	)

	gm, err := gamemaster.New(dies, decks, coins, src, logger, gamemaster.WithDenominator(denominator))
	if err != nil {
		logger.Fatal("creating game master", zap.Error(err))
	}

	pool, idx := gm.SelectedPool()
	fmt.Fprintf(os.Stdout, "selected %s (%s #%d)\n", gm.Selected().Name(), pool, idx)

	result := gm.CriticalHit(cfg.Crit.Percentage)
	fmt.Fprintln(os.Stdout, result)
	if result.Hit {
		fmt.Fprintln(os.Stdout, "critical hit succeeded!")
	} else {
		fmt.Fprintln(os.Stdout, "critical hit missed.")
	}

	logger.Info("critical hit check complete",
		zap.String("id", result.ID),
		zap.Bool("hit", result.Hit),
		zap.Duration("elapsed", time.Since(start)),
	)
}
