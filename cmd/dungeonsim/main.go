// Package main provides the dungeon battle simulator binary: a
// non-interactive battle simulation for CI/CD pipelines that emits a text
// log and an HTML report and signals the outcome through its exit code.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeonsim/internal/config"
	"github.com/cory-johannsen/dungeonsim/internal/game/combat"
	"github.com/cory-johannsen/dungeonsim/internal/game/dice"
	"github.com/cory-johannsen/dungeonsim/internal/game/enemy"
	"github.com/cory-johannsen/dungeonsim/internal/game/hero"
	"github.com/cory-johannsen/dungeonsim/internal/game/ruleset"
	"github.com/cory-johannsen/dungeonsim/internal/observability"
	"github.com/cory-johannsen/dungeonsim/internal/report"
)

// Exit codes form the pipeline contract: CI jobs branch on these.
const (
	exitVictory    = 0
	exitDefeat     = 1
	exitValidation = 2
	exitUnexpected = 3
)

const battleDateLayout = "2006-01-02"

var errInvalidDate = errors.New("battle date must be in YYYY-MM-DD format")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("dungeonsim", flag.ContinueOnError)
	playerName := fs.String("name", "", "the name of the hero")
	heroClass := fs.String("class", "", "the hero class: warrior, mage, or rogue")
	level := fs.Int("level", 0, "the hero level (1-100)")
	hardcore := fs.Bool("hardcore", false, "enable hardcore mode for increased difficulty")
	battleDate := fs.String("date", "", "battle date in YYYY-MM-DD format")
	seed := fs.Int64("seed", 0, "random seed for a reproducible battle (0 = random)")
	configPath := fs.String("config", "", "path to optional configuration file")
	if err := fs.Parse(args); err != nil {
		return exitValidation
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unexpected Error: %v\n", err)
		return exitUnexpected
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unexpected Error: %v\n", err)
		return exitUnexpected
	}
	defer logger.Sync()

	registry, err := buildRegistry(cfg.Battle.ClassesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unexpected Error: %v\n", err)
		return exitUnexpected
	}

	if err := validateDate(*battleDate); err != nil {
		fmt.Fprintf(os.Stderr, "Validation Error: %v\n", err)
		return exitValidation
	}

	h, err := hero.New(*playerName, *heroClass, *level, *hardcore, registry)
	if err != nil {
		if errors.Is(err, hero.ErrEmptyName) || errors.Is(err, hero.ErrInvalidClass) || errors.Is(err, hero.ErrLevelOutOfRange) {
			fmt.Fprintf(os.Stderr, "Validation Error: %v\n", err)
			return exitValidation
		}
		fmt.Fprintf(os.Stderr, "Unexpected Error: %v\n", err)
		return exitUnexpected
	}

	var src dice.Source
	if *seed != 0 {
		src = dice.NewSeededSource(*seed)
		logger.Info("using seeded random source", zap.Int64("seed", *seed))
	} else {
		src = dice.NewCryptoSource()
	}
	roller := dice.NewLoggedRoller(src, logger)

	printBanner(h, *battleDate)

	e := enemy.Generate(h.Level, h.Hardcore, roller)
	session := combat.NewSession(h, e, roller, cfg.Battle.MaxTurns, logger)
	result := session.Run()

	for _, ev := range session.Events() {
		fmt.Println(ev.String())
	}

	fmt.Println()
	fmt.Println("GENERATING REPORTS...")

	now := time.Now()
	if err := report.WriteTextLog(cfg.Report.LogPath, session.Events(), now); err != nil {
		logger.Error("writing text log", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Unexpected Error: %v\n", err)
		return exitUnexpected
	}
	fmt.Printf("Battle log saved to: %s\n", cfg.Report.LogPath)

	data := report.Data{
		Hero:        h,
		Enemy:       e,
		Result:      result,
		Events:      session.Events(),
		BattleDate:  *battleDate,
		SessionID:   session.ID.String(),
		GeneratedAt: now,
	}
	if err := report.WriteHTMLReport(cfg.Report.HTMLPath, data); err != nil {
		logger.Error("writing html report", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Unexpected Error: %v\n", err)
		return exitUnexpected
	}
	fmt.Printf("HTML report saved to: %s\n", cfg.Report.HTMLPath)

	fmt.Println()
	fmt.Println("SIMULATION COMPLETE")

	if result.Victory {
		return exitVictory
	}
	return exitDefeat
}

// buildRegistry resolves the class registry: an override directory when
// configured, the embedded defaults otherwise.
func buildRegistry(classesDir string) (*ruleset.Registry, error) {
	if classesDir == "" {
		return ruleset.DefaultRegistry()
	}
	classes, err := ruleset.LoadClasses(classesDir)
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("no class definitions found in %q", classesDir)
	}
	return ruleset.NewRegistry(classes), nil
}

// validateDate checks the caller-supplied battle date label. The date is
// only used for report labeling; the combat core never sees it.
func validateDate(date string) error {
	if _, err := time.Parse(battleDateLayout, date); err != nil {
		return fmt.Errorf("%w, got %q", errInvalidDate, date)
	}
	return nil
}

// printBanner echoes the run parameters before the battle starts.
func printBanner(h *hero.Hero, battleDate string) {
	hardcoreLabel := "OFF"
	if h.Hardcore {
		hardcoreLabel = "ON"
	}
	fmt.Println("DUNGEON BATTLE SIMULATOR")
	fmt.Printf("Player: %s\n", h.Name)
	fmt.Printf("Class: %s\n", h.Class.Name)
	fmt.Printf("Level: %d\n", h.Level)
	fmt.Printf("Hardcore Mode: %s\n", hardcoreLabel)
	fmt.Printf("Battle Date: %s\n", battleDate)
	fmt.Println()
}
