package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pony/internal/catch"
	"pony/internal/clock"
	"pony/internal/config"
	"pony/internal/game"
	"pony/internal/race"
	"pony/internal/schedule"
	"pony/internal/store"
	"pony/internal/ui"
)

type options struct {
	store     string
	dataFile  string
	showStats bool
	playCatch bool
	playRace  bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pony", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.store, "store", "", "save backend: json, sqlite, memory or postgres")
	fs.StringVar(&opts.dataFile, "data", "", "save file for the json and sqlite backends")
	fs.BoolVar(&opts.showStats, "stats", false, "show the stats card and exit")
	fs.BoolVar(&opts.playCatch, "catch", false, "play one round of Catch Hay and exit")
	fs.BoolVar(&opts.playRace, "race", false, "bet fragments at the Horse Race and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// apply lets command line flags override the environment
func (o options) apply(cfg *config.Config) {
	if o.store != "" {
		cfg.Store = o.store
	}
	if o.dataFile != "" {
		cfg.DataFile = o.dataFile
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	opts.apply(&cfg)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	if err := cfg.Resolve(home); err != nil {
		return err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	logFile, err := tea.LogToFile(cfg.LogFile, "pony")
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logFile.Close()

	kv, err := store.NewByEngine(cfg.Store, cfg.DataFile, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if closer, ok := kv.(io.Closer); ok {
		defer closer.Close()
	}
	log.Printf("Using %s store", cfg.Store)

	rng := newRand(cfg.Seed)
	session := game.Open(clock.New(), kv, rng)

	switch {
	case opts.showStats:
		if !session.Adopted() {
			fmt.Println("No pony yet. Run pony to adopt one!")
			return nil
		}
		return ui.DisplayStats(session)
	case opts.playCatch:
		return playCatch(session, rng)
	case opts.playRace:
		return playRace(session, rng)
	}

	sched, err := schedule.New(clock.New())
	if err != nil {
		return err
	}
	defer func() {
		if err := sched.Shutdown(); err != nil {
			log.Printf("Error stopping scheduler: %v", err)
		}
	}()

	model := ui.NewModel(session, ui.Options{
		Timers:       sched,
		IdleInterval: cfg.IdleInterval,
		Rand:         rng,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := sched.Every("decay", cfg.DecayInterval, func() {
		program.Send(ui.RefreshMsg{})
	}); err != nil {
		return err
	}
	sched.Start()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func playCatch(session *game.Session, rng *rand.Rand) error {
	res, err := catch.Run(rng)
	if err != nil {
		return err
	}

	session.CompleteMiniGame(game.MiniGameResult{Score: res.Score, Fragments: res.Fragments})
	best := ""
	if session.RecordCatchScore(res.Score) {
		best = " New best!"
	}
	fmt.Printf("Caught hay for %d points (max combo %d), +%d fragments.%s\n",
		res.Score, res.MaxCombo, res.Fragments, best)
	return nil
}

func playRace(session *game.Session, rng *rand.Rand) error {
	before := session.Fragments().Count()
	balance, err := race.Run(before, rng)
	if err != nil {
		return err
	}
	if _, err := session.SettleWager(balance); err != nil {
		return err
	}
	fmt.Printf("Left the races with %d fragments (was %d).\n", balance, before)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
