package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"oceandefender/game"
	"oceandefender/pilot"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used for missing values)")
	seed := flag.Int64("seed", 1, "random seed of the first run; run i uses seed+i")
	runs := flag.Int("runs", 1, "number of sessions to play")
	ticks := flag.Int("ticks", 36000, "tick limit per run, 0 for no limit")
	parallel := flag.Int("parallel", 4, "maximum runs played at the same time")
	script := flag.String("script", "", "JavaScript pilot file, or \"example\" for the built-in one")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()

	config := game.DefaultConfig()
	if *configPath != "" {
		if config, err = game.LoadConfig(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	var code string
	if *script != "" {
		if code, err = pilot.LoadScript(*script); err != nil {
			log.Fatal().Err(err).Msg("failed to load pilot script")
		}
		if err := pilot.ValidateScript(code); err != nil {
			log.Fatal().Err(err).Str("script", *script).Msg("invalid pilot script")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	results := make([]game.Stats, *runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*parallel, 1))
	for i := 0; i < *runs; i++ {
		i := i
		runSeed := *seed + int64(i)
		runLog := log.With().Int("run", i).Int64("seed", runSeed).Logger()

		g.Go(func() error {
			var p pilot.Pilot = pilot.NewAutopilot()
			if code != "" {
				sp, err := pilot.NewScriptPilot(code, runLog)
				if err != nil {
					return err
				}
				p = sp
			}

			s := game.NewSession(config, game.NewRand(runSeed), runLog)
			stats, err := pilot.Fly(ctx, s, p, *ticks)
			if err != nil {
				return err
			}

			runLog.Info().
				Int("score", stats.Score).
				Int("lives", stats.Lives).
				Int("ticks", stats.Ticks).
				Int("destroyed", stats.HazardsDestroyed).
				Int("escaped", stats.HazardsEscaped).
				Int("buffs", stats.BuffsCollected).
				Msg("run finished")

			results[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("headless runs failed")
	}

	best, total := 0, 0
	for _, r := range results {
		total += r.Score
		best = max(best, r.Score)
	}
	log.Info().
		Int("runs", *runs).
		Int("best_score", best).
		Float64("mean_score", float64(total)/float64(max(*runs, 1))).
		Dur("elapsed", time.Since(started)).
		Msg("all runs finished")
}
