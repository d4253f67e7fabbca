package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"oceandefender/game"
	"oceandefender/pilot"
	"oceandefender/screen"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used for missing values)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	autopilot := flag.Bool("autopilot", false, "start with the autopilot flying")
	script := flag.String("script", "", "JavaScript pilot file, or \"example\" for the built-in one")
	mute := flag.Bool("mute", false, "start muted")
	profile := flag.Bool("profile", false, "capture CPU profile and trace on FPS drops")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log := newLogger(*logLevel)

	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = game.LoadConfig(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	session := game.NewSession(config, game.NewRand(*seed), log)

	opts := screen.Options{Autopilot: *autopilot, Mute: *mute}
	if *script != "" {
		code, err := pilot.LoadScript(*script)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load pilot script")
		}
		sp, err := pilot.NewScriptPilot(code, log)
		if err != nil {
			log.Fatal().Err(err).Str("script", *script).Msg("invalid pilot script")
		}
		opts.Pilot = sp
		opts.Autopilot = true
	}
	if *profile {
		p, err := screen.NewProfiler("profiles", log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up profiler")
		}
		opts.Profiler = p
	}

	g := screen.NewGame(session, game.NewRand(*seed+1), opts, log)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Ocean Defender")
	ebiten.SetWindowResizable(true)

	log.Info().Int64("seed", *seed).Bool("autopilot", opts.Autopilot).Msg("starting game loop")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}
