package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code
func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stdout, config.Usage())
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n%s", err, config.Usage())
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	applyColorMode(cfg.ColorMode)
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetScreen(screen)

	err = play(cfg, screen)
	screen.Fini()
	core.SetScreen(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		return 1
	}
	return 0
}

// applyColorMode steers tcell's palette detection before the screen is created
func applyColorMode(mode config.ColorMode) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

// play wires the game to the screen and blocks until quit
func play(cfg config.Config, screen tcell.Screen) error {
	var sounds engine.Sounds = audio.Silent{}
	var sm *audio.SoundManager
	if !cfg.Mute {
		sm = audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("[AUDIO] initialization failed: %v (continuing without audio)", err)
			sm = nil
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	lcd := render.NewLCD()
	lock := render.NewDrawLock()
	leds := &render.LEDBank{}
	reg := status.NewRegistry()
	term := input.NewTerminal(screen, input.DefaultKeyTable())

	game, err := engine.NewGame(engine.Deps{
		Display:  lcd,
		Lock:     lock,
		LEDs:     leds,
		Pot:      term.Potentiometer(),
		Joystick: term.Joystick(),
		Button:   term.Button(),
		Sounds:   sounds,
		Registry: reg,
	}, engine.Options{})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	presenter := render.NewPresenter(screen, lcd, lock, leds)
	presenter.CountDrops(reg.Ints.Get(engine.MetricPresenterDropped))
	gameDropped := reg.Ints.Get(engine.MetricDropped)
	presenter.SetStatus(func() string {
		s := game.Snapshot()
		return fmt.Sprintf("%s  speed %d  match %.8s  dropped %d/%d  [m]ute [q]uit",
			s.Phase, s.Speed, s.MatchID, gameDropped.Load(), presenter.Dropped())
	})
	term.OnSpeed(game.ToggleSpeed)
	term.OnResize(presenter.Sync)
	if sm != nil {
		term.OnMute(func() {
			muted := !sm.Muted()
			sm.SetMuted(muted)
			log.Printf("[AUDIO] muted=%v", muted)
		})
	}

	root, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	root, cancel := context.WithCancel(root)
	defer cancel()

	eg, ctx := errgroup.WithContext(root)
	eg.Go(core.Guard("game", func() error { return game.Run(ctx) }))
	eg.Go(core.Guard("presenter", func() error { return presenter.Run(ctx, constants.FrameUpdateInterval) }))
	eg.Go(core.Guard("input", func() error { return term.Poll(ctx) }))
	if cfg.StatusAddr != "" {
		router := status.NewRouter(reg, func() any { return game.Snapshot() })
		eg.Go(core.Guard("status", func() error { return status.Serve(ctx, cfg.StatusAddr, router) }))
	}
	eg.Go(func() error {
		select {
		case <-ctx.Done():
		case <-term.Quit():
		}
		log.Printf("[MAIN] shutting down")
		cancel()
		// Wakes the event loop blocked in PollEvent
		screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	return eg.Wait()
}
