// Command sand-term runs the falling-sand world inside a terminal using
// termbox. One terminal cell draws one grid cell; the top line shows the
// current selection.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"sandbox/internal/app"
	"sandbox/internal/core"
	"sandbox/internal/render"
	"sandbox/internal/sims/sand"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

func main() {
	fs := flag.NewFlagSet("sand-term", flag.ExitOnError)
	logPath := fs.String("log-file", "sand-term.log", "file receiving log output while the terminal is in use")
	cfg := app.NewConfig()
	if err := cfg.Parse(fs, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "open log file %s", *logPath))
		os.Exit(1)
	}
	defer logFile.Close()
	logger := cfg.Logger(logFile)

	if err := run(cfg, logger); err != nil {
		logger.Error("terminal host failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, logger *slog.Logger) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.Output256)

	termW, termH := termbox.Size()
	simCfg := sand.FromMap(cfg.SimOptions())
	simCfg.Width = min(simCfg.Width, termW)
	simCfg.Height = min(simCfg.Height, termH-1)
	world := sand.NewWithConfig(simCfg)
	session := app.NewSession(world, cfg.Brush, logger)
	size := world.Size()
	logger.Info("starting", "w", size.W, "h", size.H, "tps", cfg.TPS, "seed", simCfg.Seed)

	events := make(chan termbox.Event, 64)
	go func() {
		for {
			ev := termbox.PollEvent()
			events <- ev
			if ev.Type == termbox.EventInterrupt {
				return
			}
		}
	}()

	stepper := core.NewFixedStep(cfg.TPS)
	poll := time.NewTicker(stepper.Interval() / 4)
	defer poll.Stop()

	for {
		select {
		case ev := <-events:
			quit, err := handleEvent(session, ev, cfg.Seed)
			if err != nil {
				return err
			}
			if quit {
				termbox.Interrupt()
				logger.Info("quit", "ticks", world.Ticks(), "census", world.Census().String())
				return nil
			}
		case <-poll.C:
		}
		if stepper.ShouldStep() {
			session.Frame()
			if err := draw(session); err != nil {
				return err
			}
		}
	}
}

func handleEvent(s *app.Session, ev termbox.Event, seed int64) (bool, error) {
	switch ev.Type {
	case termbox.EventError:
		return false, errors.Wrap(ev.Err, "terminal event")
	case termbox.EventKey:
		switch {
		case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q':
			return true, nil
		case ev.Key == termbox.KeySpace:
			s.TogglePause()
		case ev.Ch == 'n':
			s.StepOnce()
		case ev.Ch == 'r':
			s.Reset(seed)
		default:
			s.SelectKey(ev.Ch)
		}
	case termbox.EventMouse:
		if ev.Key == termbox.MouseLeft {
			// Row 0 is the status line.
			if x, y, ok := app.ScreenToCell(ev.MouseX, ev.MouseY-1, 1); ok {
				s.Paint(x, y)
			}
		}
	}
	return false, nil
}

func draw(s *app.Session) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return errors.Wrap(err, "clear terminal")
	}
	world := s.World()
	size := world.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			bg := termbox.Attribute(render.Xterm256(world.ColorAt(x, y)) + 1)
			termbox.SetCell(x, y+1, ' ', termbox.ColorDefault, bg)
		}
	}

	status := s.Label()
	if s.Paused() {
		status += " [paused]"
	}
	status += "  " + world.Census().String()
	for i, r := range []rune(status) {
		termbox.SetCell(i, 0, r, termbox.ColorWhite|termbox.AttrBold, termbox.ColorDefault)
	}
	return errors.Wrap(termbox.Flush(), "flush terminal")
}
