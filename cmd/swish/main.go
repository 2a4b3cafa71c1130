package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/swish/audio"
	"github.com/lixenwraith/swish/config"
	"github.com/lixenwraith/swish/constants"
	"github.com/lixenwraith/swish/engine"
	"github.com/lixenwraith/swish/events"
	"github.com/lixenwraith/swish/game"
	"github.com/lixenwraith/swish/input"
	"github.com/lixenwraith/swish/logging"
	"github.com/lixenwraith/swish/physics"
	"github.com/lixenwraith/swish/render"
	"github.com/lixenwraith/swish/store"
	"github.com/lixenwraith/swish/vmath"
)

// gesturePixelsPerCell maps cell coordinates onto the pixel scale the
// gesture tuning expects: a one-cell wiggle stays below the minimum
// swipe, a ten-cell pull reaches full force
const gesturePixelsPerCell = 20.0

var (
	configFlag = flag.String("config", "", "config file path (default: swish.json in the working directory)")
	muteFlag   = flag.Bool("mute", false, "start with sound off")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// tcell owns the terminal, so the logger defaults to a file
	if cfg.Log.File == "" {
		cfg.Log.File = "swish.log"
	}
	log, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	scores, err := store.New(cfg.Store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer scores.Close()

	if err := run(cfg, log, scores); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger, scores store.HighScores) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen create: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}

	// Restore the terminal before the panic surfaces, or the trace
	// lands on a raw-mode screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "swish crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.
		Background(render.RgbBackground).
		Foreground(render.RgbHudText))

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Start(); err != nil {
		// Silent mode, the game itself is unaffected
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer player.Stop()
	if *muteFlag {
		player.ToggleMute()
	}

	clock := engine.NewPausableClock(engine.NewSystemClock())
	world := physics.NewWorld(vmath.Vec3{Y: cfg.Court.Gravity})
	queue := events.NewQueue()

	session, err := game.NewSession(cfg, log, clock, world, queue, scores)
	if err != nil {
		return fmt.Errorf("session build: %w", err)
	}
	defer session.Dispose()
	session.Register(audio.NewCueHandler(player))

	tracker := input.NewTracker(queue, clock, cfg.Game)
	renderer := render.NewRenderer(screen)

	log.Info().
		Str("store", cfg.Store.Backend).
		Bool("audio", player.Enabled()).
		Msg("swish starting")

	// Input polling cannot share the frame loop goroutine; it blocks
	// on the terminal
	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "event poller crashed: %v\n", r)
				fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized, normal shutdown
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
					paused := session.TogglePause()
					log.Debug().Bool("paused", paused).Msg("pause toggled")
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'm':
					on := player.ToggleMute()
					log.Debug().Bool("sound", on).Msg("mute toggled")
				}

			case *tcell.EventMouse:
				x, y := ev.Position()
				p := vmath.Vec2{
					X: float64(x) * gesturePixelsPerCell,
					Y: float64(y) * gesturePixelsPerCell,
				}
				switch {
				case ev.Buttons()&tcell.Button1 != 0:
					if tracker.Active() {
						tracker.Move(p)
					} else {
						tracker.Start(p)
					}
				case tracker.Active():
					tracker.End(p)
				}

			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
				screen.Sync()
			}

		case <-frameTicker.C:
			session.Tick()
			renderer.RenderFrame(session.Snapshot(), dragState(tracker), clock.Now())
		}
	}
}

// dragState converts the tracker's pixel-scaled swipe back to cell
// coordinates for the overlay
func dragState(t *input.Tracker) render.DragState {
	start, current, active := t.Track()
	if !active {
		return render.DragState{}
	}
	return render.DragState{
		StartX: int(start.X / gesturePixelsPerCell),
		StartY: int(start.Y / gesturePixelsPerCell),
		X:      int(current.X / gesturePixelsPerCell),
		Y:      int(current.Y / gesturePixelsPerCell),
		Active: true,
	}
}
