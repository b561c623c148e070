package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/supernova/audio"
	"github.com/lixenwraith/supernova/constants"
	"github.com/lixenwraith/supernova/engine"
	"github.com/lixenwraith/supernova/render"
	"github.com/lixenwraith/supernova/server"
	"github.com/lixenwraith/supernova/sim"
	"github.com/lixenwraith/supernova/terminal"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	asciiFlag     = flag.Bool("ascii", false, "Write plain frames to stdout instead of drawing a screen")
	serveFlag     = flag.String("serve", "", "Stream frames to websocket viewers on this address (e.g. :8080)")
	muteFlag      = flag.Bool("mute", false, "Start with transition tones off")
	debugFlag     = flag.Bool("debug", false, "Write debug logs to logs/supernova.log")
)

func main() {
	// Panic recovery: restore the terminal even if the animation crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mSUPERNOVA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	eng := engine.New(rng)

	audioEngine := audio.NewEngine(*muteFlag)
	if err := audioEngine.Start(); err != nil {
		fmt.Printf("Audio start failed: %v (continuing without audio)\n", err)
	} else {
		defer audioEngine.Stop()
	}
	if !audioEngine.IsEnabled() && !audioEngine.IsMuted() {
		log.Println("speaker unavailable, continuing without audio")
	}

	eng.Star().TransitionHook = func(from, to sim.Phase) {
		log.Printf("phase %v -> %v", from, to)
		audioEngine.Play(phaseCue(to))
	}

	var hub *server.Hub
	if *serveFlag != "" {
		hub = server.NewHub()
		srv := server.New(*serveFlag, hub)

		serverCtx, stopServer := context.WithCancel(context.Background())
		defer stopServer()
		go func() {
			if err := srv.Run(serverCtx); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()
		log.Printf("streaming on ws://%s/watch", srv.Addr())
	}

	if *asciiFlag {
		if err := runText(eng, hub); err != nil {
			fmt.Fprintf(os.Stderr, "supernova: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runScreen(eng, audioEngine, hub, resolveColorMode()); err != nil {
		fmt.Fprintf(os.Stderr, "supernova: %v\n", err)
		os.Exit(1)
	}
}

// resolveColorMode maps the color flag onto a capability, probing the
// environment for auto
func resolveColorMode() terminal.ColorMode {
	switch *colorModeFlag {
	case "256":
		return terminal.ColorMode256
	case "truecolor", "true", "24bit":
		return terminal.ColorModeTrueColor
	default:
		return terminal.DetectColorMode()
	}
}

// phaseCue picks the tone announcing entry into a phase
func phaseCue(p sim.Phase) audio.Cue {
	switch p {
	case sim.PhaseCollapse:
		return audio.CueCollapse
	case sim.PhaseBounce:
		return audio.CueBounce
	case sim.PhaseExplosion:
		return audio.CueExplosion
	case sim.PhaseNebula:
		return audio.CueNebula
	default:
		return audio.CueGiant
	}
}

// composeSink pairs the local display with the broadcast hub when
// streaming is on
func composeSink(primary render.Sink, hub *server.Hub) render.Sink {
	if hub == nil {
		return primary
	}
	return render.MultiSink{primary, hub}
}

// runText drives the animation onto stdout, one ANSI-cleared frame
// per tick, until interrupted
func runText(eng *engine.Engine, hub *server.Hub) error {
	stop := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		close(stop)
	}()

	return eng.Run(stop, composeSink(render.NewTextSink(os.Stdout), hub))
}

// runScreen draws on a tcell screen until the user quits
func runScreen(eng *engine.Engine, audioEngine *audio.Engine, hub *server.Hub, colorMode terminal.ColorMode) error {
	terminal.ApplyColorMode(colorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init failed: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init failed: %w", err)
	}
	defer screen.Fini()

	sink := render.NewScreenSink(screen)
	sink.SetStatus(func() string {
		star := eng.Star()
		return fmt.Sprintf(" %s  t=%.1fs  ejecta %d  [q quit, m mute] ",
			star.Phase, star.PhaseTime, star.Ejecta.AliveCount())
	})

	eventChan := make(chan tcell.Event, 100)
	// Input polling interacts directly with the terminal
	go func() {
		// Panic recovery for the poller so the terminal is never left raw
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Fini closes the event stream with a nil event
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	out := composeSink(sink, hub)
	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(tev) {
					return nil
				}
				if tev.Key() == tcell.KeyRune && (tev.Rune() == 'm' || tev.Rune() == 'M') {
					audioEngine.ToggleMute()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if err := out.Flush(eng.Tick(constants.TickSeconds)); err != nil {
				return err
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
