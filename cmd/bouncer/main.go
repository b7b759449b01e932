package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/bouncer/audio"
	"github.com/lixenwraith/bouncer/engine"
	"github.com/lixenwraith/bouncer/input"
	"github.com/lixenwraith/bouncer/physics"
	"github.com/lixenwraith/bouncer/scene"
	"github.com/lixenwraith/bouncer/status"
	"github.com/lixenwraith/bouncer/terminal"
)

var (
	sceneFlag = flag.String("scene", "", "Scene file (TOML); built-in scene when empty")
	logFlag   = flag.String("log", "", "Write log output to this file")
	muteFlag  = flag.Bool("mute", false, "Disable bounce sounds")
	dumpFlag  = flag.Bool("dump-scene", false, "Print the resolved scene as TOML and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mBOUNCER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bouncer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	sc := scene.Default()
	if *sceneFlag != "" {
		loaded, err := scene.Load(*sceneFlag)
		if err != nil {
			return err
		}
		sc = loaded
	}

	if *dumpFlag {
		return sc.Encode(os.Stdout)
	}

	// The terminal surface owns the tty while running
	logOut := io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log.SetOutput(logOut)
	defer log.SetOutput(os.Stderr)

	viewport, err := sc.ViewportSize()
	if err != nil {
		return err
	}
	bindings, err := sc.Bindings()
	if err != nil {
		return err
	}
	balls, err := sc.Build(bindings)
	if err != nil {
		return err
	}

	reg := status.NewRegistry()

	// Audio is optional
	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(*muteFlag)
	sound.CountInto(reg.Ints.Get(status.KeySounds))
	reg.Bools.Get(status.KeyAudio).Store(sound.Enabled() && !*muteFlag)

	eng, err := engine.New(viewport, physics.DefaultConfig(),
		engine.WithSurface(terminal.Opener(reg)),
		engine.WithMetrics(reg),
		engine.WithExitKeys(bindings.Keys(input.ActionQuit)...),
		engine.WithContactHandler(func(_ engine.Entity, c physics.Contact) {
			sound.PlayBounce(c.ImpactSpeed())
		}),
	)
	if err != nil {
		return err
	}
	for _, b := range balls {
		if err := eng.Register(b); err != nil {
			return err
		}
	}

	log.Printf("Starting %q: %dx%d, %d ball(s)", sc.Title, viewport.Width, viewport.Height, len(balls))
	runErr := eng.Run(sc.Title)
	log.Printf("Stopped: %s", reg.Summary())
	return runErr
}
