// inputtapctl is the control utility for inputtapd: it inspects the
// event journal, exports and imports recordings, replays them into the
// running desktop session and posts synthetic input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"inputtap/internal/config"
	"inputtap/internal/ipc"
	"inputtap/internal/store"
	"inputtap/pkg/hook"
	"inputtap/pkg/input"
)

var (
	configPath = flag.String("config", "", "path to config file")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	switch cmd := flag.Arg(0); cmd {
	case "status":
		cmdStatus()
	case "recordings":
		cmdRecordings()
	case "show":
		cmdShow(requireArg(1, "show <recording-id>"))
	case "export":
		output := ""
		if flag.NArg() >= 3 {
			output = flag.Arg(2)
		}
		cmdExport(requireArg(1, "export <recording-id> [output.json]"), output)
	case "import":
		cmdImport(requireArg(1, "import <export.json>"))
	case "replay":
		cmdReplay(requireArg(1, "replay <recording-id> [speed]"))
	case "type":
		cmdType(strings.Join(flag.Args()[1:], " "))
	case "screens":
		cmdScreens()
	case "props":
		cmdProps()
	case "reload":
		cmdReload()
	case "stop":
		cmdStop()
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `inputtapctl - Control utility for inputtapd

Usage: inputtapctl [options] <command> [args]

Commands:
  status                    Show daemon and journal status
  recordings                List journaled recordings
  show <id>                 Print the events of a recording
  export <id> [out.json]    Export a recording as JSON
  import <export.json>      Import an exported recording
  replay <id> [speed]       Replay a recording with original timing
  type <text>               Type text into the focused application
  screens                   List attached monitors
  props                     Show system input properties
  reload                    Ask the daemon to re-read its config
  stop                      Ask the daemon to shut down

Options:
  -config <path>  Path to config file (default: platform config dir)`)
}

func requireArg(n int, form string) string {
	if flag.NArg() < n+1 {
		fmt.Fprintf(os.Stderr, "Usage: inputtapctl %s\n", form)
		os.Exit(1)
	}
	return flag.Arg(n)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func loadConfig() *config.Config {
	path := *configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fatal("loading config: %v", err)
	}
	return cfg
}

func openJournal() *store.Journal {
	cfg := loadConfig()
	j, err := store.OpenWithBusyTimeout(
		cfg.Storage.JournalPath,
		time.Duration(cfg.Storage.BusyTimeoutMs)*time.Millisecond,
	)
	if err != nil {
		fatal("opening journal: %v", err)
	}
	return j
}

func parseRecordingID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		fatal("invalid recording id %q", arg)
	}
	return id
}

func cmdStatus() {
	cfg := loadConfig()

	fmt.Println("=== inputtapd Status ===")
	fmt.Println()

	if client, err := ipc.Dial(); err == nil {
		defer client.Close()
		status, err := client.Status()
		if err != nil {
			fatal("querying daemon: %v", err)
		}
		fmt.Printf("Daemon: RUNNING (PID %d, version %s, up %s)\n",
			status.PID, status.Version, (time.Duration(status.UptimeSeconds) * time.Second).String())
		fmt.Printf("Capture: running=%t captured=%d dropped=%d\n",
			status.CaptureRunning, status.EventsCaptured, status.EventsDropped)
		if status.Recording {
			fmt.Printf("Recording: #%d (%d events journaled)\n", status.RecordingID, status.RecordingEvents)
		} else {
			fmt.Println("Recording: disabled")
		}
		if status.MetricsListening != "" {
			fmt.Printf("Metrics: http://%s/metrics\n", status.MetricsListening)
		}
	} else {
		pidPath := config.GetDefaultPaths().PIDFile
		if pidData, err := os.ReadFile(pidPath); err != nil {
			fmt.Println("Daemon: NOT RUNNING")
		} else {
			pid := strings.TrimSpace(string(pidData))
			fmt.Printf("Daemon: STALE? (PID file says %s, control endpoint unreachable)\n", pid)
		}
	}
	fmt.Println()

	fmt.Println("Journal:")
	if _, err := os.Stat(cfg.Storage.JournalPath); os.IsNotExist(err) {
		fmt.Println("  (no journal database)")
		return
	}
	j := openJournal()
	defer j.Close()

	recordings, err := j.Recordings()
	if err != nil {
		fatal("reading journal: %v", err)
	}
	fmt.Printf("  Path: %s\n", cfg.Storage.JournalPath)
	fmt.Printf("  Recordings: %d\n", len(recordings))
	if info, err := os.Stat(cfg.Storage.JournalPath); err == nil {
		fmt.Printf("  Size: %d bytes\n", info.Size())
	}
}

func cmdRecordings() {
	j := openJournal()
	defer j.Close()

	recordings, err := j.Recordings()
	if err != nil {
		fatal("listing recordings: %v", err)
	}
	if len(recordings) == 0 {
		fmt.Println("No recordings.")
		return
	}

	fmt.Printf("%-6s %-20s %-10s %-8s %s\n", "ID", "STARTED", "DURATION", "EVENTS", "NOTE")
	for i := range recordings {
		r := &recordings[i]
		count, _ := j.EventCount(r.ID)
		duration := "open"
		if r.StoppedNs != nil {
			duration = r.Duration().Round(time.Second).String()
		}
		fmt.Printf("%-6d %-20s %-10s %-8d %s\n",
			r.ID,
			r.Started().Format("2006-01-02 15:04:05"),
			duration,
			count,
			r.Note,
		)
	}
}

func cmdShow(arg string) {
	id := parseRecordingID(arg)
	j := openJournal()
	defer j.Close()

	events, err := j.Events(id)
	if err != nil {
		fatal("reading events: %v", err)
	}
	if len(events) == 0 {
		fmt.Println("No events.")
		return
	}

	start := events[0].Event.When
	for i := range events {
		ev := &events[i].Event
		offset := ev.When.Sub(start).Round(time.Millisecond)
		fmt.Printf("%6d  +%-10s %s\n", events[i].Seq, offset, describeEvent(ev))
	}
}

func describeEvent(ev *input.Event) string {
	switch {
	case ev.Kind == input.HookEnabled:
		return "hook enabled"
	case ev.Kind == input.HookDisabled:
		return "hook disabled"
	case ev.Kind.IsKeyboard():
		return fmt.Sprintf("%-14s code=%#04x raw=%#04x mask=%#04x", kindName(ev.Kind), uint16(ev.Key.Code), ev.Key.Raw, uint16(ev.Mask))
	case ev.Kind == input.MouseWheel:
		return fmt.Sprintf("%-14s rotation=%d amount=%d dir=%d at (%d,%d)", kindName(ev.Kind), ev.Wheel.Rotation, ev.Wheel.Amount, ev.Wheel.Direction, ev.Wheel.X, ev.Wheel.Y)
	default:
		return fmt.Sprintf("%-14s button=%d clicks=%d at (%d,%d) mask=%#04x", kindName(ev.Kind), ev.Mouse.Button, ev.Mouse.Clicks, ev.Mouse.X, ev.Mouse.Y, uint16(ev.Mask))
	}
}

func kindName(k input.Kind) string {
	names := map[input.Kind]string{
		input.KeyTyped:                   "key typed",
		input.KeyPressed:                 "key pressed",
		input.KeyReleased:                "key released",
		input.MouseClicked:               "mouse clicked",
		input.MousePressed:               "mouse pressed",
		input.MouseReleased:              "mouse released",
		input.MouseMoved:                 "mouse moved",
		input.MouseDragged:               "mouse dragged",
		input.MouseWheel:                 "mouse wheel",
		input.MouseMovedRelativeToCursor: "mouse moved rel",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("kind %d", k)
}

func cmdExport(arg, output string) {
	id := parseRecordingID(arg)
	j := openJournal()
	defer j.Close()

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fatal("creating %s: %v", output, err)
		}
		defer f.Close()
		out = f
	}

	if err := j.Export(id, out); err != nil {
		fatal("exporting recording %d: %v", id, err)
	}
	if output != "" {
		fmt.Printf("Exported recording %d to %s\n", id, filepath.Clean(output))
	}
}

func cmdImport(path string) {
	f, err := os.Open(path)
	if err != nil {
		fatal("opening %s: %v", path, err)
	}
	defer f.Close()

	j := openJournal()
	defer j.Close()

	id, err := j.Import(f)
	if err != nil {
		fatal("importing %s: %v", path, err)
	}
	fmt.Printf("Imported as recording %d\n", id)
}

// cmdReplay posts a recording's events back into the session, keeping
// the original inter-event gaps. An optional speed factor compresses
// them: 2 plays twice as fast, 0 plays with no gaps at all.
func cmdReplay(arg string) {
	id := parseRecordingID(arg)

	speed := 1.0
	if flag.NArg() >= 3 {
		var err error
		speed, err = strconv.ParseFloat(flag.Arg(2), 64)
		if err != nil || speed < 0 {
			fatal("invalid speed %q", flag.Arg(2))
		}
	}

	j := openJournal()
	defer j.Close()

	events, err := j.Events(id)
	if err != nil {
		fatal("reading events: %v", err)
	}
	if len(events) == 0 {
		fmt.Println("Nothing to replay.")
		return
	}

	ctx := context.Background()
	posted, skipped := 0, 0
	last := events[0].Event.When
	for i := range events {
		ev := &events[i].Event

		if gap := ev.When.Sub(last); gap > 0 && speed > 0 {
			time.Sleep(time.Duration(float64(gap) / speed))
		}
		last = ev.When

		switch ev.Kind {
		case input.HookEnabled, input.HookDisabled, input.MouseClicked, input.KeyTyped:
			// Lifecycle brackets and derived events are not replayable;
			// presses and releases reproduce what typed events derive from.
			skipped++
			continue
		}

		if err := hook.Post(ctx, ev); err != nil {
			if errors.Is(err, hook.ErrUnsupported) {
				skipped++
				continue
			}
			fatal("posting event %d: %v", events[i].Seq, err)
		}
		posted++
	}
	fmt.Printf("Replayed %d events (%d skipped)\n", posted, skipped)
}

func cmdType(text string) {
	if text == "" {
		fatal("nothing to type")
	}
	if err := hook.PostText(context.Background(), text); err != nil {
		fatal("typing text: %v", err)
	}
}

func cmdReload() {
	client, err := ipc.Dial()
	if err != nil {
		fatal("daemon not reachable: %v", err)
	}
	defer client.Close()

	if err := client.Reload(); err != nil {
		fatal("reload: %v", err)
	}
	fmt.Println("Config reload requested.")
}

func cmdStop() {
	client, err := ipc.Dial()
	if err != nil {
		fatal("daemon not reachable: %v", err)
	}
	defer client.Close()

	if err := client.Shutdown(); err != nil {
		fatal("stop: %v", err)
	}
	fmt.Println("Shutdown requested.")
}

func cmdScreens() {
	screens := hook.Screens()
	if len(screens) == 0 {
		fmt.Println("No screens detected.")
		return
	}
	for _, s := range screens {
		fmt.Printf("Screen %d: %dx%d at (%d,%d)\n", s.Number, s.Width, s.Height, s.X, s.Y)
	}
}

func cmdProps() {
	fmt.Printf("Multi-click time:      %s\n", hook.MultiClickTime())

	if rate, ok := hook.AutoRepeatRate(); ok {
		fmt.Printf("Auto-repeat rate:      %d cps\n", rate)
	} else {
		fmt.Println("Auto-repeat rate:      (not exposed)")
	}
	if delay, ok := hook.AutoRepeatDelay(); ok {
		fmt.Printf("Auto-repeat delay:     %s\n", delay)
	} else {
		fmt.Println("Auto-repeat delay:     (not exposed)")
	}
	if sens, ok := hook.PointerSensitivity(); ok {
		fmt.Printf("Pointer sensitivity:   %d\n", sens)
	} else {
		fmt.Println("Pointer sensitivity:   (not exposed)")
	}
	if mult, threshold, ok := hook.PointerAcceleration(); ok {
		fmt.Printf("Pointer acceleration:  x%d past %d\n", mult, threshold)
	} else {
		fmt.Println("Pointer acceleration:  (not exposed)")
	}
	fmt.Printf("Accessibility trusted: %t\n", hook.AccessibilityTrusted(false))
}