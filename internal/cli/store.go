package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sellit-io/sellit/internal/bus"
)

// SetSandbox flips the namespace switch. The current login does not carry
// over: the session key lives inside a namespace, so the other namespace has
// its own (or no) session.
func (a *App) SetSandbox(ctx context.Context, mode string) {
	var on bool
	switch mode {
	case "on":
		on = true
	case "off":
		on = false
	default:
		fmt.Println("Usage: sandbox <on|off>")
		return
	}

	if err := a.gw.SetSandbox(on); err != nil {
		log.Printf("error: %v", err)
		return
	}
	a.current = nil
	if u, err := a.authService.Current(ctx); err == nil {
		a.current = u
	}

	if on {
		fmt.Println("Sandbox namespace active; production data is out of reach")
	} else {
		fmt.Println("Production namespace active")
	}
}

// Watch subscribes to the change bus and prints every event until the user
// presses Enter. With the file backend, writes made by other processes on the
// same data directory show up here too.
func (a *App) Watch(ctx context.Context) {
	cancel := a.gw.Changes().Subscribe(func(e bus.Event) {
		fmt.Printf("changed: %s\n", e.Key)
	})
	defer cancel()

	fmt.Println("Watching for changes (press Enter to stop)")
	_, _ = a.reader.ReadString('\n')
}

// Reset wipes every collection in the active namespace.
func (a *App) Reset(ctx context.Context) {
	confirm, err := GetSimpleText(a.reader, "Type 'yes' to wipe the active namespace", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if confirm != "yes" {
		fmt.Println("Aborted")
		return
	}

	if err := a.gw.ClearNamespace(); err != nil {
		log.Printf("error: %v", err)
		return
	}
	a.current = nil
	fmt.Println("Namespace cleared")
}
