package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sellit-io/sellit/internal/common"
)

func (a *App) SafetyQueue(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	queue, err := a.messageService.SafetyQueue(ctx, a.current)
	if err != nil {
		if errors.Is(err, common.ErrForbidden) {
			fmt.Println("Admins only")
		} else {
			log.Printf("error: %v", err)
		}
		return
	}
	if len(queue) == 0 {
		fmt.Println("Safety queue is empty")
		return
	}
	for _, m := range queue {
		state := "reported"
		if m.IsBlocked {
			state = "blocked"
		}
		fmt.Printf("%s  [%s]  from %s to %s: %s (reason: %s)\n",
			m.ID, state, m.SenderID, m.ReceiverID, m.MessageText, m.ReportReason)
	}
}

func (a *App) DismissFlags(ctx context.Context, id string) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	if err := a.messageService.DismissFlags(ctx, a.current, id); err != nil {
		switch {
		case errors.Is(err, common.ErrForbidden):
			fmt.Println("Admins only")
		case errors.Is(err, common.ErrNotFound):
			fmt.Println("No such message")
		default:
			log.Printf("error: %v", err)
		}
		return
	}
	fmt.Println("Flags dismissed")
}

func (a *App) ShowLogs(ctx context.Context) {
	entries, err := a.auditService.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("Audit log is empty")
		return
	}
	for _, e := range entries {
		fmt.Printf("[%s] %-5s %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Level, e.Event)
		if e.UserID != "" {
			fmt.Printf(" user=%s", e.UserID)
		}
		if e.Details != "" {
			fmt.Printf(" (%s)", e.Details)
		}
		fmt.Println()
	}
}

func (a *App) ClearLogs(ctx context.Context) {
	if err := a.auditService.Clear(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Println("Audit log cleared")
}
