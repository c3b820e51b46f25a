package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/policy"
)

func (a *App) SendMessage(ctx context.Context, to string) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	receiver, err := a.resolveUser(ctx, to)
	if err != nil {
		fmt.Println("No such user:", to)
		return
	}

	ideaID, err := GetSimpleText(a.reader, "Related idea id (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	text, err := GetSimpleText(a.reader, "Enter message", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	_, err = a.messageService.Send(ctx, a.current, receiver.ID, ideaID, text)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyMessage):
			fmt.Println("Message is empty")
		case errors.Is(err, common.ErrPolicyBlocked):
			fmt.Println(policy.Warning)
		default:
			log.Printf("error: %v", err)
		}
		return
	}
	fmt.Println("Sent")
}

func (a *App) ShowConversation(ctx context.Context, with string) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	other, err := a.resolveUser(ctx, with)
	if err != nil {
		fmt.Println("No such user:", with)
		return
	}

	conv, err := a.messageService.Conversation(ctx, a.current.ID, other.ID)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(conv) == 0 {
		fmt.Println("No messages yet")
		return
	}
	for _, m := range conv {
		who := other.FullName
		if m.SenderID == a.current.ID {
			who = "you"
		}
		flag := ""
		if m.Flagged() {
			flag = " [flagged]"
		}
		fmt.Printf("[%s] %s: %s%s\n", m.Timestamp.Format("2006-01-02 15:04"), who, m.MessageText, flag)
	}
}

func (a *App) Inbox(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	parts, err := a.messageService.Participants(ctx, a.current.ID)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(parts) == 0 {
		fmt.Println("No conversations yet")
		return
	}
	for _, id := range parts {
		if u, err := a.users.FindByID(ctx, id); err == nil {
			fmt.Printf("%s <%s>\n", u.FullName, u.Email)
		} else {
			fmt.Println(id)
		}
	}
}

func (a *App) ReportMessage(ctx context.Context, id string) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	reason, err := GetSimpleText(a.reader, "Enter report reason", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.messageService.Report(ctx, a.current, id, reason); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Println("No such message")
		} else {
			log.Printf("error: %v", err)
		}
		return
	}
	fmt.Println("Reported; a moderator will review it")
}
