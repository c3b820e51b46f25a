package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sellit-io/sellit/internal/models"
)

func (a *App) getStatus() string {
	s := ""
	if a.current != nil {
		s = a.current.Email + " "
	}
	if a.gw.Sandbox() {
		s = s + "sandbox"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", strings.TrimSpace(s))
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	fmt.Printf("Welcome to Sell It CLI (type 'help' for commands), store: %s\n", a.dataPath())
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("sellit %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI(ctx)

		case "addidea":
			a.AddIdea(ctx)
		case "ideas", "l":
			a.ListIdeas(ctx)
		case "status":
			if len(args) < 2 {
				fmt.Println("Usage: status <idea-id> <draft|published|archived|sold>")
				continue
			}
			a.SetIdeaStatus(ctx, args[0], args[1])
		case "delidea":
			if len(args) == 0 {
				fmt.Println("Usage: delidea <idea-id>")
				continue
			}
			a.DeleteIdea(ctx, args[0])

		case "send":
			if len(args) == 0 {
				fmt.Println("Usage: send <email|user-id>")
				continue
			}
			a.SendMessage(ctx, args[0])
		case "chat":
			if len(args) == 0 {
				fmt.Println("Usage: chat <email|user-id>")
				continue
			}
			a.ShowConversation(ctx, args[0])
		case "inbox":
			a.Inbox(ctx)
		case "report":
			if len(args) == 0 {
				fmt.Println("Usage: report <message-id>")
				continue
			}
			a.ReportMessage(ctx, args[0])

		case "draft":
			a.DraftAgreement(ctx)
		case "sign":
			if len(args) == 0 {
				fmt.Println("Usage: sign <agreement-id>")
				continue
			}
			a.SignAgreement(ctx, args[0])
		case "terms":
			if len(args) == 0 {
				fmt.Println("Usage: terms <agreement-id>")
				continue
			}
			a.SetAgreementTerms(ctx, args[0])
		case "agreements":
			a.ListAgreements(ctx)

		case "queue":
			a.SafetyQueue(ctx)
		case "dismiss":
			if len(args) == 0 {
				fmt.Println("Usage: dismiss <message-id>")
				continue
			}
			a.DismissFlags(ctx, args[0])
		case "logs":
			a.ShowLogs(ctx)
		case "clearlogs":
			a.ClearLogs(ctx)

		case "sandbox":
			if len(args) == 0 {
				fmt.Println("Usage: sandbox <on|off>")
				continue
			}
			a.SetSandbox(ctx, args[0])
		case "reset":
			a.Reset(ctx)
		case "watch":
			a.Watch(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Println("Available commands: (l)ideas, addidea, status, delidea, send, chat, inbox, report, draft, sign, terms, agreements, sandbox, reset, watch, whoami, logout, exit")
		if a.current.Role == models.RoleAdmin {
			fmt.Println("Admin commands: queue, dismiss, logs, clearlogs")
		}
	} else {
		fmt.Println("Available commands: register, login, sandbox, exit")
	}
}
