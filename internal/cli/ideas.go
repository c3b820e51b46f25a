package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
)

func (a *App) AddIdea(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	category, err := GetSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	summary, err := GetSimpleText(a.reader, "Enter short summary", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	description, err := GetMultiline(a.reader, "Enter full description", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	budgetText, err := GetSimpleText(a.reader, "Enter required budget", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	budget, err := strconv.ParseFloat(budgetText, 64)
	if err != nil {
		fmt.Println("Budget must be a number")
		return
	}
	shareText, err := GetSimpleText(a.reader, "Enter expected profit share (%)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	share, err := strconv.ParseFloat(shareText, 64)
	if err != nil {
		fmt.Println("Profit share must be a number")
		return
	}

	idea, err := a.ideaService.Create(ctx, a.current, models.BusinessIdea{
		Title:               title,
		Category:            category,
		ShortSummary:        summary,
		FullDescription:     description,
		RequiredBudget:      budget,
		ExpectedProfitShare: share,
	})
	if err != nil {
		if errors.Is(err, common.ErrForbidden) {
			fmt.Println("Only idea owners can create ideas")
		} else {
			log.Printf("error: %v", err)
		}
		return
	}

	fmt.Printf("Created idea %s (status %s)\n", idea.ID, idea.Status)
}

func (a *App) ListIdeas(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	all, err := a.ideaService.Browse(ctx, a.current)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No ideas yet")
		return
	}
	for _, idea := range all {
		fmt.Printf("%s  [%s/%s]  %s — budget %.0f, share %.1f%%\n",
			idea.ID, idea.Status, idea.Visibility, idea.Title, idea.RequiredBudget, idea.ExpectedProfitShare)
	}
}

func (a *App) SetIdeaStatus(ctx context.Context, id, status string) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	err := a.ideaService.SetStatus(ctx, a.current, id, models.IdeaStatus(status))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrForbidden):
			fmt.Println("You can only manage your own ideas")
		case errors.Is(err, common.ErrNotFound):
			fmt.Println("No such idea")
		default:
			log.Printf("error: %v", err)
		}
		return
	}
	fmt.Println("Status updated")
}

func (a *App) DeleteIdea(ctx context.Context, id string) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	err := a.ideaService.Delete(ctx, a.current, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrForbidden):
			fmt.Println("You can only delete your own ideas")
		case errors.Is(err, common.ErrNotFound):
			fmt.Println("No such idea")
		default:
			log.Printf("error: %v", err)
		}
		return
	}
	fmt.Println("Idea deleted")
}
