package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/sellit-io/sellit/internal/common"
)

func (a *App) DraftAgreement(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	ideaID, err := GetSimpleText(a.reader, "Enter idea id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	ownerRef, err := GetSimpleText(a.reader, "Enter owner email or id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	owner, err := a.resolveUser(ctx, ownerRef)
	if err != nil {
		fmt.Println("No such user:", ownerRef)
		return
	}
	investorRef, err := GetSimpleText(a.reader, "Enter investor email or id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	investor, err := a.resolveUser(ctx, investorRef)
	if err != nil {
		fmt.Println("No such user:", investorRef)
		return
	}
	terms, err := GetMultiline(a.reader, "Enter terms", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	agr, err := a.agreementService.Draft(ctx, a.current, ideaID, owner.ID, investor.ID, terms)
	if err != nil {
		if errors.Is(err, common.ErrForbidden) {
			fmt.Println("You must be a party to the agreement")
		} else {
			log.Printf("error: %v", err)
		}
		return
	}
	fmt.Printf("Drafted agreement %s; both parties must 'sign %s'\n", agr.ID, agr.ID)
}

func (a *App) SignAgreement(ctx context.Context, id string) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	agr, err := a.agreementService.Sign(ctx, a.current, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadySigned):
			fmt.Println("Agreement is already fully signed")
		case errors.Is(err, common.ErrForbidden):
			fmt.Println("Nothing for you to sign here")
		case errors.Is(err, common.ErrNotFound):
			fmt.Println("No such agreement")
		default:
			log.Printf("error: %v", err)
		}
		return
	}
	fmt.Printf("Signed; agreement is now %s\n", agr.Status)
}

func (a *App) SetAgreementTerms(ctx context.Context, id string) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	terms, err := GetMultiline(a.reader, "Enter new terms", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.agreementService.SetTerms(ctx, a.current, id, terms); err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadySigned):
			fmt.Println("Terms are frozen once a party has signed")
		case errors.Is(err, common.ErrForbidden):
			fmt.Println("You must be a party to the agreement")
		case errors.Is(err, common.ErrNotFound):
			fmt.Println("No such agreement")
		default:
			log.Printf("error: %v", err)
		}
		return
	}
	fmt.Println("Terms updated")
}

func (a *App) ListAgreements(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	all, err := a.agreementService.List(ctx, a.current)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No agreements yet")
		return
	}
	for _, agr := range all {
		fmt.Printf("%s  [%s]  idea %s  owner %s / investor %s\n",
			agr.ID, agr.Status, agr.IdeaID, agr.OwnerID, agr.InvestorID)
	}
}
