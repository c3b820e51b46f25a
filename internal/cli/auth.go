package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
)

func (a *App) Register(ctx context.Context) {

	fullName, err := GetSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	roleText, err := GetSimpleText(a.reader, "Enter role (owner/investor)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	u, err := a.authService.Register(ctx, fullName, email, password, models.UserRole(roleText))
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			fmt.Println("That email is already registered")
		} else {
			log.Printf("Registration unsuccessful: %s", err.Error())
		}
		return
	}

	a.current = u
	fmt.Printf("Welcome, %s!\n", u.FullName)
}

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	u, err := a.authService.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAccountSuspended):
			fmt.Println("Account is suspended")
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Println("Invalid email or password")
		default:
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return
	}

	a.current = u
	fmt.Printf("Welcome back, %s!\n", u.FullName)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	a.current = nil
	fmt.Println("Logged out")
}

func (a *App) WhoAmI(ctx context.Context) {
	u, err := a.authService.Current(ctx)
	if err != nil {
		fmt.Println("Not logged in")
		return
	}
	fmt.Printf("%s <%s> role=%s rating=%.1f\n", u.FullName, u.Email, u.Role, u.Rating)
}
