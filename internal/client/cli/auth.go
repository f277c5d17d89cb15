package cli

import (
	"context"
	"os"

	"datashare/internal/client/api"
	"datashare/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and a password (entered twice), validates
// the form locally, creates the account, and persists the returned
// credential. A server rejection is printed using the derived display
// message; the known "Email already exists" case comes out localized.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Adresse email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Mot de passe", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirmez le mot de passe", os.Stdout)
	if err != nil {
		return err
	}

	form := validation.RegisterForm{Email: email, Password: password, ConfirmPassword: confirm}
	if err := validation.CheckRegisterForm(form); err != nil {
		printlnFn(err.Error())
		return err
	}

	token, err := a.client.Register(ctx, email, password)
	if err != nil {
		printlnFn(api.DisplayMessage(err))
		return err
	}

	if err := a.sessions.SetCredential(token); err != nil {
		return err
	}

	printlnFn("Compte créé, vous êtes connecté.")
	return nil
}

// Login prompts for credentials, authenticates, and persists the returned
// credential.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Adresse email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Mot de passe", os.Stdout)
	if err != nil {
		return err
	}

	form := validation.LoginForm{Email: email, Password: password}
	if err := validation.CheckLoginForm(form); err != nil {
		printlnFn(err.Error())
		return err
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		printlnFn(api.DisplayMessage(err))
		return err
	}

	if err := a.sessions.SetCredential(token); err != nil {
		return err
	}

	printlnFn("Connexion réussie.")
	return nil
}

// Logout clears the persisted credential. Every subscriber, including other
// running instances watching the same credential file, observes the change.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	a.listings.Invalidate()
	printlnFn("Déconnecté.")
	return nil
}
