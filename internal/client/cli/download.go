package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gookit/color"

	"datashare/internal/client/download"
	"datashare/internal/client/expiry"
)

// Info resolves a share token and prints its metadata without downloading.
func (a *App) Info(ctx context.Context, token string) error {
	if token == "" {
		printlnFn("Usage: info <token>")
		return nil
	}

	w := download.NewWorkflow(a.client, token)
	w.Resolve(ctx)

	if w.State() == download.StateMetadataUnavailable {
		printlnFn(download.UnavailableMessage)
		return nil
	}

	a.printInfo(w)
	return nil
}

// Get resolves a share token and downloads the file into the configured
// download directory, prompting for the password when the file is
// protected.
func (a *App) Get(ctx context.Context, token string) error {
	if token == "" {
		printlnFn("Usage: get <token>")
		return nil
	}

	w := download.NewWorkflow(a.client, token)
	w.Resolve(ctx)

	if w.State() == download.StateMetadataUnavailable {
		printlnFn(download.UnavailableMessage)
		return nil
	}

	a.printInfo(w)

	info := w.Info()
	if info.Expired {
		return nil
	}

	if info.PasswordProtected {
		password, err := getPassword("Mot de passe", os.Stdout)
		if err != nil {
			return err
		}
		w.SetPassword(password)
	}

	if !w.CanDownload() {
		printlnFn("Le mot de passe est requis.")
		return nil
	}

	a.log.Info(ctx, "downloading file", "token", token, "name", info.Name)

	path, err := w.SaveTo(ctx, a.downloadDir)
	if err != nil {
		printlnFn(w.Failure())
		return err
	}

	printlnFn("Fichier enregistré:", path)
	return nil
}

func (a *App) printInfo(w *download.Workflow) {
	info := w.Info()
	printlnFn(fmt.Sprintf("%s (%s)", info.Name, FormatFileSize(info.Size)))

	notice := w.Notice()
	switch expiry.Classify(expiry.DaysUntil(info.ExpiredAt, timeNow())) {
	case expiry.Expired:
		printlnFn(color.Red.Sprint(notice))
	case expiry.ExpiringSoon:
		printlnFn(color.Yellow.Sprint(notice))
	default:
		printlnFn(color.Blue.Sprint(notice))
	}

	if info.PasswordProtected {
		printlnFn("Ce fichier est protégé par un mot de passe.")
	}
}
