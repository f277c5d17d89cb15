package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"datashare/internal/client/expiry"
)

// Upload drives one upload draft interactively: validate the file, collect
// the optional password, the retention choice and tags, submit, and print
// the share link with an optional copy to the clipboard. The draft is
// discarded when the command returns, whatever happened.
func (a *App) Upload(ctx context.Context, path string) error {
	if !a.isLoggedIn() {
		printlnFn("Identifiez-vous d'abord avec 'login'.")
		return nil
	}
	if path == "" {
		printlnFn("Usage: upload <chemin du fichier>")
		return nil
	}

	defer a.uploads.Close()

	stat, err := os.Stat(path)
	if err != nil {
		printlnFn("Fichier introuvable:", path)
		return err
	}

	if err := a.uploads.SelectFile(stat.Name(), stat.Size()); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("%s (%s)", a.uploads.FileName(), FormatFileSize(a.uploads.FileSize())))

	password, err := getPassword("Mot de passe (optionnel)", os.Stdout)
	if err != nil {
		return err
	}
	a.uploads.SetPassword(password)

	if err := a.askExpiration(); err != nil {
		return err
	}

	tags, err := GetLines(a.reader, "Tags", os.Stdout)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		if err := a.uploads.AddTag(tag); err != nil {
			printlnFn(err.Error())
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	a.log.Info(ctx, "uploading file", "name", stat.Name(), "size", stat.Size())

	if err := a.uploads.Submit(ctx, file); err != nil {
		if msg := a.uploads.Failure(); msg != "" {
			printlnFn(msg)
		} else {
			printlnFn(err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Félicitations, ton fichier sera conservé chez nous pendant %s !",
		expiry.FormatExpiration(a.uploads.ExpirationDays())))
	printlnFn(a.uploads.ShareLink())

	answer, err := getSimpleText(a.reader, "Copier le lien ? (o/n)", os.Stdout)
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "o") || strings.EqualFold(answer, "oui") {
		if err := a.uploads.CopyLink(); err != nil {
			a.log.Warn(ctx, "clipboard copy failed", "err", err)
		}
		if a.uploads.Copied() {
			printlnFn("Lien copié")
		}
	}
	return nil
}

func (a *App) askExpiration() error {
	choices := make([]string, 0, 4)
	for _, d := range []int{1, 2, 3, 7} {
		choices = append(choices, fmt.Sprintf("%d (%s)", d, expiry.FormatExpiration(d)))
	}

	answer, err := getSimpleText(a.reader, "Expiration: "+strings.Join(choices, ", "), os.Stdout)
	if err != nil {
		return err
	}
	if answer == "" {
		return nil
	}

	days, err := strconv.Atoi(answer)
	if err != nil {
		printlnFn("Choix invalide, expiration par défaut conservée.")
		return nil
	}
	if err := a.uploads.SetExpiration(days); err != nil {
		printlnFn("Choix invalide, expiration par défaut conservée.")
	}
	return nil
}
