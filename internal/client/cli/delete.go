package cli

import (
	"context"
	"strconv"

	"datashare/internal/client/api"
)

// Remove deletes one of the user's files by id and invalidates the cached
// listing so the next render reflects the removal.
func (a *App) Remove(ctx context.Context, idArg string) error {
	if !a.isLoggedIn() {
		printlnFn("Identifiez-vous d'abord avec 'login'.")
		return nil
	}
	if idArg == "" {
		printlnFn("Usage: rm <id>")
		return nil
	}

	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		printlnFn("Identifiant invalide:", idArg)
		return err
	}

	if err := a.client.DeleteFile(ctx, id); err != nil {
		printlnFn(api.DisplayMessage(err))
		return err
	}

	a.listings.Invalidate()
	printlnFn("Fichier supprimé.")
	return nil
}
