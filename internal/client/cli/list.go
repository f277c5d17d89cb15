package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"datashare/internal/client/api"
	"datashare/internal/client/listing"
)

// List renders the user's file collection. filter is "all", "active" or
// "expired"; empty means all. Statuses are derived from the wall clock at
// render time.
func (a *App) List(ctx context.Context, filter string) error {
	if !a.isLoggedIn() {
		printlnFn("Identifiez-vous d'abord avec 'login'.")
		return nil
	}

	f := listing.FilterAll
	switch filter {
	case "", "all":
	case "active":
		f = listing.FilterActive
	case "expired":
		f = listing.FilterExpired
	default:
		printlnFn("Filtre inconnu:", filter)
		return nil
	}

	items, counts, err := a.listings.View(ctx, f)
	if err != nil {
		printlnFn(api.DisplayMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Tous: %d | Actifs: %d | Expirés: %d", counts.All, counts.Active, counts.Expired))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Nom", "Taille", "Créé", "Statut", "Expiration", "Protégé", "Tags", "Token"})
	table.SetBorder(false)

	for _, item := range items {
		protected := ""
		if item.Record.PasswordProtected {
			protected = "oui"
		}
		table.Append([]string{
			strconv.FormatInt(item.Record.ID, 10),
			item.Record.Name,
			FormatFileSize(item.Record.Size),
			FormatDate(item.Record.CreatedAt),
			colorStatus(item.Status),
			item.ExpiresLabel,
			protected,
			fmt.Sprint(item.Record.Tags),
			item.Record.Token,
		})
	}
	table.Render()
	return nil
}
