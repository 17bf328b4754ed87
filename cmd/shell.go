package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
)

// renderShell wraps a guarded screen in the shared authenticated layout:
// a header naming the screen and the signed-in user, the content itself,
// and the footer line.
func renderShell(title string, body func() error) error {
	u, _ := a.sessions.CurrentUser()
	pterm.DefaultSection.Printf("DamaFashion · %s · signed in as %s", title, u.Username)
	if err := body(); err != nil {
		return err
	}
	pterm.Println()
	pterm.FgGray.Printf("© %d DamaFashion — Inventory Management System\n", time.Now().Year())
	return nil
}

// parseID converts a positional id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", arg)
	}
	return id, nil
}

// confirm asks before destructive operations unless --yes was given.
func confirm(prompt string, skip bool) bool {
	if skip {
		return true
	}
	ok, _ := pterm.DefaultInteractiveConfirm.Show(prompt)
	return ok
}

// price renders a float as a currency-ish column value.
func price(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
