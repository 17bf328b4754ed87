package cmd

import "github.com/pterm/pterm"

// terminalNavigator is the presentation-layer adapter for the session
// controller's navigation requests. A terminal has no pages to switch, so
// "navigating" prints where the user landed and what to do next.
type terminalNavigator struct{}

func (terminalNavigator) ToLogin() {
	pterm.Println()
	pterm.Info.Println("You have been signed out. Run 'dama login' to start a new session.")
}

func (terminalNavigator) ToDashboard() {
	pterm.Info.Println("Session started. Run 'dama dashboard' for the stock overview.")
}
