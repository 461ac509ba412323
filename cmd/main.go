// Package cmd implements the CLI surface of the crypto dashboard.
// A main package calls Register() and Execute() on the user-selected
// subcommand.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/cryptodash/cryptodash"
	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")

	c.Register(&summaryCmd{}, "portfolio")
	c.Register(&holdingsCmd{}, "portfolio")
	c.Register(&chartCmd{}, "portfolio")
	c.Register(&dashboardCmd{}, "portfolio")

	c.Register(&assetsCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&addCmd{}, "transactions")
}

// Names returns every registered subcommand name, for documentation checks.
func Names() []string {
	return []string{
		"login", "logout",
		"summary", "holdings", "chart", "dashboard",
		"assets", "tx", "add",
	}
}

var apiURLFlag = flag.String("api-url", "", "Backend API origin. Overrides the CRYPTODASH_API_URL environment variable.")

// loadConfig resolves the process configuration, letting the flag win over
// the environment.
func loadConfig() cryptodash.Config {
	cfg := cryptodash.LoadConfig()
	if *apiURLFlag != "" {
		cfg.APIURL = *apiURLFlag
	}
	return cfg
}

// openClient builds the session store and the backend client from config.
func openClient() (*cryptodash.Client, *cryptodash.Store, cryptodash.Config) {
	cfg := loadConfig()
	store := cryptodash.OpenStore(cfg.SessionPath())
	return cryptodash.NewClient(cfg.APIURL, store), store, cfg
}

// printMarkdown renders markdown for the terminal; on a rendering error the
// raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// loginHint is the message shown when an operation needs a session.
const loginHint = "Not logged in. Run 'cdash login' first."

// reportFailure prints a failed view's error and returns the exit status.
func reportFailure(kind cryptodash.FailureKind, err error) subcommands.ExitStatus {
	if kind == cryptodash.AuthRequired {
		fmt.Fprintln(os.Stderr, loginHint)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return subcommands.ExitFailure
}
