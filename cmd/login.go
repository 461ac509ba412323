package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cryptodash/cryptodash"
	"github.com/google/subcommands"
)

type loginCmd struct {
	credential string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "exchange an identity credential for a session" }
func (*loginCmd) Usage() string {
	return `cdash login [-credential <jwt>]

  Exchanges a Google identity credential for a backend session and stores
  it. Obtain the credential from the provider's sign-in widget and pass it
  with -credential, or paste it on stdin when the flag is omitted.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.credential, "credential", "", "Identity credential issued by the provider's sign-in widget.")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	credential := c.credential
	if credential == "" {
		fmt.Fprintln(os.Stderr, "Paste the identity credential and press enter:")
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 64*1024), 64*1024)
		if scanner.Scan() {
			credential = strings.TrimSpace(scanner.Text())
		}
	}
	if credential == "" {
		fmt.Fprintln(os.Stderr, "Error: a credential is required.")
		return subcommands.ExitUsageError
	}

	client, store, _ := openClient()
	identity := cryptodash.NewIdentity(client, store)
	err := identity.Login(ctx, credential, func(u cryptodash.User) {
		fmt.Printf("Logged in as %s\n", u.DisplayName())
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: login failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "clear the stored session" }
func (*logoutCmd) Usage() string {
	return `cdash logout

  Removes the stored session token and profile.
`
}
func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, store, _ := openClient()
	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot clear session: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}
