package cryptodash

import (
	"context"
	"log"

	"github.com/golang-jwt/jwt/v5"
)

// Identity wraps the third-party login flow: it forwards the provider
// credential to the backend exchange endpoint, builds the session from the
// backend's response, and notifies the caller.
//
// The credential's embedded claims are decoded locally without signature or
// expiry verification; that trust decision belongs to the backend, so the
// decoded values are used as display hints only, to fill whatever the
// backend's own response omits.
type Identity struct {
	client   *Client
	sessions *Store
}

// NewIdentity returns an adapter using the given client and session store.
func NewIdentity(client *Client, sessions *Store) *Identity {
	return &Identity{client: client, sessions: sessions}
}

// claims are the identity fields carried by the provider credential.
type claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// decodeClaims extracts the display claims from the credential without
// validating it. Returns zero claims when the credential is not a JWT.
func decodeClaims(credential string) claims {
	var cl claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, &cl); err != nil {
		log.Printf("cannot decode credential claims: %v", err)
		return claims{}
	}
	return cl
}

// Login exchanges the credential for a session. On success the session is
// persisted and onLogin is invoked once with the user. On failure the error
// is logged and returned, and onLogin is never called.
func (a *Identity) Login(ctx context.Context, credential string, onLogin func(User)) error {
	resp, err := a.client.ExchangeCredential(ctx, credential)
	if err != nil {
		log.Printf("identity exchange failed: %v", err)
		return err
	}

	// The backend response is authoritative; decoded claims only backfill
	// the display fields it does not return.
	cl := decodeClaims(credential)
	user := User{Email: resp.User.Email, Name: cl.Name, Picture: cl.Picture}
	if user.Email == "" {
		user.Email = cl.Email
	}

	if err := a.sessions.Set(Session{Token: resp.AccessToken, User: user}); err != nil {
		return err
	}
	if onLogin != nil {
		onLogin(user)
	}
	return nil
}

// Logout clears the persisted session.
func (a *Identity) Logout() error { return a.sessions.Clear() }
