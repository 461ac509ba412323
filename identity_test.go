package cryptodash

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeCredential builds an unsigned JWT carrying the given display claims,
// enough for the unverified decode the login flow performs.
func fakeCredential(email, name, picture string) string {
	enc := base64.RawURLEncoding
	header := enc.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := enc.EncodeToString([]byte(
		`{"email":"` + email + `","name":"` + name + `","picture":"` + picture + `"}`))
	return header + "." + payload + "."
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/google" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"message":"ok","access_token":"session-token","user":{"id":3,"email":"ada@example.com"}}`))
	}))
	defer srv.Close()

	store := newTestStore(t, "")
	identity := NewIdentity(NewClient(srv.URL, store), store)

	var calls int
	var got User
	err := identity.Login(context.Background(), fakeCredential("ada@example.com", "Ada Lovelace", "https://p/ada.png"), func(u User) {
		calls++
		got = u
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("onLogin called %d times, want 1", calls)
	}
	// Email comes from the backend, name and picture from the credential.
	want := User{Email: "ada@example.com", Name: "Ada Lovelace", Picture: "https://p/ada.png"}
	if got != want {
		t.Errorf("user = %+v, want %+v", got, want)
	}
	if store.Token() != "session-token" {
		t.Errorf("stored token = %q", store.Token())
	}
}

func TestLoginExchangeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid credential"}`))
	}))
	defer srv.Close()

	store := newTestStore(t, "")
	identity := NewIdentity(NewClient(srv.URL, store), store)

	err := identity.Login(context.Background(), fakeCredential("x@example.com", "", ""), func(User) {
		t.Error("onLogin must not fire on a failed exchange")
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if store.Get() != nil {
		t.Error("no session should be persisted on failure")
	}
}

func TestLoginOpaqueCredential(t *testing.T) {
	// A credential that is not a JWT still logs in; the display hints are
	// simply absent and the backend email stands alone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok","access_token":"tk","user":{"id":1,"email":"op@example.com"}}`))
	}))
	defer srv.Close()

	store := newTestStore(t, "")
	identity := NewIdentity(NewClient(srv.URL, store), store)

	var got User
	if err := identity.Login(context.Background(), "not-a-jwt", func(u User) { got = u }); err != nil {
		t.Fatal(err)
	}
	if got.Email != "op@example.com" || got.Name != "" {
		t.Errorf("user = %+v", got)
	}
	if got.DisplayName() != "op@example.com" {
		t.Errorf("DisplayName() = %q", got.DisplayName())
	}
}

func TestLogout(t *testing.T) {
	store := newTestStore(t, "tok")
	identity := NewIdentity(NewClient("http://unused", store), store)
	if err := identity.Logout(); err != nil {
		t.Fatal(err)
	}
	if store.Get() != nil {
		t.Error("session should be cleared")
	}
}
