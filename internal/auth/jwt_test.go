package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := TokenService{Secret: []byte("test-secret"), Issuer: "archivehub", Duration: time.Hour}

	token, exp, err := ts.Sign("admin")
	if err != nil {
		t.Fatal(err)
	}
	if time.Until(exp) <= 0 {
		t.Error("expiry should be in the future")
	}

	claims, err := ts.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "admin" || claims.Role != "admin" {
		t.Errorf("got %+v", claims)
	}
	if claims.Issuer != "archivehub" {
		t.Errorf("issuer: %q", claims.Issuer)
	}
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	ts := TokenService{Secret: []byte("secret-a"), Issuer: "archivehub", Duration: time.Hour}
	token, _, err := ts.Sign("admin")
	if err != nil {
		t.Fatal(err)
	}

	other := TokenService{Secret: []byte("secret-b"), Issuer: "archivehub", Duration: time.Hour}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("token signed with a different secret must not parse")
	}
}
