package auth

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"USER":  RoleUser,
		"user":  RoleUser,
		" AdMiN ": RoleAdmin,
		"ADMIN": RoleAdmin,
	}
	for raw, want := range cases {
		got, err := ParseRole(raw)
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q)=%s, want %s", raw, got, want)
		}
	}

	for _, raw := range []string{"", "root", "superuser"} {
		if _, err := ParseRole(raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ParseRole(%q): expected ErrInvalidInput, got %v", raw, err)
		}
	}
}
