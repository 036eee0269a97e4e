package shared

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("empty means open bound", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil || got != nil {
			t.Fatalf("ParseDate(\"\") = %v, %v, want nil, nil", got, err)
		}
	})

	t.Run("whitespace means open bound", func(t *testing.T) {
		got, err := ParseDate("  ")
		if err != nil || got != nil {
			t.Fatalf("ParseDate(whitespace) = %v, %v, want nil, nil", got, err)
		}
	})

	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2024-01-31")
		if err != nil {
			t.Fatalf("ParseDate: %v", err)
		}
		want := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("ParseDate = %v, want %v", got, want)
		}
	})

	t.Run("malformed date is an input error", func(t *testing.T) {
		for _, value := range []string{"31-01-2024", "2024-13-01", "yesterday"} {
			if _, err := ParseDate(value); !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("ParseDate(%q) err = %v, want ErrInvalidDate", value, err)
			}
		}
	})
}

func TestParseAccountID(t *testing.T) {
	id, err := ParseAccountID(" 42 ")
	if err != nil || id != 42 {
		t.Fatalf("ParseAccountID = %d, %v, want 42, nil", id, err)
	}
	for _, value := range []string{"", "abc", "0", "-3", "1.5"} {
		if _, err := ParseAccountID(value); !errors.Is(err, ErrInvalidAccountID) {
			t.Fatalf("ParseAccountID(%q) err = %v, want ErrInvalidAccountID", value, err)
		}
	}
}

func TestParseAccountIDs(t *testing.T) {
	ids, err := ParseAccountIDs("1, 2,,3")
	if err != nil {
		t.Fatalf("ParseAccountIDs: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("ids = %v, want [1 2 3]", ids)
	}

	if _, err := ParseAccountIDs(""); !errors.Is(err, ErrInvalidAccountID) {
		t.Fatalf("empty list err = %v, want ErrInvalidAccountID", err)
	}
	if _, err := ParseAccountIDs("1,x"); !errors.Is(err, ErrInvalidAccountID) {
		t.Fatalf("bad element err = %v, want ErrInvalidAccountID", err)
	}
}
