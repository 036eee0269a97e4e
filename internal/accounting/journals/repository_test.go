package journals

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgconn"
)

func TestFilterWhere(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	through := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("empty filter", func(t *testing.T) {
		where, args := Filter{}.where()
		if where != "" || args != nil {
			t.Fatalf("where = %q, args = %v, want empty", where, args)
		}
	})

	t.Run("account and period", func(t *testing.T) {
		where, args := Filter{AccountID: 5, From: &from, Through: &through}.where()
		want := " WHERE account_id = $1 AND transaction_date >= $2 AND transaction_date <= $3"
		if where != want {
			t.Fatalf("where = %q, want %q", where, want)
		}
		if len(args) != 3 || args[0] != int64(5) {
			t.Fatalf("args = %v", args)
		}
	})

	t.Run("strict upper bound", func(t *testing.T) {
		where, _ := Filter{AccountID: 5, Before: &from}.where()
		if !strings.Contains(where, "transaction_date < $2") {
			t.Fatalf("where = %q, want strict < bound", where)
		}
		if strings.Contains(where, "transaction_date <= ") {
			t.Fatalf("where = %q, must not be inclusive", where)
		}
	})

	t.Run("id list", func(t *testing.T) {
		where, args := Filter{AccountIDs: []int64{1, 2, 3}}.where()
		want := " WHERE account_id = ANY($1)"
		if where != want {
			t.Fatalf("where = %q, want %q", where, want)
		}
		ids, ok := args[0].([]int64)
		if !ok || len(ids) != 3 {
			t.Fatalf("args = %v, want one []int64 of 3", args)
		}
	})
}

func TestWrapQueryError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	wrapped := wrapQueryError("find entries", pgErr)
	if !strings.Contains(wrapped.Error(), "42P01") {
		t.Fatalf("error = %q, want sqlstate included", wrapped.Error())
	}
	if !errors.As(wrapped, new(*pgconn.PgError)) {
		t.Fatal("wrapped error must preserve the pg error")
	}

	plain := errors.New("dial timeout")
	wrapped = wrapQueryError("sum entries", plain)
	if !errors.Is(wrapped, plain) {
		t.Fatal("wrapped error must preserve the cause")
	}
	if !strings.Contains(wrapped.Error(), "journals: sum entries") {
		t.Fatalf("error = %q, want operation prefix", wrapped.Error())
	}
}
