package app

import "testing"

func TestTestModeFlag(t *testing.T) {
	t.Setenv("MERIDIAN_TEST_MODE", "1")
	RefreshTestMode()
	if !InTestMode() {
		t.Fatal("expected test mode on")
	}

	t.Setenv("MERIDIAN_TEST_MODE", "0")
	RefreshTestMode()
	if InTestMode() {
		t.Fatal("expected test mode off")
	}

	t.Setenv("MERIDIAN_TEST_MODE", "1")
	RefreshTestMode()
}
