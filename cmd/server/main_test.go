package main

import "testing"

func TestIntEnv_UsesValue(t *testing.T) {
	t.Setenv("DREAMLAND_TEST_INT", "42")
	if got := intEnv("DREAMLAND_TEST_INT", 7); got != 42 {
		t.Fatalf("intEnv=%d want 42", got)
	}
}

func TestIntEnv_FallsBackOnEmptyAndGarbage(t *testing.T) {
	t.Setenv("DREAMLAND_TEST_INT", "")
	if got := intEnv("DREAMLAND_TEST_INT", 7); got != 7 {
		t.Fatalf("intEnv=%d want fallback 7", got)
	}
	t.Setenv("DREAMLAND_TEST_INT", "not-a-number")
	if got := intEnv("DREAMLAND_TEST_INT", 7); got != 7 {
		t.Fatalf("intEnv=%d want fallback 7", got)
	}
}

func TestFloatEnv(t *testing.T) {
	t.Setenv("DREAMLAND_TEST_FLOAT", "1.5")
	if got := floatEnv("DREAMLAND_TEST_FLOAT", 1); got != 1.5 {
		t.Fatalf("floatEnv=%v want 1.5", got)
	}
	t.Setenv("DREAMLAND_TEST_FLOAT", "oops")
	if got := floatEnv("DREAMLAND_TEST_FLOAT", 2); got != 2 {
		t.Fatalf("floatEnv=%v want fallback 2", got)
	}
}
