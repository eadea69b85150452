package testing

import (
	"errors"
	"reflect"
	"testing"
)

// Success asserts that error did not occur.
func Success(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected success, got '%v'", err)
	}
}

// ErrorIs asserts that err matches target.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("expected error '%v', got '%v'", target, err)
	}
}

// Equal asserts that values are deeply equal.
func Equal[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// Panics asserts that f panics with a value matching target.
func Panics(t testing.TB, target any, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic '%v'", target)
		}

		if err, ok := r.(error); ok {
			if targetErr, ok := target.(error); ok && errors.Is(err, targetErr) {
				return
			}
		}

		if !reflect.DeepEqual(r, target) {
			t.Fatalf("expected panic '%v', got '%v'", target, r)
		}
	}()

	f()
}
