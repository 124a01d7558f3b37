package grpf

import "testing"

func TestStatusFailed(t *testing.T) {
	if !(StatusFailure | SeedsOutOfRange).Failed() {
		t.Fatalf("StatusFailure|SeedsOutOfRange should report Failed()")
	}
	if (StatusSuccess | MaxIterations).Failed() {
		t.Fatalf("StatusSuccess|MaxIterations should not report Failed()")
	}
}

func TestStatusWarning(t *testing.T) {
	if !(StatusSuccess | MaxIterations).Warning() {
		t.Fatalf("StatusSuccess|MaxIterations should report Warning()")
	}
	if (StatusSuccess).Warning() {
		t.Fatalf("bare StatusSuccess should not report Warning()")
	}
}

func TestStatusError(t *testing.T) {
	s := StatusFailure | SeedsOutOfRange
	if s.Error() == "" {
		t.Fatalf("Error() should not be empty")
	}
}
