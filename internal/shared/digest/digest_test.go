package digest

import "testing"

func TestHex(t *testing.T) {
	t.Parallel()

	a := Hex("RBI fined HDFC Bank.")
	b := Hex("RBI fined HDFC Bank.")
	c := Hex("RBI fined ICICI Bank.")

	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if a != b {
		t.Errorf("expected identical digests for identical input")
	}
	if a == c {
		t.Errorf("expected different digests for different input")
	}
	// BLAKE2b-256 of the empty string
	if got := Hex(""); got != "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8" {
		t.Errorf("unexpected digest of empty string: %s", got)
	}
}
