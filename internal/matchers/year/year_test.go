package year

import (
	"testing"

	"github.com/rafaelsanzio/zxcheck/zxcore"
)

func find(t *testing.T, password string) []zxcore.Match {
	t.Helper()
	matches, err := New().Match(zxcore.Configuration{}, password)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	return matches
}

func TestMatchRecognizesYearInRange(t *testing.T) {
	matches := find(t, "a1999b")
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	m := matches[0]
	if m.Start != 1 || m.End != 4 {
		t.Errorf("Start/End = %d/%d, want 1/4", m.Start, m.End)
	}
	if m.Token != "1999" {
		t.Errorf("Token = %q, want %q", m.Token, "1999")
	}
	if m.Kind != zxcore.KindYear {
		t.Errorf("Kind = %v, want KindYear", m.Kind)
	}
	if m.EntropyBits <= 0 {
		t.Errorf("EntropyBits = %v, want > 0", m.EntropyBits)
	}
}

func TestMatchRejectsOutOfRangeYears(t *testing.T) {
	matches := find(t, "1899")
	if len(matches) != 0 {
		t.Fatalf("1899 is out of [1900,2099]: got %d matches", len(matches))
	}
	matches = find(t, "2100")
	if len(matches) != 0 {
		t.Fatalf("2100 is out of [1900,2099]: got %d matches", len(matches))
	}
}

func TestMatchRejectsNonDigitRuns(t *testing.T) {
	matches := find(t, "19a9")
	if len(matches) != 0 {
		t.Fatalf("non-digit run must not match: got %d matches", len(matches))
	}
}

func TestMatchOverlappingWindows(t *testing.T) {
	// "19992000" has five overlapping 4-digit windows; only two are valid
	// years: 1999 at [0,3] and 2000 at [4,7]. None spanning the middle is.
	matches := find(t, "19992000")
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
}

func TestMatchEmptyPassword(t *testing.T) {
	matches := find(t, "")
	if len(matches) != 0 {
		t.Fatalf("empty password must yield no matches, got %d", len(matches))
	}
}

func TestName(t *testing.T) {
	if got := New().Name(); got != "year" {
		t.Errorf("Name() = %q, want %q", got, "year")
	}
}
