package editscript

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func chars(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "")
}

// lcsDistance is the insert/delete edit distance computed by dynamic
// programming.
func lcsDistance(a, b []string) int {
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else {
				dp[i][j] = max(dp[i+1][j], dp[i][j+1])
			}
		}
	}
	return len(a) + len(b) - 2*dp[0][0]
}

func TestShortestEditScript_KnownDistances(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{from: "kitten", to: "sitting", want: 5},
		{from: "ABC", to: "", want: 3},
		{from: "", to: "ABC", want: 3},
		{from: "ABC", to: "ABCDE", want: 2},
		{from: "ABC", to: "ABC", want: 0},
		{from: "", to: "", want: 0},
		{from: "ABCABBA", to: "CBABAC", want: 5},
	}

	for _, tc := range cases {
		from, to := chars(tc.from), chars(tc.to)
		script, ok := ShortestEditScript(from, to, -1)
		if !ok {
			t.Fatalf("%q -> %q: no script", tc.from, tc.to)
		}
		if got := len(script); got != tc.want {
			t.Fatalf("%q -> %q: len=%d, want %d (%v)", tc.from, tc.to, got, tc.want, script)
		}
		if got := ApplyLines(from, script); strings.Join(got, "") != tc.to {
			t.Fatalf("%q -> %q: applied to %q", tc.from, tc.to, strings.Join(got, ""))
		}
	}
}

func TestShortestEditScript_ExactCommands(t *testing.T) {
	script, ok := ShortestEditScript([]string{"a", "b", "c"}, []string{"a", "x", "c"}, -1)
	if !ok {
		t.Fatalf("no script")
	}
	want := []Command{Delete(1), Insert(1, "x")}
	if fmt.Sprint(script) != fmt.Sprint(want) {
		t.Fatalf("script=%v, want %v", script, want)
	}

	script, ok = ShortestEditScript([]string{"a", "b"}, []string{"a", "b"}, 0)
	if !ok || len(script) != 0 {
		t.Fatalf("identical input: script=%v ok=%v", script, ok)
	}
}

func TestShortestEditScript_TiesPreferInsert(t *testing.T) {
	script, ok := ShortestEditScript([]string{"a"}, []string{"b"}, -1)
	if !ok {
		t.Fatalf("no script")
	}
	want := []Command{Delete(0), Insert(0, "b")}
	if fmt.Sprint(script) != fmt.Sprint(want) {
		t.Fatalf("script=%v, want %v", script, want)
	}
}

func TestShortestEditScript_Limit(t *testing.T) {
	from, to := chars("kitten"), chars("sitting")

	if _, ok := ShortestEditScript(from, to, 4); ok {
		t.Fatalf("expected no script within limit 4")
	}
	script, ok := ShortestEditScript(from, to, 5)
	if !ok {
		t.Fatalf("expected a script within limit 5")
	}
	if len(script) != 5 {
		t.Fatalf("len=%d, want 5", len(script))
	}
	if _, ok := ShortestEditScript(chars("abc"), chars("xyz"), 0); ok {
		t.Fatalf("expected no script within limit 0")
	}
}

func TestShortestEditScript_RandomPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	gen := func() []string {
		n := rng.Intn(9)
		out := make([]string, n)
		for i := range out {
			out[i] = string(rune('a' + rng.Intn(3)))
		}
		return out
	}

	for iter := 0; iter < 500; iter++ {
		from, to := gen(), gen()
		want := lcsDistance(from, to)

		script, ok := ShortestEditScript(from, to, -1)
		if !ok {
			t.Fatalf("%q -> %q: no script", from, to)
		}
		if len(script) != want {
			t.Fatalf("%q -> %q: len=%d, want %d", from, to, len(script), want)
		}
		if got := ApplyLines(from, script); fmt.Sprintf("%q", got) != fmt.Sprintf("%q", to) {
			t.Fatalf("%q -> %q: applied to %q", from, to, got)
		}

		if want > 0 {
			if _, ok := ShortestEditScript(from, to, want-1); ok {
				t.Fatalf("%q -> %q: found a script below distance %d", from, to, want)
			}
		}
		if s, ok := ShortestEditScript(from, to, want); !ok || len(s) != want {
			t.Fatalf("%q -> %q: limit=%d: len=%d ok=%v", from, to, want, len(s), ok)
		}
	}
}
