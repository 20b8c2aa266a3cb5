package recommend

import (
	"reflect"
	"testing"
)

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"SF-PF", []string{"SF", "PF"}},
		{"pg/sg", []string{"PG", "SG"}},
		{"PG, SG", []string{"PG", "SG"}},
		{"C", []string{"C"}},
		{"", nil},
	}
	for _, c := range cases {
		got := splitTags(c.in)
		if len(got) == 0 && len(c.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("splitTags(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCompatible(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"PG", "SG", true},
		{"G", "SG", true},
		{"SG", "SF", true}, // wings
		{"PF", "C", true},  // bigs
		{"PG", "C", false},
		{"PG", "SF", false},
		{"PG/SG", "SG/SF", true}, // shared SG tag
		{"", "C", true},          // unknown position is permissive
	}
	for _, c := range cases {
		if got := compatible(c.a, c.b); got != c.want {
			t.Fatalf("compatible(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestBalancedAllowsOneGroupShift(t *testing.T) {
	if !balanced([]string{"PG", "C"}, []string{"SG", "C"}) {
		t.Fatalf("like-for-like groups should be balanced")
	}
	if !balanced([]string{"PG", "C"}, []string{"PG", "PF"}) {
		t.Fatalf("one center out, one forward in is within tolerance")
	}
	if balanced([]string{"C", "C"}, []string{"PG", "PG"}) {
		t.Fatalf("two centers for two guards should be rejected")
	}
}
