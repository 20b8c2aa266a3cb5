package util

import "testing"

func TestValidSeason(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-25", true},
		{"1999-00", true}, // century rollover
		{"2024-26", false},
		{"2024-2025", false},
		{"24-25", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidSeason(c.in); got != c.want {
			t.Fatalf("ValidSeason(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSeasonForYear(t *testing.T) {
	if got := SeasonForYear(2024); got != "2024-25" {
		t.Fatalf("got %q, want 2024-25", got)
	}
	if got := SeasonForYear(1999); got != "1999-00" {
		t.Fatalf("got %q, want 1999-00", got)
	}
}

func TestPrevSeason(t *testing.T) {
	if got := PrevSeason("2024-25"); got != "2023-24" {
		t.Fatalf("got %q, want 2023-24", got)
	}
	if got := PrevSeason("2000-01"); got != "1999-00" {
		t.Fatalf("got %q, want 1999-00", got)
	}
	if got := PrevSeason("bogus"); got != "" {
		t.Fatalf("got %q for malformed input, want empty", got)
	}
}

func TestSeasonHistory(t *testing.T) {
	got := SeasonHistory("2024-25", 3)
	want := []string{"2024-25", "2023-24", "2022-23"}
	if len(got) != len(want) {
		t.Fatalf("got %d seasons, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("season %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeSeason(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2024-25", "2024-25"},
		{"  2024-25 ", "2024-25"},
		{"2024", "2024-25"},
		{"1945", ""}, // before the league existed
		{"garbage", ""},
	}
	for _, c := range cases {
		if got := NormalizeSeason(c.in); got != c.want {
			t.Fatalf("NormalizeSeason(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
