package recommend

import "strings"

// Broad position groups. Players listed with a generic "G" or "F" tag
// belong to the corresponding group; the wing and big groups cover the
// usual cross-group swaps (SG/SF and PF/C).
var (
	guardTags   = map[string]bool{"PG": true, "SG": true, "G": true}
	forwardTags = map[string]bool{"SF": true, "PF": true, "F": true}
	centerTags  = map[string]bool{"C": true}
	wingTags    = map[string]bool{"SG": true, "SF": true, "G": true, "F": true}
	bigTags     = map[string]bool{"PF": true, "C": true, "F": true}
)

// splitTags breaks a position string into individual tags. Sources write
// multi-position players as "SF-PF" or "PG/SG".
func splitTags(position string) []string {
	f := func(r rune) bool { return r == '-' || r == '/' || r == ',' || r == ' ' }
	fields := strings.FieldsFunc(strings.ToUpper(position), f)
	out := fields[:0]
	for _, t := range fields {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// compatible reports whether two players can reasonably swap roster slots.
// Unknown or empty positions are always compatible (permissive default);
// multi-position players are compatible when any tag pair is.
func compatible(pos1, pos2 string) bool {
	t1, t2 := splitTags(pos1), splitTags(pos2)
	if len(t1) == 0 || len(t2) == 0 {
		return true
	}
	for _, a := range t1 {
		for _, b := range t2 {
			if tagsCompatible(a, b) {
				return true
			}
		}
	}
	return false
}

func tagsCompatible(a, b string) bool {
	if a == b {
		return true
	}
	switch {
	case guardTags[a] && guardTags[b]:
		return true
	case forwardTags[a] && forwardTags[b]:
		return true
	case wingTags[a] && wingTags[b]:
		return true
	case bigTags[a] && bigTags[b]:
		return true
	}
	return false
}

// groupCounts tallies guards, forwards, and centers over a set of position
// strings, counting each player once by their primary (first) tag.
func groupCounts(positions []string) (guards, forwards, centers int) {
	for _, pos := range positions {
		tags := splitTags(pos)
		if len(tags) == 0 {
			continue
		}
		switch primary := tags[0]; {
		case guardTags[primary]:
			guards++
		case forwardTags[primary]:
			forwards++
		case centerTags[primary]:
			centers++
		}
	}
	return
}

// balanced reports whether a multi-player swap keeps the roster's position
// mix intact: the dropped and added blocks may differ by at most one player
// in each broad group. This stops the search from proposing, say, two
// centers out for two point guards in.
func balanced(dropPositions, addPositions []string) bool {
	dg, df, dc := groupCounts(dropPositions)
	ag, af, ac := groupCounts(addPositions)
	return abs(dg-ag) <= 1 && abs(df-af) <= 1 && abs(dc-ac) <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
