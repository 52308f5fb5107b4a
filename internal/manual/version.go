package manual

import (
	"sort"
	"strconv"
	"strings"
)

// CheckVersionString canonicalizes a manual version identifier. "current"
// and already v-prefixed strings pass through; anything else gets a "v"
// prepended so "9.0.1" and "v9.0.1" address the same manual.
func CheckVersionString(version string) string {
	if !strings.HasPrefix(version, "v") && version != "current" {
		return "v" + version
	}
	return version
}

// SortVersions sorts release identifiers by their numeric (major, minor,
// patch) triple, newest first. Leading "v" prefixes are stripped from the
// result. Lexicographic order would put 9.5.3 ahead of 10.2.0, hence the
// numeric comparison.
func SortVersions(versions []string) []string {
	out := make([]string, 0, len(versions))
	for _, v := range versions {
		out = append(out, strings.TrimPrefix(v, "v"))
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := parseTriple(out[i]), parseTriple(out[j])
		if a[0] != b[0] {
			return a[0] > b[0]
		}
		if a[1] != b[1] {
			return a[1] > b[1]
		}
		return a[2] > b[2]
	})
	return out
}

func parseTriple(v string) [3]int {
	var t [3]int
	for i, part := range strings.SplitN(v, ".", 3) {
		n, err := strconv.Atoi(part)
		if err != nil {
			break
		}
		t[i] = n
	}
	return t
}
