package version

import (
	"fmt"
	"strconv"
	"strings"
)

type semver struct {
	core       [3]int
	prerelease string
}

func parse(s string) (semver, error) {
	var v semver

	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	s, _, _ = strings.Cut(s, "+")
	s, v.prerelease, _ = strings.Cut(s, "-")

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return v, fmt.Errorf("malformed version %q", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return v, fmt.Errorf("malformed version %q", s)
		}
		v.core[i] = n
	}
	return v, nil
}

// Compare orders two versions: 1 if a is newer, -1 if b is, 0 otherwise.
// A pre-release sorts before its release, 0.4.0-rc.1 < 0.4.0.
// Build metadata after "+" is ignored.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av.core {
		switch {
		case av.core[i] > bv.core[i]:
			return 1, nil
		case av.core[i] < bv.core[i]:
			return -1, nil
		}
	}

	switch {
	case av.prerelease == bv.prerelease:
		return 0, nil
	case av.prerelease == "":
		return 1, nil
	case bv.prerelease == "":
		return -1, nil
	default:
		return strings.Compare(av.prerelease, bv.prerelease), nil
	}
}
