package schema

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Version is a dotted numeric tuple, e.g. "1.0" or "2.1.3". Versions
// compare numerically component by component ("1.0" < "1.1" < "2.0"),
// never lexicographically.
type Version []int

func ParseVersion(s string) (Version, error) {
	if s == "" {
		return nil, fmt.Errorf("empty version")
	}
	parts := strings.Split(s, ".")
	v := make(Version, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || (len(p) > 1 && p[0] == '0') {
			return nil, fmt.Errorf("invalid version %q: component %q", s, p)
		}
		v[i] = n
	}
	return v, nil
}

func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Compare orders versions numerically; missing components count as
// zero, with the shorter tuple ordered first on a tie so that "1.0"
// and "1.0.0" stay distinct registry keys.
func (v Version) Compare(o Version) int {
	n := max(len(v), len(o))
	for i := 0; i < n; i++ {
		var a, b int
		if i < len(v) {
			a = v[i]
		}
		if i < len(o) {
			b = o[i]
		}
		if c := cmp.Compare(a, b); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(v), len(o))
}

func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}
