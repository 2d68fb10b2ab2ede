package classification

import (
	"regexp"
	"sort"
	"strconv"
)

var digitRun = regexp.MustCompile(`\d+|\D+`)

// sortedAlphanumeric sorts tokens with digit runs compared numerically, so
// that "class_2" orders before "class_10".
func sortedAlphanumeric(tokens []string) []string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	sort.Slice(out, func(i, j int) bool {
		return alphanumericLess(out[i], out[j])
	})
	return out
}

func alphanumericLess(a, b string) bool {
	ca := digitRun.FindAllString(a, -1)
	cb := digitRun.FindAllString(b, -1)
	for i := 0; i < len(ca) && i < len(cb); i++ {
		if ca[i] == cb[i] {
			continue
		}
		na, errA := strconv.Atoi(ca[i])
		nb, errB := strconv.Atoi(cb[i])
		if errA == nil && errB == nil {
			if na != nb {
				return na < nb
			}
			continue
		}
		return ca[i] < cb[i]
	}
	return len(ca) < len(cb)
}
