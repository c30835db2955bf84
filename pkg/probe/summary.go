package probe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-plane-tracer/pkg/geometry"
)

// Summary counts hits and misses of a probe run
type Summary struct {
	Total  int
	Hits   int
	Misses map[geometry.MissReason]int
}

// Summarize counts the outcomes in results
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), Misses: make(map[geometry.MissReason]int)}
	for _, r := range results {
		if r.Intersection.Hit() {
			s.Hits++
		} else {
			s.Misses[r.Intersection.Reason]++
		}
	}
	return s
}

func (s Summary) String() string {
	reasons := make([]geometry.MissReason, 0, len(s.Misses))
	for reason := range s.Misses {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "%d rays, %d hits, %d misses", s.Total, s.Hits, s.Total-s.Hits)
	for _, reason := range reasons {
		fmt.Fprintf(&b, ", %s=%d", reason, s.Misses[reason])
	}
	return b.String()
}
