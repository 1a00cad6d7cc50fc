package probe

import (
	"regexp"
	"strconv"

	"github.com/cockroachdb/errors"
)

// ErrMalformed is returned for a body that is not "{a} + {b} = {sum}".
var ErrMalformed = errors.New("malformed body")

// ErrViolation is returned for a well-formed body that breaks an invariant.
var ErrViolation = errors.New("invariant violated")

var bodyPattern = regexp.MustCompile(`^(-?\d+) \+ (-?\d+) = (-?\d+)$`)

// Parse extracts the operands and sum from a response body.
func Parse(body string) (Sample, error) {
	m := bodyPattern.FindStringSubmatch(body)
	if m == nil {
		return Sample{}, errors.Wrapf(ErrMalformed, "%q", body)
	}
	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Sample{}, errors.Mark(errors.Wrapf(err, "%q", body), ErrMalformed)
		}
		nums[i] = n
	}
	return Sample{Left: nums[0], Right: nums[1], Sum: nums[2]}, nil
}

// Check verifies the arithmetic and that both operands lie in [minValue, maxValue].
func Check(s Sample, minValue, maxValue int) error {
	if s.Sum != s.Left+s.Right {
		return errors.Wrapf(ErrViolation, "%d + %d != %d", s.Left, s.Right, s.Sum)
	}
	for _, v := range []int{s.Left, s.Right} {
		if v < minValue || v > maxValue {
			return errors.Wrapf(ErrViolation, "operand %d not in [%d, %d]", v, minValue, maxValue)
		}
	}
	return nil
}

// summarize folds samples into the min/max/distinct fields of stats.
func summarize(samples []Sample, stats *Stats) {
	seen := make(map[int]struct{})
	for i, s := range samples {
		for _, v := range []int{s.Left, s.Right} {
			if i == 0 && len(seen) == 0 {
				stats.MinSeen, stats.MaxSeen = v, v
			}
			stats.MinSeen = min(stats.MinSeen, v)
			stats.MaxSeen = max(stats.MaxSeen, v)
			seen[v] = struct{}{}
		}
	}
	stats.Distinct = len(seen)
}
