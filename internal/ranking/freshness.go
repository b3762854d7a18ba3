package ranking

import "strconv"

// Freshness buckets assigned by the upstream producer. This layer treats the
// bucket and the seconds delta as ground truth; it never recomputes staleness.
const (
	BucketFresh = "fresh"
	BucketAging = "aging"
	BucketStale = "stale"
)

// DisplayMinutes renders a freshness delta as whole minutes for display,
// or "-" when the delta is unknown.
func DisplayMinutes(seconds *int) string {
	if seconds == nil {
		return "-"
	}
	return strconv.Itoa(*seconds / 60)
}
