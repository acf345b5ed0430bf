package content

import "strings"

// Counter configures one live social-proof counter variant. Base is the
// value shown at local midnight and DailyGrowth is how far it climbs by
// the end of the day.
type Counter struct {
	Variant     string
	Base        int
	DailyGrowth int
	Label       string
}

const (
	// CounterNoticesToday resets each day and climbs while the UK is awake.
	CounterNoticesToday = "notices_today"
	// CounterLandlordsServed is the long-running headline figure.
	CounterLandlordsServed = "landlords_served"
)

var counters = []Counter{
	{
		Variant:     CounterNoticesToday,
		Base:        38,
		DailyGrowth: 214,
		Label:       "landlords started a notice today",
	},
	{
		Variant:     CounterLandlordsServed,
		Base:        12480,
		DailyGrowth: 160,
		Label:       "notices prepared for UK landlords",
	},
}

// Counters returns every configured counter variant.
func Counters() []Counter {
	result := make([]Counter, len(counters))
	copy(result, counters)
	return result
}

// CounterByVariant returns the configuration for one counter variant.
func CounterByVariant(variant string) (Counter, bool) {
	variant = strings.TrimSpace(variant)
	for _, counter := range counters {
		if counter.Variant == variant {
			return counter, true
		}
	}
	return Counter{}, false
}
