// Package socialproof computes the time-progressive counters shown on
// marketing pages.
//
// A counter grows smoothly over the course of a day toward base+dailyGrowth,
// never decreases on reload within the same day, and resets at local
// midnight. Persistence failures degrade to the raw computed value instead of
// surfacing an error.
package socialproof

import (
	"context"
	"log"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/noticedesk/noticedesk.uk/internal/platform/random"
	webstorage "github.com/noticedesk/noticedesk.uk/internal/web/storage"
)

// KeyPrefix namespaces persisted counter state by variant.
const KeyPrefix = "social_proof_"

const (
	dateKeyLayout = "2006-01-02"
	minutesPerDay = 1440
	varianceSpan  = 6
	siteZoneName  = "Europe/London"
)

// Clock supplies wall-clock time. Injected for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Config describes one counter variant.
type Config struct {
	Variant     string
	Base        int
	DailyGrowth int
}

// Store is the slice of web storage the counter needs.
type Store interface {
	GetCounter(ctx context.Context, key string) (webstorage.CounterRecord, bool, error)
	PutCounter(ctx context.Context, record webstorage.CounterRecord) error
}

// Counter produces ratcheted display values for counter variants.
type Counter struct {
	store Store
	clock Clock
	zone  *time.Location

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a counter backed by store. A nil clock reads the system clock;
// a nil rng draws variance from a crypto-seeded source.
func New(store Store, clock Clock, rng *rand.Rand) *Counter {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	return &Counter{store: store, clock: clock, rng: rng, zone: siteZone()}
}

// StateKey returns the persisted key for a variant.
func StateKey(variant string) string {
	return KeyPrefix + strings.TrimSpace(variant)
}

// TimeBasedCount computes the smooth time-of-day value before variance and
// ratcheting. now must already be in the site's local zone.
func TimeBasedCount(cfg Config, now time.Time) int {
	minutes := now.Hour()*60 + now.Minute()
	progress := float64(minutes) / minutesPerDay
	count := cfg.Base + int(math.Floor(float64(cfg.DailyGrowth)*progress))
	ceiling := cfg.Base + cfg.DailyGrowth
	if count < cfg.Base {
		count = cfg.Base
	}
	if count > ceiling {
		count = ceiling
	}
	return count
}

// Value returns the display value for one variant, ratcheting the persisted
// daily record so repeated reads within a day never decrease.
func (c *Counter) Value(ctx context.Context, cfg Config) int {
	now := c.localNow()
	timeBased := TimeBasedCount(cfg, now)
	if c == nil || c.store == nil {
		return timeBased
	}

	key := StateKey(cfg.Variant)
	dateKey := now.Format(dateKeyLayout)

	record, found, err := c.store.GetCounter(ctx, key)
	if err != nil {
		log.Printf("social proof read failed variant=%s err=%v", cfg.Variant, err)
		return timeBased
	}

	// A record from a previous day no longer binds today's value.
	fresh := !found || record.DateKey != dateKey
	if fresh {
		record = webstorage.CounterRecord{
			Key:      key,
			DateKey:  dateKey,
			Variance: c.drawVariance(),
		}
	}

	ceiling := cfg.Base + cfg.DailyGrowth
	displayed := timeBased + record.Variance
	if displayed > ceiling {
		displayed = ceiling
	}
	if record.Count > displayed {
		displayed = record.Count
	}

	if fresh || displayed > record.Count {
		record.Count = displayed
		record.UpdatedAt = now.UTC()
		if err := c.store.PutCounter(ctx, record); err != nil {
			log.Printf("social proof write failed variant=%s err=%v", cfg.Variant, err)
			return timeBased
		}
	}
	return displayed
}

func (c *Counter) localNow() time.Time {
	if c == nil {
		return time.Now().In(siteZone())
	}
	now := time.Now()
	if c.clock != nil {
		now = c.clock.Now()
	}
	if c.zone != nil {
		now = now.In(c.zone)
	}
	return now
}

func (c *Counter) drawVariance() int {
	if c == nil || c.rng == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(varianceSpan)
}

var (
	siteZoneOnce sync.Once
	siteZoneLoc  *time.Location
)

func siteZone() *time.Location {
	siteZoneOnce.Do(func() {
		zone, err := time.LoadLocation(siteZoneName)
		if err != nil {
			log.Printf("load %s zone failed, using UTC: %v", siteZoneName, err)
			zone = time.UTC
		}
		siteZoneLoc = zone
	})
	return siteZoneLoc
}
