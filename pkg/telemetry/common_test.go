package telemetry

import (
	"sync/atomic"
	"testing"

	"liyu1981.xyz/sensor-data-platform/pkg/db"
	_ "liyu1981.xyz/sensor-data-platform/pkg/testing"
)

// every test works on its own id range, since the in-memory sqlite instance
// is shared across the whole test binary
var testIDCounter atomic.Int64

func init() {
	testIDCounter.Store(1000)
}

func nextTestID() int64 {
	return testIDCounter.Add(1)
}

// nextTestTimeBase hands out a disjoint 1000-second time window per call, so
// time-range assertions never see rows seeded by other tests.
func nextTestTimeBase() int64 {
	return testIDCounter.Add(1) * 1000
}

func ptr(v int64) *int64 {
	return &v
}

func getTestCore(t *testing.T) *Telemetry {
	t.Helper()
	core := &Telemetry{Db: *db.GetInstance(db.UseMemorySqliteDialector())}
	core.WithDefaultServices()
	return core
}
