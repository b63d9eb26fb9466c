package reader

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/sensor-data-platform/pkg/common"
	"liyu1981.xyz/sensor-data-platform/pkg/db"
	"liyu1981.xyz/sensor-data-platform/pkg/telemetry"
	_ "liyu1981.xyz/sensor-data-platform/pkg/testing"
)

// fakeSource replays a fixed sample list, then keeps repeating the last one
// so the loop keeps exercising the duplicate path until stopped.
type fakeSource struct {
	mu      sync.Mutex
	samples []Sample
	idx     int
}

func (s *fakeSource) Read() (Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sample := s.samples[s.idx]
	if s.idx < len(s.samples)-1 {
		s.idx++
	}
	return sample, nil
}

func getTestCore(t *testing.T) *telemetry.Telemetry {
	t.Helper()
	core := &telemetry.Telemetry{Db: *db.GetInstance(db.UseMemorySqliteDialector())}
	core.WithDefaultServices()
	return core
}

func encodeFrame(sampleTime int64, typeID int64, value float32) []byte {
	frame := make([]byte, FrameSize)
	binary.LittleEndian.PutUint64(frame[0:8], uint64(sampleTime))
	binary.LittleEndian.PutUint32(frame[8:12], uint32(typeID))
	binary.LittleEndian.PutUint32(frame[12:16], math.Float32bits(value))
	return frame
}

func TestDecodeFrame(t *testing.T) {
	sample, err := DecodeFrame(encodeFrame(1695000000, 7, 21.5))
	require.NoError(t, err)
	assert.Equal(t, int64(1695000000), sample.Time)
	assert.Equal(t, int64(7), sample.TypeID)
	assert.InDelta(t, 21.5, sample.Value, 0.0001)

	_, err = DecodeFrame([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestDeviceFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sensor")
	require.NoError(t, os.WriteFile(path, encodeFrame(1695000100, 3, -4.25), 0o644))

	source := &DeviceFileSource{Path: path}
	sample, err := source.Read()
	require.NoError(t, err)
	assert.Equal(t, int64(1695000100), sample.Time)
	assert.Equal(t, int64(3), sample.TypeID)
	assert.InDelta(t, -4.25, sample.Value, 0.0001)

	source.Path = filepath.Join(t.TempDir(), "missing")
	_, err = source.Read()
	assert.Error(t, err)
}

func TestReaderStoresSamplesAndToleratesDuplicates(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	deviceID := int64(900001)

	source := &fakeSource{samples: []Sample{
		{Time: 2000001, TypeID: 42, Value: 10},
		{Time: 2000002, TypeID: 42, Value: 11},
		// the last sample repeats forever, every repeat is a duplicate
		{Time: 2000003, TypeID: 42, Value: 12},
	}}

	r := New(core.Value, source, deviceID).WithInterval(time.Millisecond)
	r.Start()
	time.Sleep(100 * time.Millisecond)
	r.Stop()

	values, err := core.Value.GetValuesByDeviceID(deviceID)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, int64(2000001), values[0].Time)
	assert.Equal(t, int64(2000003), values[2].Time)
}

func TestReaderStopIsPrompt(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)

	source := &fakeSource{samples: []Sample{
		{Time: 2100001, TypeID: 43, Value: 1},
	}}

	r := New(core.Value, source, 900002).WithInterval(time.Hour)
	r.Start()
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Stop to return promptly even mid-sleep")
	}
}
