package reader

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/sensor-data-platform/pkg/common"
	"liyu1981.xyz/sensor-data-platform/pkg/telemetry"
)

// Reader polls a sensor source and feeds samples into the value write path.
// It runs on its own goroutine; a duplicate sample (integrity violation) is
// an expected "already recorded" signal, not a failure. The stop signal is
// observed once per loop iteration.
type Reader struct {
	values   telemetry.IValue
	source   Source
	deviceID int64
	interval time.Duration

	stop chan struct{}
	done chan struct{}
}

func New(values telemetry.IValue, source Source, deviceID int64) *Reader {
	return &Reader{
		values:   values,
		source:   source,
		deviceID: deviceID,
		interval: 100 * time.Millisecond,
	}
}

func (r *Reader) WithInterval(interval time.Duration) *Reader {
	r.interval = interval
	return r
}

func (r *Reader) Start() {
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	go r.run()
}

// Stop signals the loop and waits for it to exit. A read in flight finishes
// first; no timeout is imposed on it.
func (r *Reader) Stop() {
	close(r.stop)
	<-r.done
}

func (r *Reader) run() {
	logger := common.GetLoggerWith(common.LoggerNameSensorReader, zap.Int64("device_id", r.deviceID))
	defer close(r.done)

	count := 0
	for {
		select {
		case <-r.stop:
			logger.Info("Sensor reader stopped", zap.Int("samples_read", count))
			return
		default:
		}

		sample, err := r.source.Read()
		if err != nil {
			logger.Warn("Failed to read sample from source", zap.Error(err))
		} else {
			_, err = r.values.AddValue(sample.Time, sample.TypeID, sample.Value, r.deviceID)
			switch {
			case errors.Is(err, telemetry.ErrIntegrityViolation):
				logger.Info("Sample already recorded", zap.Reflect("sample", sample))
			case err != nil:
				logger.Error("Failed to store sample", zap.Reflect("sample", sample), zap.Error(err))
			default:
				count++
				if count%100 == 0 {
					logger.Info("Stored samples", zap.Int("count", count))
				}
			}
		}

		select {
		case <-r.stop:
			logger.Info("Sensor reader stopped", zap.Int("samples_read", count))
			return
		case <-time.After(r.interval):
		}
	}
}
