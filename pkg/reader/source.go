package reader

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Sample is one raw measurement produced by a sensor source.
type Sample struct {
	Time   int64
	TypeID int64
	Value  float64
}

// Source yields one sample per call. A Read blocks until a sample is
// available; it is always a bounded single read, never a batch.
type Source interface {
	Read() (Sample, error)
}

// FrameSize is the fixed wire size of one sensor frame: 8 bytes little-endian
// unix seconds, 4 bytes little-endian type id, 4 bytes little-endian float32
// value.
const FrameSize = 16

func DecodeFrame(frame []byte) (Sample, error) {
	if len(frame) != FrameSize {
		return Sample{}, fmt.Errorf("expect %d byte frame, got %d bytes", FrameSize, len(frame))
	}
	return Sample{
		Time:   int64(binary.LittleEndian.Uint64(frame[0:8])),
		TypeID: int64(binary.LittleEndian.Uint32(frame[8:12])),
		Value:  float64(math.Float32frombits(binary.LittleEndian.Uint32(frame[12:16]))),
	}, nil
}

// DeviceFileSource reads frames from a character device. The file is opened
// per read so a re-plugged device does not wedge the source.
type DeviceFileSource struct {
	Path string
}

func (s *DeviceFileSource) Read() (Sample, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return Sample{}, err
	}
	defer f.Close()

	frame := make([]byte, FrameSize)
	if _, err := io.ReadFull(f, frame); err != nil {
		return Sample{}, err
	}
	return DecodeFrame(frame)
}
