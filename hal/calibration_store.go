package hal

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrShortBacking is returned when the backing region is smaller than one
// CalibrationRecord.
var ErrShortBacking = errors.New("calibration backing too small")

// calibrationRecordSize is the fixed wire size of CalibrationRecord: a
// uint32 magic followed by a float32 skew, both little-endian.
const calibrationRecordSize = 8

// BufferCalibrationStore is a CalibrationStore over a raw byte region, the
// same "caller owns the persistent memory, we own the layout" split as
// bytecode.NVRAM: on the firmware target backing is a fixed 8-byte SRAM
// array declared in cmd/ledctrl-fw, so the record does not survive a
// power cycle; in tests it is an ordinary slice.
type BufferCalibrationStore struct {
	backing []byte
}

// NewBufferCalibrationStore wraps backing, which must be at least 8 bytes.
func NewBufferCalibrationStore(backing []byte) (*BufferCalibrationStore, error) {
	if len(backing) < calibrationRecordSize {
		return nil, ErrShortBacking
	}
	return &BufferCalibrationStore{backing: backing}, nil
}

func (s *BufferCalibrationStore) Read() (CalibrationRecord, error) {
	magic := binary.LittleEndian.Uint32(s.backing[0:4])
	bits := binary.LittleEndian.Uint32(s.backing[4:8])
	return CalibrationRecord{Magic: magic, Skew: math.Float32frombits(bits)}, nil
}

func (s *BufferCalibrationStore) Write(rec CalibrationRecord) error {
	binary.LittleEndian.PutUint32(s.backing[0:4], rec.Magic)
	binary.LittleEndian.PutUint32(s.backing[4:8], math.Float32bits(rec.Skew))
	return nil
}

func (s *BufferCalibrationStore) Reset() error {
	for i := range s.backing[:calibrationRecordSize] {
		s.backing[i] = 0
	}
	return nil
}
