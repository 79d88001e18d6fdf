package capture

import (
	"encoding/base64"
	"fmt"
	"sync/atomic"

	"github.com/elliotskunk/stumble/internal/stumble"
)

// StubDevice fabricates placeholder photos so the full flow works
// without a photo directory. Each capture produces a distinct handle.
type StubDevice struct {
	count atomic.Int64
}

// NewStubDevice creates a StubDevice.
func NewStubDevice() *StubDevice {
	return &StubDevice{}
}

func (d *StubDevice) Name() string {
	return "simulated camera"
}

// Capture returns a small synthetic payload. The challenge generator
// can decode it; the model just won't see anything interesting.
func (d *StubDevice) Capture() (stumble.Photo, error) {
	n := d.count.Add(1)
	payload := fmt.Sprintf("stumble-simulated-photo-%d", n)
	return stumble.Photo("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte(payload))), nil
}
