// Package capture abstracts where photos come from. On a phone this
// would be the camera; in the terminal it is either a watched
// directory of image files or a built-in stub.
package capture

import (
	"github.com/elliotskunk/stumble/internal/stumble"
)

// Device produces one photo per call.
type Device interface {
	// Capture returns the current photo as an encoded handle.
	Capture() (stumble.Photo, error)

	// Name describes the device for the UI.
	Name() string
}
