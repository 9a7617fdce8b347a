//go:build !linux && !darwin && !windows

package paste

import "errors"

func sendPasteKey() error {
	return errors.New("paste keystroke not supported on this platform")
}
