//go:build linux

package paste

import (
	"fmt"
	"os/exec"
)

// sendPasteKey simulates Ctrl+V with whichever key injection tool is
// installed: xdotool on X11, wtype on Wayland, xvkbd as a last resort.
func sendPasteKey() error {
	tools := [][]string{
		{"xdotool", "key", "--clearmodifiers", "ctrl+v"},
		{"wtype", "-M", "ctrl", "-k", "v", "-m", "ctrl"},
		{"xvkbd", "-text", `\Cv`},
	}
	var firstErr error
	for _, argv := range tools {
		path, err := exec.LookPath(argv[0])
		if err != nil {
			continue
		}
		if err := exec.Command(path, argv[1:]...).Run(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", argv[0], err)
			}
			continue
		}
		return nil
	}
	if firstErr != nil {
		return firstErr
	}
	return fmt.Errorf("no key injection tool found (xdotool, wtype, xvkbd)")
}
