//go:build darwin

package paste

import "os/exec"

const pasteScript = `tell application "System Events"
	keystroke "v" using command down
end tell`

// sendPasteKey simulates Cmd+V through System Events. Requires the
// accessibility permission for the terminal or app hosting this process.
func sendPasteKey() error {
	return exec.Command("osascript", "-e", pasteScript).Run()
}
