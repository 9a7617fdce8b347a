//go:build windows

package paste

import "golang.org/x/sys/windows"

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procKeybdEvent = user32.NewProc("keybd_event")
)

const (
	vkControl      = 0x11
	vkV            = 0x56
	keyeventfKeyUp = 0x0002
)

func keybdEvent(vk byte, flags uint32) {
	procKeybdEvent.Call(uintptr(vk), 0, uintptr(flags), 0)
}

// sendPasteKey simulates Ctrl+V through the user32 keyboard event queue.
func sendPasteKey() error {
	keybdEvent(vkControl, 0)
	keybdEvent(vkV, 0)
	keybdEvent(vkV, keyeventfKeyUp)
	keybdEvent(vkControl, keyeventfKeyUp)
	return nil
}
