// Package browser opens URLs in the user's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/m-kupiec/music-app/internal/core/ports/driven"
)

// Ensure Opener implements the interface.
var _ driven.Browser = (*Opener)(nil)

// Opener launches the platform's default browser.
type Opener struct{}

// NewOpener creates a browser opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the default browser at the given URL.
func (*Opener) Open(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
