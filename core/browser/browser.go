package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open opens the default browser at the given URL. The opener is
// started without waiting; no check is made that the URL is reachable.
func Open(url string) error {
	name, args := command(runtime.GOOS, url)
	if name == "" {
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return exec.Command(name, args...).Start()
}

func command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", url}
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}
	default:
		return "", nil
	}
}
