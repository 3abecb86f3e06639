package opener

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener implements ports.FileOpener with the operating system's default handler
type Opener struct {
	root string
	goos string
}

// NewOpener creates an opener restricted to files below root
func NewOpener(root string) *Opener {
	return &Opener{root: root, goos: runtime.GOOS}
}

// OpenFile opens a file with the default handler and waits for the launcher to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to open %s: %w: %s", path, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Command returns the launcher command for path
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	rel, err := filepath.Rel(o.root, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("file is outside the site: %s", path)
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
