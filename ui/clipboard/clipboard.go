// Package clipboard copies text to the system clipboard. It writes an OSC 52
// sequence to the terminal first, which also works over SSH, and falls back
// to the platform's clipboard command.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/maiconbre/barbershop/msg"
)

// ErrEmpty is returned when there is nothing to copy.
var ErrEmpty = errors.New("clipboard: nothing to copy")

// ttyPath is the controlling terminal. Tests point it at a file.
var ttyPath = "/dev/tty"

// Copy returns a command that copies text and reports the outcome as a
// msg.Copied labelled what.
func Copy(what, text string) tea.Cmd {
	return func() tea.Msg {
		return msg.Copied{What: what, Err: Write(text)}
	}
}

// Write copies text, trying OSC 52 and then a native command.
func Write(text string) error {
	if text == "" {
		return ErrEmpty
	}
	if err := writeOSC52(text); err == nil {
		return nil
	}
	return writeNative(text)
}

func writeOSC52(text string) error {
	tty, err := os.OpenFile(ttyPath, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("clipboard: open tty: %w", err)
	}
	defer tty.Close()
	_, err = io.WriteString(tty, ansi.SetSystemClipboard(text))
	return err
}

func writeNative(text string) error {
	name, args := nativeCommand()
	if name == "" {
		return fmt.Errorf("clipboard: no clipboard command for %s", runtime.GOOS)
	}
	c := exec.Command(name, args...)
	stdin, err := c.StdinPipe()
	if err != nil {
		return fmt.Errorf("clipboard: open stdin pipe: %w", err)
	}
	if err := c.Start(); err != nil {
		return fmt.Errorf("clipboard: start %s: %w", name, err)
	}
	if _, err := io.WriteString(stdin, text); err != nil {
		_ = stdin.Close()
		_ = c.Wait()
		return fmt.Errorf("clipboard: write to %s: %w", name, err)
	}
	if err := stdin.Close(); err != nil {
		_ = c.Wait()
		return fmt.Errorf("clipboard: close stdin: %w", err)
	}
	if err := c.Wait(); err != nil {
		return fmt.Errorf("clipboard: %s exited: %w", name, err)
	}
	return nil
}

// nativeCommand returns the clipboard command for this OS, or "".
func nativeCommand() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbcopy", nil
	case "windows":
		return "clip", nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if path, err := exec.LookPath("wl-copy"); err == nil && os.Getenv("WAYLAND_DISPLAY") != "" {
			return path, nil
		}
		if path, err := exec.LookPath("xclip"); err == nil {
			return path, []string{"-in", "-selection", "clipboard"}
		}
		if path, err := exec.LookPath("xsel"); err == nil {
			return path, []string{"--clipboard", "--input"}
		}
	}
	return "", nil
}
