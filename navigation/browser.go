package navigation

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Browser opens URLs in the system browser.
type Browser struct {
	// Command overrides the platform launcher, mainly for tests.
	Command func(ctx context.Context, URL string) *exec.Cmd
}

func (b *Browser) Open(ctx context.Context, URL string) error {
	command := b.Command
	if command == nil {
		command = openCommand
	}
	cmd := command(ctx, URL)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	// the launcher exits once the browser took the URL over
	go func() { _ = cmd.Wait() }()
	return nil
}

func openCommand(_ context.Context, URL string) *exec.Cmd {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", URL)
	case "darwin":
		return exec.Command("open", URL)
	default:
		return exec.Command("xdg-open", URL)
	}
}
