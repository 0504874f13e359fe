//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Index builds the knowledge store from the standards documents under
// docs/standards. Requires a built binary (mage build).
func Index() error {
	bin := filepath.Join(binDir, binName)
	if _, err := os.Stat(bin); err != nil {
		return fmt.Errorf("binary not found, run mage build first: %w", err)
	}
	cmd := exec.Command(bin, "knowledge", "build")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
