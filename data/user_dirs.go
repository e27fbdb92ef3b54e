package data

import (
	"os"
	"path/filepath"
	"runtime"
)

func UserDataHomeDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		uhd, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(uhd, ".local", "share"), nil
	default:
		return os.UserConfigDir()
	}
}
