package common

import (
	"os"
	"os/user"
	"path/filepath"
)

const (
	DefaultHTTPHost = "localhost" // Default host interface for the HTTP read API
	DefaultHTTPPort = 9680        // Default TCP port for the HTTP read API
)

// DefaultDataDir is $HOME/gomint/
func DefaultDataDir() string {
	home := HomeDir()
	if home != "" {
		return filepath.Join(home, "gomint")
	}
	return ""
}

func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
