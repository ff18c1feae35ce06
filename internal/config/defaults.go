package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// PlatformDataDir returns the platform-specific data directory.
//
// Platform paths:
//   - macOS:   ~/Library/Application Support/inputtap/
//   - Linux:   ~/.local/share/inputtap/
//   - Windows: %APPDATA%\inputtap\
//
// Falls back to ~/.inputtap if platform detection fails.
func PlatformDataDir() string {
	switch runtime.GOOS {
	case "darwin":
		return macOSDataDir()
	case "linux":
		return linuxDataDir()
	case "windows":
		return windowsDataDir()
	default:
		return fallbackDataDir()
	}
}

// PlatformConfigDir returns the platform-specific config directory.
//
// Platform paths:
//   - macOS:   ~/Library/Application Support/inputtap/
//   - Linux:   ~/.config/inputtap/
//   - Windows: %APPDATA%\inputtap\
func PlatformConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		return macOSDataDir() // macOS uses same dir for config and data
	case "linux":
		return linuxConfigDir()
	case "windows":
		return windowsDataDir() // Windows uses same dir for config and data
	default:
		return fallbackDataDir()
	}
}

// PlatformLogDir returns the platform-specific log directory.
//
// Platform paths:
//   - macOS:   ~/Library/Logs/inputtap/
//   - Linux:   $XDG_STATE_HOME/inputtap/ or ~/.local/state/inputtap/
//   - Windows: %LOCALAPPDATA%\inputtap\logs\
func PlatformLogDir() string {
	switch runtime.GOOS {
	case "darwin":
		return macOSLogDir()
	case "linux":
		return linuxStateDir()
	case "windows":
		return windowsLogDir()
	default:
		return filepath.Join(fallbackDataDir(), "logs")
	}
}

// PlatformRuntimeDir returns the platform-specific runtime directory for sockets.
//
// Platform paths:
//   - macOS:   /tmp/inputtap-$UID/
//   - Linux:   $XDG_RUNTIME_DIR/inputtap/ or /tmp/inputtap-$UID/
//   - Windows: (uses named pipes, not applicable)
func PlatformRuntimeDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join("/tmp", "inputtap-"+getUserID())
	case "linux":
		return linuxRuntimeDir()
	case "windows":
		return "" // Windows uses named pipes
	default:
		return filepath.Join("/tmp", "inputtap-"+getUserID())
	}
}

// macOS-specific paths

func macOSDataDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, "Library", "Application Support", "inputtap")
}

func macOSLogDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, "Library", "Logs", "inputtap")
}

// Linux-specific paths following XDG Base Directory Specification

func linuxDataDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "inputtap")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "inputtap")
}

func linuxConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "inputtap")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "inputtap")
}

func linuxStateDir() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, "inputtap")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "inputtap")
}

func linuxRuntimeDir() string {
	if xdgRuntime := os.Getenv("XDG_RUNTIME_DIR"); xdgRuntime != "" {
		return filepath.Join(xdgRuntime, "inputtap")
	}
	return filepath.Join("/tmp", "inputtap-"+getUserID())
}

// Windows-specific paths

func windowsDataDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "inputtap")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "AppData", "Roaming", "inputtap")
}

func windowsLogDir() string {
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		return filepath.Join(localAppData, "inputtap", "logs")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "AppData", "Local", "inputtap", "logs")
}

// Fallback path

func fallbackDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".inputtap")
}

func getUserID() string {
	if uid := os.Getuid(); uid >= 0 {
		return fmt.Sprintf("%d", uid)
	}
	return "0"
}

// DefaultPaths holds all default file paths for a platform.
type DefaultPaths struct {
	DataDir    string
	ConfigDir  string
	LogDir     string
	RuntimeDir string

	ConfigFile  string
	JournalFile string
	LogFile     string
	PIDFile     string
}

// GetDefaultPaths returns all default paths for the current platform.
func GetDefaultPaths() *DefaultPaths {
	dataDir := PlatformDataDir()
	configDir := PlatformConfigDir()
	logDir := PlatformLogDir()
	runtimeDir := PlatformRuntimeDir()

	return &DefaultPaths{
		DataDir:    dataDir,
		ConfigDir:  configDir,
		LogDir:     logDir,
		RuntimeDir: runtimeDir,

		ConfigFile:  filepath.Join(configDir, "config.toml"),
		JournalFile: filepath.Join(dataDir, "journal.db"),
		LogFile:     filepath.Join(logDir, "inputtap.log"),
		PIDFile:     filepath.Join(runtimeDir, "inputtapd.pid"),
	}
}

// SupportedConfigFormats returns the list of supported config file formats.
func SupportedConfigFormats() []string {
	return []string{
		"toml",
		"json",
		"yaml",
		"yml",
	}
}

// FindConfigFile searches for a config file in standard locations.
// Returns the path to the first found config file, or empty string if none found.
func FindConfigFile() string {
	paths := GetDefaultPaths()

	// Search order: current directory, then config dir, then data dir.
	searchDirs := []string{
		".",
		paths.ConfigDir,
		paths.DataDir,
	}

	for _, dir := range searchDirs {
		for _, ext := range SupportedConfigFormats() {
			path := filepath.Join(dir, "config."+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}
