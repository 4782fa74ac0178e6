package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultSubdir is appended to the home directory when NOTE_LOCATION is
// not set.
const DefaultSubdir = "Note"

// Config holds everything resolved at startup: where the notes live, which
// editor to launch and how chatty the log is.
type Config struct {
	NotesDir string
	Editor   string
	LogLevel logrus.Level
}

// Load resolves the configuration from the environment: NOTE_LOCATION,
// NOTE_EDITOR and NOTE_LOGLEVEL, with platform defaults for the last two.
// An unsupported OS, or no resolvable home directory without a
// NOTE_LOCATION override, is a startup failure.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NOTE")
	v.AutomaticEnv()
	v.SetDefault("loglevel", "INFO")

	home, defaultEditor, err := platformDefaults()
	if err != nil {
		return Config{}, err
	}

	dir := v.GetString("location")
	if dir == "" {
		if home == "" {
			return Config{}, fmt.Errorf("missing home directory variable and NOTE_LOCATION is not set")
		}
		dir = filepath.Join(home, DefaultSubdir)
	}

	editor := v.GetString("editor")
	if editor == "" {
		editor = defaultEditor
	}

	return Config{
		NotesDir: dir,
		Editor:   editor,
		LogLevel: parseLevel(v.GetString("loglevel")),
	}, nil
}

func platformDefaults() (home, editor string, err error) {
	switch runtime.GOOS {
	case "windows":
		return os.Getenv("HOMEPATH"), "notepad.exe", nil
	case "linux", "darwin":
		return os.Getenv("HOME"), "vi", nil
	default:
		return "", "", fmt.Errorf("unknown platform %s", runtime.GOOS)
	}
}

// parseLevel maps the NOTE_LOGLEVEL vocabulary onto logrus levels.
// Anything unrecognized means the default, INFO.
func parseLevel(level string) logrus.Level {
	switch level {
	case "DEBUG":
		return logrus.DebugLevel
	case "INFO":
		return logrus.InfoLevel
	case "WARNING":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	case "CRITICAL":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
