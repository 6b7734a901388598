package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	scribe "github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/command"
	"github.com/iw2rmb/scribe/terminal"
)

// Config configures the Editor.
type Config struct {
	// TabWidth is the number of spaces inserted for a tab when ExpandTabs
	// is set. Otherwise a literal '\t' is inserted.
	TabWidth   int
	ExpandTabs bool

	// QuitTimes is how many Quit presses in a row discard unsaved changes.
	QuitTimes int

	// MessageDuration is how long a message stays in the message bar.
	MessageDuration time.Duration

	Style  terminal.Style
	KeyMap command.KeyMap
}

func DefaultConfig() Config {
	return Config{
		TabWidth:        4,
		ExpandTabs:      true,
		QuitTimes:       3,
		MessageDuration: 5 * time.Second,
		Style:           terminal.DefaultStyle(),
		KeyMap:          command.DefaultKeyMap(),
	}
}

// DefaultConfigPath returns the config file location under the user config
// directory.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, scribe.Name, "config.toml"), nil
}

type fileConfig struct {
	TabWidth       *int    `toml:"tab_width"`
	ExpandTabs     *bool   `toml:"expand_tabs"`
	QuitTimes      *int    `toml:"quit_times"`
	MessageTimeout *string `toml:"message_timeout"`

	Colors struct {
		Match         string `toml:"match"`
		SelectedMatch string `toml:"selected_match"`
		StatusFg      string `toml:"status_fg"`
		StatusBg      string `toml:"status_bg"`
	} `toml:"colors"`
}

// LoadConfig returns DefaultConfig overlaid with the TOML file at path. A
// missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if fc.TabWidth != nil {
		if *fc.TabWidth < 1 {
			return cfg, fmt.Errorf("config %s: tab_width must be positive, got %d", path, *fc.TabWidth)
		}
		cfg.TabWidth = *fc.TabWidth
	}
	if fc.ExpandTabs != nil {
		cfg.ExpandTabs = *fc.ExpandTabs
	}
	if fc.QuitTimes != nil {
		if *fc.QuitTimes < 1 {
			return cfg, fmt.Errorf("config %s: quit_times must be positive, got %d", path, *fc.QuitTimes)
		}
		cfg.QuitTimes = *fc.QuitTimes
	}
	if fc.MessageTimeout != nil {
		d, err := time.ParseDuration(*fc.MessageTimeout)
		if err != nil {
			return cfg, fmt.Errorf("config %s: message_timeout: %w", path, err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("config %s: message_timeout must be positive, got %s", path, d)
		}
		cfg.MessageDuration = d
	}

	if c := fc.Colors.Match; c != "" {
		cfg.Style.Match = cfg.Style.Match.Background(lipgloss.Color(c))
	}
	if c := fc.Colors.SelectedMatch; c != "" {
		cfg.Style.SelectedMatch = cfg.Style.SelectedMatch.Background(lipgloss.Color(c))
	}
	if fc.Colors.StatusFg != "" || fc.Colors.StatusBg != "" {
		// Explicit colors replace reverse video.
		st := cfg.Style.Inverted.Reverse(false)
		if c := fc.Colors.StatusFg; c != "" {
			st = st.Foreground(lipgloss.Color(c))
		}
		if c := fc.Colors.StatusBg; c != "" {
			st = st.Background(lipgloss.Color(c))
		}
		cfg.Style.Inverted = st
	}
	return cfg, nil
}
