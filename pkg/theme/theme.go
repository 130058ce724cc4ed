// Package theme loads stylesheet declarations from TOML or YAML theme
// files, so applications can override the built-in diagnostic styling
// without recompiling.
package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/wycats/language-reporting/pkg/errors"
	"github.com/wycats/language-reporting/pkg/logging"
	"github.com/wycats/language-reporting/pkg/stylesheet"
)

// Theme is the on-disk shape of a theme file: a table of selector strings
// mapping to style declaration strings.
type Theme struct {
	Styles map[string]string `toml:"styles" yaml:"styles"`
}

// Load reads a theme file and builds a stylesheet from it. The format is
// chosen by extension: .toml, or .yaml/.yml. Loading fails outright on the
// first malformed declaration; there are no partial themes.
func Load(path string) (*stylesheet.Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme file %s", path)
	}

	var theme Theme
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &theme)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &theme)
	default:
		return nil, errors.Newf(errors.ErrThemeLoad, "unsupported theme file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeParse, "failed to parse theme file %s", path)
	}

	logger := logging.GetLogger("theme")
	logger.Debug().Str("path", path).Int("styles", len(theme.Styles)).Msg("Loaded theme file")
	return FromMap(theme.Styles)
}

// FromMap builds a stylesheet from selector/declaration pairs. Unlike
// in-code style literals these come from files, so malformed declarations
// return coded errors instead of panicking.
func FromMap(styles map[string]string) (*stylesheet.Stylesheet, error) {
	selectors := make([]string, 0, len(styles))
	for selector := range styles {
		selectors = append(selectors, selector)
	}
	sort.Strings(selectors)

	sheet := stylesheet.New()
	for _, selector := range selectors {
		style, err := stylesheet.ParseStyle(styles[selector])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrThemeParse, "invalid style for selector %q", selector)
		}
		sheet.AddStyle(stylesheet.ParseSelector(selector), style)
	}
	return sheet, nil
}

// Discover looks for a user theme file under the XDG config directory,
// e.g. ~/.config/<app>/theme.toml. Returns false when none exists.
func Discover(app string) (string, bool) {
	for _, name := range []string{"theme.toml", "theme.yaml", "theme.yml"} {
		path, err := xdg.SearchConfigFile(filepath.Join(app, name))
		if err == nil {
			return path, true
		}
	}
	return "", false
}
