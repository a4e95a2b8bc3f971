package hostconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/types"
)

func TestDefault(t *testing.T) {
	hc := Default()

	assert.Equal(t, "Segoe UI", hc.FontFamily)
	assert.True(t, hc.SupportsInteractivity)
	assert.Equal(t, uint32(8), hc.Spacing.Default)
	assert.Equal(t, uint32(20), hc.Spacing.Padding)
	assert.Equal(t, uint32(5), hc.Actions.MaxActions)
	assert.Equal(t, uint32(10), hc.Actions.ButtonSpacing)
	assert.Equal(t, types.OrientationHorizontal, hc.Actions.ActionsOrientation)
	assert.Equal(t, types.ActionAlignStretch, hc.Actions.ActionAlignment)
	assert.Equal(t, types.ShowCardInline, hc.Actions.ShowCard.ActionMode)
	assert.Equal(t, types.ContainerStyleEmphasis, hc.Actions.ShowCard.Style)
	assert.Equal(t, types.IconAboveTitle, hc.Actions.IconPlacement)
	assert.Equal(t, types.ImageSizeMedium, hc.ImageSet.ImageSize)
	assert.Equal(t, types.TextWeightBolder, hc.FactSet.Title.Weight)
	assert.Equal(t, "Courier New", hc.FontTypes.Monospace.FontFamily)
	assert.Equal(t, "#FFFFFFFF", hc.ContainerStyles.Default.BackgroundColor)
	assert.Equal(t, HighlightColorConfig{Default: "#FFFFFF00", Subtle: "#FFFFFFE0"},
		hc.ContainerStyles.Emphasis.ForegroundColors.Accent.HighlightColors)
	assert.False(t, hc.Overflow.OverflowMaxActions)
	assert.Equal(t, "...", hc.Overflow.ButtonText)
	assert.Empty(t, hc.Validate())
}

func TestDefaultReturnsCopies(t *testing.T) {
	a := Default()
	a.Actions.MaxActions = 1

	assert.Equal(t, uint32(5), Default().Actions.MaxActions)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
		check  func(t *testing.T, hc *HostConfig)
	}{
		{
			name:   "json overrides keep other defaults",
			format: FormatJSON,
			doc:    `{"actions": {"maxActions": 3, "actionAlignment": "Right"}, "spacing": {"Small": 4}}`,
			check: func(t *testing.T, hc *HostConfig) {
				assert.Equal(t, uint32(3), hc.Actions.MaxActions)
				assert.Equal(t, types.ActionAlignRight, hc.Actions.ActionAlignment)
				assert.Equal(t, uint32(4), hc.Spacing.Small, "keys match case-insensitively")
				assert.Equal(t, uint32(8), hc.Spacing.Default)
				assert.Equal(t, uint32(10), hc.Actions.ButtonSpacing)
			},
		},
		{
			name:   "yaml",
			format: FormatYAML,
			doc:    "supportsInteractivity: false\nactions:\n  actionsOrientation: vertical\n  showCard:\n    actionMode: popup\n",
			check: func(t *testing.T, hc *HostConfig) {
				assert.False(t, hc.SupportsInteractivity)
				assert.Equal(t, types.OrientationVertical, hc.Actions.ActionsOrientation)
				assert.Equal(t, types.ShowCardPopup, hc.Actions.ShowCard.ActionMode)
			},
		},
		{
			name:   "highlight colors",
			format: FormatYAML,
			doc:    "containerStyles:\n  good:\n    foregroundColors:\n      good:\n        highlightColors:\n          default: \"#FF00FF00\"\n",
			check: func(t *testing.T, hc *HostConfig) {
				got := hc.ContainerStyles.Good.ForegroundColors.Good.HighlightColors
				assert.Equal(t, "#FF00FF00", got.Default)
				assert.Equal(t, "#FFFFFFE0", got.Subtle)
			},
		},
		{
			name:   "toml",
			format: FormatTOML,
			doc:    "[overflow]\noverflowMaxActions = true\nbuttonText = \"More\"\n",
			check: func(t *testing.T, hc *HostConfig) {
				assert.True(t, hc.Overflow.OverflowMaxActions)
				assert.Equal(t, "More", hc.Overflow.ButtonText)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc, err := Parse([]byte(tt.doc), tt.format)
			require.NoError(t, err)
			tt.check(t, hc)
		})
	}
}

func TestValidateHighlightColors(t *testing.T) {
	hc := Default()
	hc.ContainerStyles.Warning.ForegroundColors.Dark.HighlightColors.Subtle = "yellow"

	errs := hc.Validate()
	require.Len(t, errs, 1)
	assert.True(t, errors.IsErrorCode(errs[0], errors.ErrConfigValid))
	assert.Contains(t, errs[0].Error(), "containerStyles.warning.foregroundColors.dark.highlightColors.subtle")
}

func TestParseInvalidEnum(t *testing.T) {
	_, err := Parse([]byte(`{"actions": {"actionsOrientation": "diagonal"}}`), FormatJSON)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestFromJSON(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		res := FromJSON([]byte(`{"actions": `))
		assert.Nil(t, res.HostConfig)
		require.Len(t, res.Errors, 1)
		assert.True(t, errors.IsErrorCode(res.Errors[0], errors.ErrConfigParse))
	})

	t.Run("validation problems keep the config", func(t *testing.T) {
		res := FromJSON([]byte(`{"separator": {"lineColor": "grey"}, "textBlock": {"headingLevel": 9}}`))
		require.NotNil(t, res.HostConfig)
		require.Len(t, res.Errors, 2)
		assert.True(t, errors.IsErrorCode(res.Errors[0], errors.ErrConfigValid))
		assert.Equal(t, "separator.lineColor", errors.GetErrorDetails(res.Errors[0])["key"])
	})

	t.Run("clean", func(t *testing.T) {
		res := FromJSON([]byte(`{"fontFamily": "Inter"}`))
		require.NotNil(t, res.HostConfig)
		assert.Empty(t, res.Errors)
		assert.Equal(t, "Inter", res.HostConfig.FontFamily)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "host.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actions:\n  maxActions: 4\n  buttonSpacing: 6\n"), 0644))

	t.Setenv("CARDRENDER_ACTIONS_MAXACTIONS", "2")
	t.Setenv("CARDRENDER_SUPPORTSINTERACTIVITY", "false")
	t.Setenv("CARDRENDER_NOT_A_KEY", "x")

	hc, err := Load(LoadOptions{
		Path:      path,
		Overrides: map[string]any{"actions.buttonSpacing": 12, "fontFamily": "Inter"},
		Env:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, uint32(2), hc.Actions.MaxActions, "env wins over file")
	assert.Equal(t, uint32(12), hc.Actions.ButtonSpacing, "overrides win over file")
	assert.Equal(t, "Inter", hc.FontFamily)
	assert.False(t, hc.SupportsInteractivity)
}

func TestLoadWithoutEnv(t *testing.T) {
	t.Setenv("CARDRENDER_ACTIONS_MAXACTIONS", "2")

	hc, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, uint32(5), hc.Actions.MaxActions)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(LoadOptions{Path: "host.ini"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Load(LoadOptions{Path: filepath.Join(t.TempDir(), "missing.json")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestMarshalLoadsBack(t *testing.T) {
	want := Default()
	want.Actions.MaxActions = 2
	want.Overflow.OverflowMaxActions = true

	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(want, format)
			require.NoError(t, err)

			got, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestGenerateCommented(t *testing.T) {
	out := GenerateCommented()

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented assignment: %q", line)
	}
	assert.Contains(t, out, "# maxActions = 5")
}

func TestFormat(t *testing.T) {
	f, err := FormatFromPath("/etc/cardrender/hostconfig.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestCache(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	doc := []byte(`{"actions": {"maxActions": 1}}`)
	a, err := c.Parse(doc, FormatJSON)
	require.NoError(t, err)
	b, err := c.Parse(doc, FormatJSON)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, c.Len())

	_, err = c.Parse([]byte(`{`), FormatJSON)
	assert.Error(t, err)
	assert.Equal(t, 1, c.Len(), "failures are not cached")

	_, _ = c.Parse([]byte(`{}`), FormatJSON)
	_, _ = c.Parse([]byte(`{"fontFamily": "x"}`), FormatJSON)
	assert.Equal(t, 2, c.Len(), "bounded by size")

	c.Purge()
	assert.Equal(t, 0, c.Len())
}
