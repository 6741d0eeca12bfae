package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Success))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
}

func TestDefaultTheme_ColorsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	colors := []lipgloss.Color{
		theme.Primary,
		theme.Success,
		theme.Error,
		theme.Muted,
	}

	seen := make(map[string]bool)
	for _, c := range colors {
		s := string(c)
		assert.False(t, seen[s], "colour %s used twice", s)
		seen[s] = true
	}
}

func TestNewStyles(t *testing.T) {
	t.Run("nil theme falls back to default", func(t *testing.T) {
		s := NewStyles(nil)
		require.NotNil(t, s)
		assert.Equal(t, DefaultTheme(), s.Theme())
	})

	t.Run("custom theme is kept", func(t *testing.T) {
		theme := &Theme{Primary: lipgloss.Color("#FFFFFF")}
		s := NewStyles(theme)
		assert.Equal(t, theme, s.Theme())
	})
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	require.NotNil(t, s)
	assert.True(t, s.Title.GetBold())
	assert.True(t, s.Selected.GetBold())
}
