package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"liyu1981.xyz/battery-tracking-service/pkg/models"
)

func TestUI_Enabled(t *testing.T) {
	// Force lipgloss to render colors even if not TTY
	t.Setenv("CLICOLOR_FORCE", "1")

	u := New(os.Stdout)
	u.enabled = true

	for _, color := range []models.StatusColor{
		models.StatusColorRed, models.StatusColorYellow, models.StatusColorGreen, models.StatusColorGray,
	} {
		got := u.Status(color)
		assert.Contains(t, got, color.Label())
		assert.NotEqual(t, color.Label(), got, "%s rendered as plain text when enabled", color)
	}
	assert.NotEqual(t, "text", u.Bold("text"))
}

func TestUI_Disabled(t *testing.T) {
	u := New(&bytes.Buffer{})

	assert.Equal(t, "Critical", u.Status(models.StatusColorRed))
	assert.Equal(t, "Unknown", u.Status(models.StatusColorGray))
	assert.Equal(t, "text", u.Bold("text"))
	assert.Equal(t, "text", u.Dim("text"))
}

func TestShouldStyle(t *testing.T) {
	assert.False(t, shouldStyle(nil))
	assert.False(t, shouldStyle(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()
	assert.False(t, shouldStyle(f), "regular files are not terminals")
}

func TestTable(t *testing.T) {
	u := New(&bytes.Buffer{})

	out := u.Table([]string{"ID", "PRODUCT"}, [][]string{{"1", "BX-100"}, {"2", "BX-200"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	var content []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			content = append(content, strings.Join(strings.Fields(line), " "))
		}
	}
	assert.Equal(t, []string{"ID PRODUCT", "1 BX-100", "2 BX-200"}, content)
}
