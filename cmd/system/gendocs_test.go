package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCommandDocs(t *testing.T) {
	root := &cobra.Command{Use: "cardioai"}
	dashboard := &cobra.Command{Use: "dashboard", Short: "dashboard commands"}
	dashboard.AddCommand(&cobra.Command{Use: "start", Short: "start the dashboard", Run: func(*cobra.Command, []string) {}})
	root.AddCommand(dashboard)
	root.AddCommand(NewSystemCommand())

	out := filepath.Join(t.TempDir(), "docs")
	n, err := writeCommandDocs(root, out)
	require.NoError(t, err)
	assert.Greater(t, n, 3)

	page, err := os.ReadFile(filepath.Join(out, "cardioai_dashboard_start.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(page), docsHeader))
	assert.NotContains(t, string(page), "Auto generated by spf13/cobra")

	_, err = os.Stat(filepath.Join(out, "cardioai_system_check.md"))
	assert.NoError(t, err)
}
