package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestValidateTemplate_CompleteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, os.WriteFile(path, []byte(testTemplate), 0644))

	var buf bytes.Buffer
	err := validateTemplate(path, missingConfig(t), &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "✓ Found RESULTS_PLACEHOLDER")
	assert.Contains(t, output, "✓ Found CONCLUSION_PLACEHOLDER")
	assert.Contains(t, output, "✓ Anchor heading present")
	assert.Contains(t, output, "✓ Template is ready to finalize")
}

func TestValidateTemplate_MissingAnchorWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	template := "RESULTS_PLACEHOLDER\n\nCONCLUSION_PLACEHOLDER\n"
	require.NoError(t, os.WriteFile(path, []byte(template), 0644))

	var buf bytes.Buffer
	err := validateTemplate(path, missingConfig(t), &buf)

	// A missing anchor is a warning, not a validation failure
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Warning: Anchor heading not found")
	assert.Contains(t, output, "Warning: Template is missing placeholder tokens")
	assert.Contains(t, output, "✓ Template is ready to finalize")
}

func TestValidateTemplate_NoTokensFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, os.WriteFile(path, []byte("# Report\n\nNothing to fill in.\n"), 0644))

	var buf bytes.Buffer
	err := validateTemplate(path, missingConfig(t), &buf)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "✗ Template contains none of the placeholder tokens")
}

func TestValidateTemplate_UnreadableFile(t *testing.T) {
	var buf bytes.Buffer
	err := validateTemplate(filepath.Join(t.TempDir(), "absent.md"), missingConfig(t), &buf)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "✗ Failed to read template")
}
