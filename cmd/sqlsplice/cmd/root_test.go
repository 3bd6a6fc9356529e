package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCmd builds a fresh command tree. Rebinding the flags resets the
// shared flag variables to their defaults between tests.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := newRootCmd()
	cmd.AddCommand(newInspectCmd())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func writeMigration(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "-- statement %d\n", i)
	}
	path := filepath.Join(t.TempDir(), "export.sql")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

func TestRootCmd_Reorder(t *testing.T) {
	path := writeMigration(t, 10)

	cmd, out, _ := newTestCmd()
	cmd.SetArgs([]string{path, "-a", "3", "-b", "5", "-c", "9"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Successfully reordered migration file.\n", out.String())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	// 1-based lines 3/5/9 are offsets 2/4/8: lines 5-8 move ahead of 3-4.
	want := "-- statement 1\n-- statement 2\n" +
		"-- statement 5\n-- statement 6\n-- statement 7\n-- statement 8\n" +
		"-- statement 3\n-- statement 4\n" +
		"-- statement 9\n-- statement 10\n"
	assert.Equal(t, want, string(got))
}

func TestRootCmd_RestoreUndoesReorder(t *testing.T) {
	path := writeMigration(t, 10)
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{path, "-a", "3", "-b", "5", "-c", "9"})
	require.NoError(t, cmd.Execute())

	cmd, out, _ := newTestCmd()
	cmd.SetArgs([]string{path, "-a", "3", "-b", "5", "-c", "9", "--restore"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Successfully restored migration file.\n", out.String())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(got))
}

func TestRootCmd_MissingBoundaries(t *testing.T) {
	path := writeMigration(t, 10)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestRootCmd_MissingPath(t *testing.T) {
	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"-a", "3", "-b", "5", "-c", "9"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target file")
}

func TestRootCmd_InvalidBoundariesDoNotWrite(t *testing.T) {
	path := writeMigration(t, 5)
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{path, "-a", "3", "-b", "5", "-c", "99"})
	require.Error(t, cmd.Execute())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(got))
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := writeMigration(t, 10)
	cfgPath := filepath.Join(t.TempDir(), "sqlsplice.json")
	body := fmt.Sprintf(`{"path": %q, "part2Line": 3, "middleLine": 5, "restLine": 9}`, path)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0644))

	cmd, out, _ := newTestCmd()
	cmd.SetArgs([]string{"--config", cfgPath})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Successfully reordered migration file.\n", out.String())
}

func TestRootCmd_ExplicitFlagBeatsConfigFile(t *testing.T) {
	path := writeMigration(t, 10)
	cfgPath := filepath.Join(t.TempDir(), "sqlsplice.json")
	// The file says part2 starts at line 5; the flag says line 3.
	body := fmt.Sprintf(`{"path": %q, "part2Line": 5, "middleLine": 5, "restLine": 9}`, path)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0644))

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"--config", cfgPath, "-a", "3"})
	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	// Effective boundaries 3/5/9: the flag overrode the file's part2
	// start while middle and rest still came from the file. Had the
	// file won, part2 would be empty and the output unchanged.
	want := "-- statement 1\n-- statement 2\n" +
		"-- statement 5\n-- statement 6\n-- statement 7\n-- statement 8\n" +
		"-- statement 3\n-- statement 4\n" +
		"-- statement 9\n-- statement 10\n"
	assert.Equal(t, want, string(got))
}

func TestRootCmd_VerboseProgressGoesToStderr(t *testing.T) {
	path := writeMigration(t, 10)

	cmd, out, errOut := newTestCmd()
	cmd.SetArgs([]string{path, "-a", "3", "-b", "5", "-c", "9", "-v"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Successfully reordered migration file.\n", out.String())
	assert.Contains(t, errOut.String(), "Reordering "+path)
	assert.Contains(t, errOut.String(), "Moved 10 lines")
}
