package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/named-data/ndnsim/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenThenValidate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen.topo")
	CmdGen.SetArgs([]string{"--relays", "4", "--endpoints", "3", "-o", out})
	require.NoError(t, CmdGen.Execute())

	gen, err := topo.Load(out)
	require.NoError(t, err)
	assert.Len(t, gen.Vertices, 7)
	assert.Len(t, gen.Endpoints(), 3)

	var buf bytes.Buffer
	CmdValidate.SetArgs([]string{out})
	CmdValidate.SetOut(&buf)
	require.NoError(t, CmdValidate.Execute())
	assert.Contains(t, buf.String(), "vertices=7 endpoints=3 edges=")
	assert.Contains(t, buf.String(), fmt.Sprintf("components=1 fingerprint=%016x\n", gen.Fingerprint()))
}

func TestGenReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	t.Cleanup(func() { genOut = "" })

	CmdGen.SetArgs([]string{"-o", "/dev/full"})
	CmdGen.SilenceUsage = true
	assert.Error(t, CmdGen.Execute())
}

func TestValidateMalformed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.topo")
	require.NoError(t, os.WriteFile(file, []byte("[Vertices]\n0\n"), 0o644))

	CmdValidate.SetArgs([]string{file})
	CmdValidate.SetOut(&bytes.Buffer{})
	CmdValidate.SilenceUsage = true
	err := CmdValidate.Execute()
	assert.ErrorIs(t, err, topo.ErrSyntax)
}
