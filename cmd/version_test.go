package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionLines(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want []string
	}{
		{
			name: "no build info",
			info: nil,
			want: []string{"version: unknown"},
		},
		{
			name: "empty version",
			info: &debug.BuildInfo{Main: debug.Module{Path: "pegsolve.dev/pkg/pegsolve"}},
			want: []string{"version: unknown"},
		},
		{
			name: "release",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.1",
				Main:      debug.Module{Path: "pegsolve.dev/pkg/pegsolve", Version: "v0.3.0"},
			},
			want: []string{
				"module\t\t pegsolve.dev/pkg/pegsolve",
				"pegsolve version v0.3.0",
				"go version\t go1.25.1",
			},
		},
		{
			name: "dirty checkout",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.1",
				Main:      debug.Module{Path: "pegsolve.dev/pkg/pegsolve", Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "4f2a9c1"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: []string{
				"module\t\t pegsolve.dev/pkg/pegsolve",
				"pegsolve version (devel)",
				"revision\t 4f2a9c1 (modified)",
				"go version\t go1.25.1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionLines(tt.info))
		})
	}
}

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		return
	}

	assert.Contains(t, output, "pegsolve version")
	assert.Contains(t, output, "go version")
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}
