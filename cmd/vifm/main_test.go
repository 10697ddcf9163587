package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want *options
	}{
		{
			name: "no args",
			args: nil,
			want: &options{},
		},
		{
			name: "two paths",
			args: []string{"/a", "/b"},
			want: &options{paths: []string{"/a", "/b"}},
		},
		{
			name: "select",
			args: []string{"--select", "/a/file.txt"},
			want: &options{paths: []string{"/a/file.txt"}, selectPath: "/a/file.txt"},
		},
		{
			name: "dash c command",
			args: []string{"-c", "quit"},
			want: &options{startupCmds: []string{"quit"}},
		},
		{
			name: "plus command",
			args: []string{"+only"},
			want: &options{startupCmds: []string{"only"}},
		},
		{
			name: "logging and no-configs",
			args: []string{"--logging", "--no-configs"},
			want: &options{logging: true, noConfigs: true},
		},
		{
			name: "version short and long",
			args: []string{"-v", "--version"},
			want: &options{version: true},
		},
		{
			name: "help",
			args: []string{"-h"},
			want: &options{help: true},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parseArgs(c.args)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseArgsUnknownOption(t *testing.T) {
	_, err := parseArgs([]string{"--bogus"})
	assert.Error(t, err)
}

func TestParseArgsSelectRequiresPath(t *testing.T) {
	_, err := parseArgs([]string{"--select"})
	assert.Error(t, err)
}

func TestParseArgsRemoteShipsRemainderVerbatim(t *testing.T) {
	got, err := parseArgs([]string{"-c", "quit", "--remote", "/some/path"})
	require.NoError(t, err)
	assert.True(t, got.remote)
	assert.Equal(t, []string{"-c", "quit", "/some/path"}, got.remoteArgs)
}

func TestResolvePaneDirs(t *testing.T) {
	left, right := resolvePaneDirs(nil)
	assert.Equal(t, left, right, "no paths should open both panes on the same directory")

	left, right = resolvePaneDirs([]string{"/one"})
	assert.Equal(t, "/one", left)
	assert.NotEqual(t, "/one", right, "right should fall back to the working directory, not the sole path")

	left, right = resolvePaneDirs([]string{"/one", "/two", "/three"})
	assert.Equal(t, "/one", left)
	assert.Equal(t, "/two", right, "extra paths beyond the first two should be ignored")
}
