package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/automoto/catsan64/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIDefaults(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantScene string
		wantWidth int
	}{
		{"no flags", nil, assets.DefaultScene, 1280},
		{"explicit scene", []string{"--scene", "terraces", "--width", "640"}, "terraces", 640},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parser, err := kong.New(&CLI, cliOptions()...)
			require.NoError(t, err)
			_, err = parser.Parse(tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.wantScene, CLI.Scene)
			assert.Equal(t, tc.wantWidth, CLI.Width)
		})
	}
}
