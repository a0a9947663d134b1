package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()

	for _, name := range []string{"serve", "reel", "video", "register", "login", "profile", "upload"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestReelCommand_Flags(t *testing.T) {
	cmd := NewReelCommand()

	api := cmd.Flags().Lookup("api")
	require.NotNil(t, api)
	assert.Equal(t, "http://localhost:3000", api.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("token"))
	assert.NotNil(t, cmd.Flags().Lookup("mine"))
}

func TestVideoCommand_RequiresID(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"video"})
	assert.Error(t, root.Execute())
}
