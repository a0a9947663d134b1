package cli

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikhilkumar92976/FOOD-INSTA/config"
	"github.com/nikhilkumar92976/FOOD-INSTA/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIServer(t *testing.T) (string, *testutil.FakeMedia) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Auth:  config.AuthConfig{JWTSecret: "test-secret"},
		Media: config.MediaConfig{MaxUploadBytes: 1 << 20},
	}
	media := &testutil.FakeMedia{}
	r, _ := buildRouter(cfg, testutil.OpenTestDB(t), media, nil)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL, media
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	err := root.Execute()
	return out.String(), err
}

func tokenFrom(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if tok, ok := strings.CutPrefix(line, "token: "); ok && tok != "" {
			return tok
		}
	}
	t.Fatalf("no token in output: %q", out)
	return ""
}

func TestPartnerWorkflow(t *testing.T) {
	api, media := newAPIServer(t)

	out, err := runCLI(t, "", "register", "--api", api, "--partner",
		"--name", "Dosa Hub", "--email", "dosa@example.com", "--password", "pw",
		"--contact", "98450", "--address", "Church Street")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Dosa Hub (dosa@example.com)")
	tokenFrom(t, out)

	out, err = runCLI(t, "", "login", "--api", api, "--partner", "--email", "dosa@example.com", "--password", "pw")
	require.NoError(t, err)
	token := tokenFrom(t, out)

	out, err = runCLI(t, "", "profile", "--api", api, "--partner", "--token", token)
	require.NoError(t, err)
	assert.Contains(t, out, "Dosa Hub")
	assert.Contains(t, out, "address: Church Street")

	video := filepath.Join(t.TempDir(), "dosa.mp4")
	require.NoError(t, os.WriteFile(video, []byte("mp4-bytes"), 0o600))
	out, err = runCLI(t, "", "upload", "--api", api, "--token", token,
		"--name", "Masala Dosa", "--description", "crispy", "--file", video)
	require.NoError(t, err)
	assert.Contains(t, out, "Uploaded Masala Dosa")
	require.Len(t, media.Uploads, 1)
	assert.Equal(t, "video/mp4", media.Uploads[0].ContentType)

	out, err = runCLI(t, "q\n", "reel", "--api", api, "--mine", "--token", token)
	require.NoError(t, err)
	assert.Contains(t, out, "> [1] Masala Dosa")
}

func TestUserWorkflow(t *testing.T) {
	api, _ := newAPIServer(t)

	out, err := runCLI(t, "", "register", "--api", api, "--name", "Asha Rao", "--email", "asha@example.com", "--password", "pw")
	require.NoError(t, err)
	token := tokenFrom(t, out)

	out, err = runCLI(t, "", "profile", "--api", api, "--token", token)
	require.NoError(t, err)
	assert.Contains(t, out, "Asha Rao")

	// a user session cannot post videos
	video := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(video, []byte("x"), 0o600))
	_, err = runCLI(t, "", "upload", "--api", api, "--token", token, "--name", "n", "--description", "d", "--file", video)
	assert.ErrorContains(t, err, "401")

	_, err = runCLI(t, "", "login", "--api", api, "--email", "asha@example.com", "--password", "nope")
	assert.ErrorContains(t, err, "Invalid email or password")
}

func TestAccountCommands_RequireFlags(t *testing.T) {
	_, err := runCLI(t, "", "register", "--email", "a@example.com")
	assert.Error(t, err)

	_, err = runCLI(t, "", "register", "--partner", "--name", "n", "--email", "a@example.com", "--password", "pw")
	assert.ErrorContains(t, err, "--contact")

	_, err = runCLI(t, "", "login", "--email", "a@example.com")
	assert.Error(t, err)

	_, err = runCLI(t, "", "profile")
	assert.ErrorContains(t, err, "--token")

	_, err = runCLI(t, "", "upload", "--token", "t")
	assert.ErrorContains(t, err, "--file")
}
