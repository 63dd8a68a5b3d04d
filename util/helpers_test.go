package util

import (
	"testing"

	"github.com/package-url/packageurl-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("GHWIRE_TEST_SET", "value")
	t.Setenv("GHWIRE_TEST_EMPTY", "")

	assert.Equal(t, "value", GetEnvDefault("GHWIRE_TEST_SET", "def"))
	assert.Equal(t, "", GetEnvDefault("GHWIRE_TEST_EMPTY", "def"))
	assert.Equal(t, "def", GetEnvDefault("GHWIRE_TEST_UNSET_XYZ", "def"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("GHWIRE_TEST_INT", " 42 ")
	t.Setenv("GHWIRE_TEST_BLANK", " ")
	t.Setenv("GHWIRE_TEST_BAD", "many")

	n, err := GetEnvInt("GHWIRE_TEST_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = GetEnvInt("GHWIRE_TEST_BLANK", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = GetEnvInt("GHWIRE_TEST_UNSET_XYZ", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = GetEnvInt("GHWIRE_TEST_BAD", 1)
	assert.ErrorContains(t, err, "GHWIRE_TEST_BAD")
}

func TestCleanVersion(t *testing.T) {
	assert.Equal(t, "12.0.1376-g7ac6f3", CleanVersion("main-v12.0.1376-g7ac6f3"))
	assert.Equal(t, "2.3.4", CleanVersion("release-v2.3.4"))
	assert.Equal(t, "v1.2.3", CleanVersion("v1.2.3"))
	assert.Equal(t, "", CleanVersion(""))
}

func TestParseReleaseTag(t *testing.T) {
	parsed := ParseReleaseTag("v1.4.0-rc.1+build.7")
	require.NotNil(t, parsed)
	assert.Equal(t, 1, *parsed.Major)
	assert.Equal(t, 4, *parsed.Minor)
	assert.Equal(t, 0, *parsed.Patch)
	assert.Equal(t, "rc.1", parsed.Prerelease)
	assert.Equal(t, "build.7", parsed.BuildMetadata)

	parsed = ParseReleaseTag("release-v2.3.4")
	require.NotNil(t, parsed)
	assert.Equal(t, 2, *parsed.Major)

	assert.Nil(t, ParseReleaseTag("nightly"))
	assert.Nil(t, ParseReleaseTag(""))
}

func TestCompareReleaseTags(t *testing.T) {
	assert.Equal(t, -1, CompareReleaseTags("v1.2.0", "v1.10.0"))
	assert.Equal(t, 1, CompareReleaseTags("v2.0.0", "v2.0.0-rc.1"))
	assert.Equal(t, 0, CompareReleaseTags("1.0.0", "v1.0.0"))
	assert.Equal(t, -1, CompareReleaseTags("nightly", "v0.0.1"))
	assert.Equal(t, 1, CompareReleaseTags("v0.0.1", "nightly"))
}

func TestParseRepoName(t *testing.T) {
	repo, err := ParseRepoName("octo/hello-world")
	require.NoError(t, err)
	assert.Equal(t, "octo", repo.Owner)
	assert.Equal(t, "hello-world", repo.Name)
	assert.Equal(t, "octo/hello-world", repo.String())

	for _, bad := range []string{"", "octo", "/hello", "octo/", "a/b/c"} {
		_, err := ParseRepoName(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, "octocat", NormalizeLogin("  OctoCat "))
}

func TestGitHubPURL(t *testing.T) {
	purl, err := GitHubPURL("Octo/Hello", "v1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "pkg:github/octo/hello@v1.0.0", purl)

	purl, err = GitHubPURL("octo/hello", "")
	require.NoError(t, err)
	assert.Equal(t, "pkg:github/octo/hello", purl)

	parsed, err := packageurl.FromString(purl)
	require.NoError(t, err)
	assert.Equal(t, "github", parsed.Type)
	assert.Equal(t, "hello", parsed.Name)

	_, err = GitHubPURL("nope", "v1")
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	logger, err := InitLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	_, err = InitLogger("loud")
	assert.Error(t, err)
}
