package registries_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"loghours/internal/models"
	"loghours/internal/registries"
	"loghours/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "userdatadomains")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesRecords(t *testing.T) {
	t.Parallel()

	path := writeRegistry(t, `example.com: bob==example.com==bob==main==/home/bob/public_html==enabled
shop.example.com: bob==example.com==bob==sub==/home/bob/shop==enabled
other.net: alice==other.net==alice==main==/home/alice/public_html==enabled
`)

	registry := registries.NewFileDomainRegistry(path)
	domains, err := registry.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.DomainMap{
		"example.com":      "bob",
		"shop.example.com": "bob",
		"other.net":        "alice",
	}, domains)
}

func TestLoad_SkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	path := writeRegistry(t, `just a comment line
single==
example.com: bob==example.com==bob
no-colon-field==whatever==x
a:b:c==too==many==colons
`)

	registry := registries.NewFileDomainRegistry(path)
	domains, err := registry.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.DomainMap{"example.com": "bob"}, domains,
		"only the well-formed record survives")
}

func TestLoad_LastDuplicateWins(t *testing.T) {
	t.Parallel()

	path := writeRegistry(t, `example.com: bob==x==y
example.com: carol==x==y
`)

	registry := registries.NewFileDomainRegistry(path)
	domains, err := registry.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "carol", domains["example.com"])
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	path := writeRegistry(t, "  example.com : bob ==rest==rest\n")

	registry := registries.NewFileDomainRegistry(path)
	domains, err := registry.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.DomainMap{"example.com": "bob"}, domains)
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	t.Parallel()

	registry := registries.NewFileDomainRegistry(filepath.Join(t.TempDir(), "nope"))
	domains, err := registry.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, domains)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "REG_9000", svcErr.Code)
	assert.Equal(t, svcerrors.ExitFatal, svcErr.ExitCode)
}
