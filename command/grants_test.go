// command/grants_test.go
package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/reconcile"
)

func TestGrantFileRoundTrip(t *testing.T) {
	daily := int64(100)
	monthly := int64(3000)
	desired := map[int64]reconcile.DesiredGrant{
		3: {
			Included:            true,
			AccessLevel:         model.AccessReadWrite,
			DailyRequestLimit:   &daily,
			MonthlyRequestLimit: &monthly,
			DiscountPercentage:  10,
			Reason:              "pilot program",
		},
		7: {Included: false},
	}

	path := filepath.Join(t.TempDir(), "grants.toml")
	require.NoError(t, writeGrantFileTo(path, desired))

	got, err := loadGrantFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	g := got[3]
	assert.True(t, g.Included)
	assert.Equal(t, model.AccessReadWrite, g.AccessLevel)
	require.NotNil(t, g.DailyRequestLimit)
	assert.Equal(t, int64(100), *g.DailyRequestLimit)
	assert.Equal(t, "pilot program", g.Reason)

	assert.False(t, got[7].Included)
}

func TestLoadGrantFileRejectsBadModelKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grants.toml")
	content := "[models.gpt-4]\nincluded = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := loadGrantFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a model id")
}

func TestLoadGrantFileMissing(t *testing.T) {
	_, err := loadGrantFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
