package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadContracts(t *testing.T) {
	sequencerInbox := common.HexToAddress("0x6666666666666666666666666666666666666666")
	upgradeExecutor := common.HexToAddress("0x7777777777777777777777777777777777777777")

	t.Run("reads a deploy result artifact", func(t *testing.T) {
		path := writeArtifact(t, `{
			"chainId": 4216100000001,
			"contracts": {
				"sequencerInbox": "`+sequencerInbox.Hex()+`",
				"upgradeExecutor": "`+upgradeExecutor.Hex()+`"
			},
			"phases": []
		}`)

		contracts, err := loadContracts(path)
		require.NoError(t, err)
		assert.Equal(t, sequencerInbox, contracts.SequencerInbox)
		assert.Equal(t, upgradeExecutor, contracts.UpgradeExecutor)
	})

	t.Run("accepts a bare contracts object", func(t *testing.T) {
		path := writeArtifact(t, `{
			"sequencerInbox": "`+sequencerInbox.Hex()+`",
			"upgradeExecutor": "`+upgradeExecutor.Hex()+`"
		}`)

		contracts, err := loadContracts(path)
		require.NoError(t, err)
		assert.Equal(t, sequencerInbox, contracts.SequencerInbox)
	})

	t.Run("rejects artifacts without keyset targets", func(t *testing.T) {
		path := writeArtifact(t, `{"chainId": 1, "phases": []}`)

		_, err := loadContracts(path)
		assert.ErrorContains(t, err, "missing the upgrade executor")
	})

	t.Run("rejects missing files", func(t *testing.T) {
		_, err := loadContracts(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
