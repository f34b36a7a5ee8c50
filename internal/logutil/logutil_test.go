package logutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "griddle.log")
	sync := Setup(path, true)

	Debugf("loaded %d rows from %s", 42, "people.csv")
	Infof("ready")
	sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded 42 rows from people.csv")
	assert.Contains(t, string(data), "ready")
}

func TestSetupInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "griddle.log")
	sync := Setup(path, false)

	Debugf("chatty detail")
	Warnf("something odd")
	sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "chatty detail")
	assert.Contains(t, string(data), "something odd")
}
