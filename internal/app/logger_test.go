package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/marketadmin/pkg/logger"
)

func TestConfigureLogging(t *testing.T) {
	t.Cleanup(logger.Replace(logger.Logger()))

	require.NoError(t, ConfigureLogging("debug", "console"))
	require.NoError(t, ConfigureLogging("", ""))
}
