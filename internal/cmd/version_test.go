package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	c := NewVersionCmd(nil)

	assert.Equal(t, "version", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	assert.NotNil(t, c.Flags().Lookup("short"))
}

func TestVersionCmd_Execute(t *testing.T) {
	out, err := executeRoot(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "rpx (RampX CLI)")
	assert.Contains(t, out, "Toolchain:")
	assert.Contains(t, out, "git:")
}

func TestVersionCmd_Short(t *testing.T) {
	out, err := executeRoot(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0-dev\n", out)
}
