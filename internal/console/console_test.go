package console

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_RegularFileIsPipe(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsInteractive(f))
	assert.Equal(t, ModePipe, Detect(f))
	assert.False(t, IsInteractive(nil))
}

func TestResolve(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	mode, err := Resolve("visual", f)
	require.NoError(t, err)
	assert.Equal(t, ModeVisual, mode)

	mode, err = Resolve("pipe", f)
	require.NoError(t, err)
	assert.Equal(t, ModePipe, mode)

	mode, err = Resolve("auto", f)
	require.NoError(t, err)
	assert.Equal(t, ModePipe, mode)

	_, err = Resolve("fancy", f)
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "visual", ModeVisual.String())
	assert.Equal(t, "pipe", ModePipe.String())
}
