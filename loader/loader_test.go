package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	statemachine "github.com/statelang/go-statemachine"
	"github.com/statelang/go-statemachine/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doorSource = "statemachine Door: Closed -(open)-> Open\nOpen -(close)-> Closed\n"

func TestDirProvider(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "door.smachine"), []byte(doorSource), 0o644))
	p := &loader.DirProvider{Dirs: []string{t.TempDir(), dir}}

	mod, err := p.Load("door")
	require.NoError(t, err)
	assert.Equal(t, "door", mod.Name)
	assert.Equal(t, doorSource, mod.Source)
	assert.Equal(t, filepath.Join(dir, "door.smachine"), mod.Path)

	_, err = p.Load("window")
	assert.ErrorContains(t, err, `module "window" not found`)
}

func TestLoaderInstallsCompiledMachines(t *testing.T) {
	reg := loader.NewRegistry()
	l := loader.New(loader.SourceProvider{"door": doorSource}, reg)
	l.Logger = loader.NewTestLogger(t)

	require.NoError(t, l.Load(context.Background(), "door"))
	def, ok := reg.Lookup("door", "Door")
	require.True(t, ok)
	assert.Equal(t, []string{"Closed", "Open"}, def.States())
	assert.Equal(t, []string{"Door"}, reg.Machines("door"))

	t.Run("reloading collides", func(t *testing.T) {
		err := l.Load(context.Background(), "door")
		assert.ErrorContains(t, err, `already installed`)
	})
}

func TestLoaderCompileFailureInstallsNothing(t *testing.T) {
	reg := loader.NewRegistry()
	l := loader.New(loader.SourceProvider{"bad": "statemachine func: A -> B"}, reg)
	ctx := loader.NewContext(context.Background(), loader.NewTestLogger(t))

	err := l.Load(ctx, "bad")
	var serr *statemachine.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Empty(t, reg.Machines("bad"))
}

func TestLoaderMissingModule(t *testing.T) {
	l := loader.New(loader.SourceProvider{}, loader.NewRegistry())
	l.Logger = loader.NewTestLogger(t)
	assert.ErrorContains(t, l.Load(context.Background(), "ghost"), `load ghost`)
}

func TestRegistryInstallIsAllOrNothing(t *testing.T) {
	reg := loader.NewRegistry()
	arts, err := statemachine.CompileBlocks(doorSource + "\n" + doorSource)
	require.NoError(t, err)
	require.Len(t, arts, 2)
	// the same machine name twice in one set must install neither
	assert.ErrorContains(t, reg.Install("ns", arts), "declared twice")
	assert.Empty(t, reg.Machines("ns"))
}
