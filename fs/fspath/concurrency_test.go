package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestPath_SharedAcrossGoroutines(t *testing.T) {
	p := posix("/srv/data/../logs/app.log/")
	want := struct {
		normal, parent, filename string
		comps                    int
	}{
		normal:   p.LexicallyNormal().Generic(),
		parent:   p.ParentPath().Generic(),
		filename: p.Filename(),
		comps:    len(p.Components()),
	}

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			for range 100 {
				assert.Equal(t, want.normal, p.LexicallyNormal().Generic())
				assert.Equal(t, want.parent, p.ParentPath().Generic())
				assert.Equal(t, want.filename, p.Filename())
				assert.Len(t, p.Components(), want.comps)
				_ = p.Join("child").ReplaceExtension("bak")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, "/srv/data/../logs/app.log/", p.Generic())
}
