package static

import (
	"io/fs"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedAssetsExist(t *testing.T) {
	expected := []string{
		"dist/main.css",
	}

	var got []string
	err := fs.WalkDir(FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." || d.IsDir() {
			return nil
		}

		// go:embed uses forward slashes regardless of OS.
		if strings.Contains(path, "\\") {
			return &fs.PathError{Op: "walk", Path: path, Err: fs.ErrInvalid}
		}
		if !strings.HasPrefix(path, "dist/") {
			return &fs.PathError{Op: "walk", Path: path, Err: fs.ErrPermission}
		}
		if strings.HasSuffix(path, ".map") {
			return &fs.PathError{Op: "walk", Path: path, Err: fs.ErrInvalid}
		}

		got = append(got, path)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(got)
	require.Equal(t, expected, got)
}
