package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTree создание временного дерева исходников.
func createTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}
	return root
}

func TestCollect(t *testing.T) {
	root := createTree(t, map[string]string{
		"src/main.cpp":          "",
		"src/util.h":            "",
		"src/qt/send.h":         "",
		"src/readme.md":         "",
		"vendor/lib/lib.cpp":    "",
		".git/hooks/sample.cpp": "",
		"build/gen.cpp":         "",
	})

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "default exclusions",
			opts: Options{Root: root, Extensions: []string{".cpp", ".h"}, Exclude: DefaultExclude},
			want: []string{"build/gen.cpp", "src/main.cpp", "src/qt/send.h", "src/util.h"},
		},
		{
			name: "extensions without dot and extra exclusion",
			opts: Options{Root: root, Extensions: []string{"h"}, Exclude: []string{".git", "vendor", "qt"}},
			want: []string{"src/util.h"},
		},
		{
			name: "nothing excluded",
			opts: Options{Root: root, Extensions: []string{".cpp"}},
			want: []string{".git/hooks/sample.cpp", "build/gen.cpp", "src/main.cpp", "vendor/lib/lib.cpp"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Collect(tt.opts)
			require.NoError(t, err)
			want := make([]string, len(tt.want))
			for i, w := range tt.want {
				want[i] = filepath.Join(root, filepath.FromSlash(w))
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestCollectMissingRoot(t *testing.T) {
	_, err := Collect(Options{Root: filepath.Join(t.TempDir(), "missing"), Extensions: []string{".cpp"}})
	assert.Error(t, err)
}

func TestReadLines(t *testing.T) {
	root := createTree(t, map[string]string{"a.cpp": "int a;\r\nLogPrintf(\"%d\\n\", a);\n"})

	got, err := ReadLines(filepath.Join(root, "a.cpp"))
	require.NoError(t, err)
	assert.Equal(t, []string{"int a;", `LogPrintf("%d\n", a);`, ""}, got)

	_, err = ReadLines(filepath.Join(root, "missing.cpp"))
	assert.Error(t, err)
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, ".cpp", NormalizeExt("cpp"))
	assert.Equal(t, ".h", NormalizeExt(" .h "))
	assert.Equal(t, "", NormalizeExt(""))
}
