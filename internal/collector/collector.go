// Package collector -- сбор списка исходных файлов для проверки.
package collector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"logscan/internal/callsite"
)

// DefaultExclude каталоги, пропускаемые по умолчанию.
var DefaultExclude = []string{".git", "vendor"}

// Options параметры обхода дерева каталогов.
type Options struct {
	Root       string   // Корневой каталог.
	Extensions []string // Расширения файлов, например ".cpp", ".h".
	Exclude    []string // Имена каталогов, которые не обходятся.
}

// Collect формирование отсортированного списка файлов с заданными расширениями.
func Collect(opts Options) ([]string, error) {
	exts := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[NormalizeExt(e)] = true
	}
	exclude := make(map[string]bool, len(opts.Exclude))
	for _, d := range opts.Exclude {
		exclude[d] = true
	}

	var files []string
	err := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != opts.Root && exclude[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if exts[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect files in %s: %w", opts.Root, err)
	}

	// Сортируем для детерминированного порядка вывода.
	sort.Strings(files)
	return files, nil
}

// NormalizeExt приведение расширения к виду ".ext".
func NormalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ReadLines чтение файла и разбиение на физические строки.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return callsite.SplitLines(string(data)), nil
}
