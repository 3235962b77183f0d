package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirs are never descended into during discovery.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// Discover returns every env file under dir, recursively. The keys file
// is excluded: it holds private keys and is not an environment file.
func Discover(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "**", ".env*")
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if !isEnvFile(m) {
			continue
		}
		if inSkippedDir(m) {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}

func isEnvFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".env") && base != KeysFileName
}

func inSkippedDir(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if skipDirs[part] {
			return true
		}
	}
	return false
}
