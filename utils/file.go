package utils

import (
	"path/filepath"
	"strings"
)

func GetFilenameWithoutExt(path string) (name string) {
	name = filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(path))
	return
}

// 相对路径按baseDir解析，绝对路径与GDAL虚拟路径保持不变
func ResolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "/vsi") {
		return path
	}
	return filepath.Join(baseDir, path)
}
