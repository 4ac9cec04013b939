// Package data 内置 35 张示例报表（7 个行业 × 5 种报表）
package data

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed samples/*.csv
var samplesFS embed.FS

// Seed 把内置示例报表释放到数据目录
// 已存在的文件不覆盖，用户替换过的样例数据在重启后保留
func Seed(dir string) (written int, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	entries, err := fs.ReadDir(samplesFS, "samples")
	if err != nil {
		return 0, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		dst := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(dst); err == nil {
			continue
		}

		content, err := samplesFS.ReadFile("samples/" + entry.Name())
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(dst, content, 0644); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}
