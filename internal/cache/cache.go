// Package cache prunes files the application leaves behind on disk.
package cache

import (
	"os"
	"time"

	"github.com/bencyn-cli/bencyn/filesystem"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/bencyn-cli/bencyn/where"
)

// TTL is how long a log or temporary file is kept.
const TTL = 7 * 24 * time.Hour

// Prune removes regular files under dir last modified before now minus ttl
// and returns how many were removed. Directories are left in place.
func Prune(dir string, ttl time.Duration, now time.Time) (removed int) {
	fs := filesystem.API()
	_ = fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if now.Sub(info.ModTime()) > ttl {
			if err := fs.Remove(path); err == nil {
				removed++
			}
		}
		return nil
	})
	return
}

// CollectGarbage prunes expired logs and temporary files.
func CollectGarbage() {
	now := time.Now()
	for _, dir := range []string{where.Logs(), where.Temp()} {
		if n := Prune(dir, TTL, now); n > 0 {
			log.Infof("cache: pruned %d expired files from %s", n, dir)
		}
	}
}
