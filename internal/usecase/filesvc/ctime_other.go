//go:build !linux

package filesvc

import (
	"os"
	"time"
)

func changeTime(fi os.FileInfo) time.Time {
	return fi.ModTime()
}
