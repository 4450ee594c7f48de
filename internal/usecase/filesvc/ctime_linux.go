//go:build linux

package filesvc

import (
	"os"
	"syscall"
	"time"
)

// changeTime возвращает ctime из stat(2), иначе mtime.
func changeTime(fi os.FileInfo) time.Time {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fi.ModTime()
	}

	return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
}
