package storageclient

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const (
	progressBarWidth     = 32
	progressRenderPeriod = 120 * time.Millisecond
)

// progressBar рисует однострочный ASCII-индикатор отправки в out.
// Все методы безопасны для nil-получателя.
type progressBar struct {
	mu       sync.Mutex
	out      io.Writer
	prefix   string
	total    int64
	sent     int64
	started  time.Time
	drawnAt  time.Time
	width    int
	finished bool
}

func newProgressBar(out io.Writer, prefix string, total int64) *progressBar {
	return &progressBar{
		out:     out,
		prefix:  prefix,
		total:   total,
		started: time.Now(),
	}
}

// AddBytes учитывает отправленные байты и перерисовывает строку не чаще progressRenderPeriod.
func (p *progressBar) AddBytes(n int64) {
	if p == nil || n <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.sent += n
	if time.Since(p.drawnAt) >= progressRenderPeriod {
		p.drawLocked(p.lineLocked(), false)
	}
}

func (p *progressBar) render(force bool, suffix string) {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished || (!force && time.Since(p.drawnAt) < progressRenderPeriod) {
		return
	}
	p.drawLocked(p.lineLocked()+suffix, false)
}

func (p *progressBar) Finish() {
	p.complete(" ✓")
}

func (p *progressBar) Fail(err error) {
	if err == nil {
		p.complete(" ✗")
		return
	}
	p.complete(fmt.Sprintf(" ✗ %v", err))
}

func (p *progressBar) complete(suffix string) {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.finished = true
	p.drawLocked(p.lineLocked()+suffix, true)
}

// drawLocked перезаписывает текущую строку, затирая хвост предыдущей.
func (p *progressBar) drawLocked(line string, final bool) {
	pad := ""
	if p.width > len(line) {
		pad = strings.Repeat(" ", p.width-len(line))
	}
	p.width = len(line)
	p.drawnAt = time.Now()

	end := ""
	if final {
		end = "\n"
	}
	fmt.Fprintf(p.out, "\r%s%s%s", line, pad, end)
}

func (p *progressBar) lineLocked() string {
	var b strings.Builder
	b.WriteString(p.prefix)
	b.WriteByte(' ')

	if p.total <= 0 {
		fmt.Fprintf(&b, "%s sent", humanBytes(p.sent))
	} else {
		ratio := min(float64(p.sent)/float64(p.total), 1)
		filled := min(int(ratio*progressBarWidth+0.5), progressBarWidth)
		fmt.Fprintf(&b, "[%s%s] %3d%% %s/%s",
			strings.Repeat("=", filled), strings.Repeat(" ", progressBarWidth-filled),
			int(ratio*100+0.5), humanBytes(p.sent), humanBytes(p.total))
	}

	if elapsed := time.Since(p.started).Seconds(); elapsed > 0.5 {
		fmt.Fprintf(&b, " (%s/s)", humanBytes(int64(float64(p.sent)/elapsed)))
	}

	return b.String()
}

// progressWriter подключает индикатор к io.TeeReader.
type progressWriter struct {
	bar *progressBar
}

func (w progressWriter) Write(b []byte) (int, error) {
	w.bar.AddBytes(int64(len(b)))
	return len(b), nil
}

func humanBytes(v int64) string {
	const unit = 1024
	if v < unit {
		return fmt.Sprintf("%d B", v)
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	value := float64(v) / unit
	i := 0
	for value >= unit && i < len(units)-1 {
		value /= unit
		i++
	}

	return fmt.Sprintf("%.1f %s", value, units[i])
}
