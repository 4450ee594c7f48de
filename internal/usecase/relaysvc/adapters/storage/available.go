package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yourname/upload_pipeline/pkg/storageproto"
)

// ProbeTimeout — верхняя граница проверки доступности storage-сервиса.
const ProbeTimeout = 2 * time.Second

// HealthAdapter определяет доступность storage-сервиса по его health-эндпоинту.
type HealthAdapter struct {
	client *http.Client
}

// NewHealthAdapter инициализирует адаптер с таймаутом timeout (<= 0 означает ProbeTimeout).
func NewHealthAdapter(timeout time.Duration) *HealthAdapter {
	if timeout <= 0 {
		timeout = ProbeTimeout
	}

	return &HealthAdapter{
		client: &http.Client{Timeout: timeout},
	}
}

// Reachable сообщает, ответил ли storage 200 на /health. Любая ошибка означает недоступность.
func (a *HealthAdapter) Reachable(ctx context.Context, base string) bool {
	return a.check(ctx, base) == nil
}

func (a *HealthAdapter) check(ctx context.Context, base string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL(base), nil)
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: %s", resp.Status)
	}

	return nil
}

func healthURL(base string) string {
	return strings.TrimRight(base, "/") + storageproto.PathHealth
}
