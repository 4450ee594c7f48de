package relaysvc

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/yourname/upload_pipeline/internal/models"
	"github.com/yourname/upload_pipeline/pkg/storageclient"
)

// Upload пересылает файл в storage-сервис и возвращает его ответ без изменений.
// Ошибка возвращается только при сбое транспорта (ErrUpstream).
func (s *Relay) Upload(ctx context.Context, up storageclient.Upload) (storageclient.Response, error) {
	resp, err := s.StorageCli.Store(ctx, s.StorageURL, up)
	if err != nil {
		return storageclient.Response{}, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	if resp.StatusCode == http.StatusOK {
		s.record(ctx, resp.Body)
	}

	return resp, nil
}

// record пишет запись в журнал; сбои только логируются и не влияют на ответ клиенту.
func (s *Relay) record(ctx context.Context, body []byte) {
	if s.Journal == nil {
		return
	}

	var stored models.StoredFile
	if err := json.Unmarshal(body, &stored); err != nil || stored.Name == "" {
		log.Printf("journal: skip unparsable storage response: %v", err)
		return
	}

	err := s.Journal.Save(ctx, models.Upload{
		StoredName:       stored.Name,
		OriginalFilename: stored.OriginalFilename,
		ContentType:      stored.ContentType,
		Size:             stored.Size,
		StoredAt:         stored.Timestamp,
		RelayedAt:        s.Now(),
	})
	if err != nil {
		log.Printf("journal: save %s: %v", stored.Name, err)
	}
}
