package models

import "time"

// StoredFile описывает файл, только что записанный storage-сервисом.
type StoredFile struct {
	Name             string    `json:"path"`
	OriginalFilename string    `json:"original_filename"`
	ContentType      string    `json:"content_type"`
	Size             int64     `json:"size"`
	Timestamp        time.Time `json:"timestamp"`
}

// FileInfo — метаданные файла, прочитанные с диска по stored name.
type FileInfo struct {
	Filename string    `json:"filename"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// Listing: сырой листинг каталога хранения.
type Listing struct {
	Files []string `json:"files"`
	Count int      `json:"count"`
	Path  string   `json:"path"`
}

// Upload — запись журнала gateway о ретранслированной загрузке.
type Upload struct {
	StoredName       string    `json:"stored_name"`
	OriginalFilename string    `json:"original_filename"`
	ContentType      string    `json:"content_type"`
	Size             int64     `json:"size"`
	StoredAt         time.Time `json:"stored_at"`
	RelayedAt        time.Time `json:"relayed_at"`
}
