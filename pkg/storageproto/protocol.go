// Package storageproto описывает протокол HTTP-взаимодействия gateway и storage-сервиса.
package storageproto

// Пути и параметры протокола.
const (
	PathStore  = "/store"
	PathHealth = "/health"
	PathFiles  = "/files"
	PathUpload = "/upload"

	// FormField — имя multipart-поля с содержимым файла.
	FormField = "file"

	// ProbePrefix — префикс временных файлов health-проверки в каталоге хранения.
	ProbePrefix = ".healthcheck-"

	// ServiceName отдаётся storage-сервисом в /health.
	ServiceName = "storage-service"

	DefaultContentType = "application/octet-stream"
)
