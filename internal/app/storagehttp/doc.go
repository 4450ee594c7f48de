// Package storagehttp реализует HTTP-интерфейс storage-сервиса поверх одного плоского
// каталога на локальном диске. Основные эндпоинты:
//   - POST /store: принимает multipart-поле "file", сохраняет как {uuid}-{имя} и отдаёт метаданные.
//   - GET /files: сырой листинг каталога хранения.
//   - GET /files/{name}: размер и временные метки файла по stored name, 404 если его нет.
//   - GET /health: пишет и удаляет probe-файл; 503, если каталог недоступен на запись.
//   - POST /admin/gc: вручную удаляет забытые probe-файлы.
//   - GET /: описание сервиса и карта эндпоинтов.
package storagehttp
