package migrations

import "embed"

// FS содержит SQL миграции каталога книг, встроенные в бинарник.
// Применяются через goose при старте сервиса.
//
//go:embed *.sql
var FS embed.FS
