package migrations

import "embed"

// FS содержит SQL миграции сервиса заказов, встроенные в бинарник.
//
//go:embed *.sql
var FS embed.FS
