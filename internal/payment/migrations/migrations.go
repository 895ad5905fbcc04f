package migrations

import "embed"

// FS содержит SQL миграции сервиса оплаты, встроенные в бинарник.
//
//go:embed *.sql
var FS embed.FS
