// Package migrations хранит SQL-миграции схемы для обоих диалектов
package migrations

import "embed"

// FS содержит каталоги postgres/ и sqlite/
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
