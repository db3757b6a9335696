// Package levels содержит встроенный набор уровней.
package levels

import "embed"

// FS - файлы level<N>.yaml
//
//go:embed *.yaml
var FS embed.FS
