// internal/app/features/cms/templates.go
package cms

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "cms",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
