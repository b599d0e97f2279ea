// Package timeouts provides centralized timeout values for handler
// operations. Used with context.WithTimeout around database calls and the
// export pipeline so individual handlers don't pick their own numbers.
//
// Guidelines:
//   - Ping: health checks
//   - Short: single-document reads (content, settings)
//   - Medium: list queries and writes (publish, log view)
//   - Export: the full render-and-assemble PDF pass
package timeouts

import "time"

const (
	defaultPing   = 2 * time.Second
	defaultShort  = 5 * time.Second
	defaultMedium = 10 * time.Second
	defaultExport = 60 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return defaultPing }

// Short returns the timeout for single-document reads.
func Short() time.Duration { return defaultShort }

// Medium returns the timeout for list queries and moderate writes.
func Medium() time.Duration { return defaultMedium }

// Export returns the timeout for a full PDF export pass. Rendering ten
// slides to rasters dominates; one minute is generous.
func Export() time.Duration { return defaultExport }
