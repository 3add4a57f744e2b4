package domain

import "context"

// Diagnostics is the status report served by GET /test.
// swagger:model Diagnostics
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsService reports backend and store status. It never fails.
type DiagnosticsService interface {
	Diagnose(ctx context.Context) *Diagnostics
}
