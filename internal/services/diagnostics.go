package services

import (
	"context"
	"time"

	"esummit/internal/domain"
)

// Status strings reported by GET /test.
const (
	statusBackendRunning    = "✅ Running"
	statusDBNotAvailable    = "❌ Not Available"
	statusDBNotInitialized  = "⚠️ Available but not initialized"
	statusDBAvailable       = "✅ Available"
	statusDBWorking         = "✅ Connected & Working"
	statusDBConnectedError  = "⚠️ Connected but Error: "
	statusDBError           = "❌ Error: "
	statusURLSet            = "✅ Set"
	statusURLNotSet         = "❌ Not Set"
	statusNameFallback      = "✅ Connected"
	statusConnected         = "Connected"
	statusNotConnected      = "Not Connected"
	maxCollectionsReported  = 10
	maxDiagnosticErrorRunes = 80
)

type diagnosticsService struct {
	store          domain.DocumentStore
	databaseURLSet bool
	contextTimeout time.Duration
}

// NewDiagnosticsService returns a DiagnosticsService. store may be nil when no database is configured.
func NewDiagnosticsService(store domain.DocumentStore, databaseURLSet bool, timeout time.Duration) domain.DiagnosticsService {
	return &diagnosticsService{store: store, databaseURLSet: databaseURLSet, contextTimeout: timeout}
}

func (s *diagnosticsService) Diagnose(ctx context.Context) *domain.Diagnostics {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	urlStatus := statusURLNotSet
	if s.databaseURLSet {
		urlStatus = statusURLSet
	}
	d := &domain.Diagnostics{
		Backend:          statusBackendRunning,
		Database:         statusDBNotAvailable,
		DatabaseURL:      &urlStatus,
		ConnectionStatus: statusNotConnected,
		Collections:      []string{},
	}
	if s.store == nil {
		d.Database = statusDBNotInitialized
		return d
	}

	name := s.store.Name()
	if name == "" {
		name = statusNameFallback
	}
	d.DatabaseName = &name

	if err := s.store.Ping(ctx); err != nil {
		d.Database = statusDBError + truncate(err.Error(), maxDiagnosticErrorRunes)
		return d
	}
	d.Database = statusDBAvailable
	d.ConnectionStatus = statusConnected

	names, err := s.store.ListCollections(ctx)
	if err != nil {
		d.Database = statusDBConnectedError + truncate(err.Error(), maxDiagnosticErrorRunes)
		return d
	}
	if len(names) > maxCollectionsReported {
		names = names[:maxCollectionsReported]
	}
	d.Collections = names
	d.Database = statusDBWorking
	return d
}
