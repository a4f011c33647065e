// Package health coordinates readiness checks for the ops endpoints.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates a failing component.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	api APIPinger
}

// New creates a Service. api can be nil when the server runs unconfigured;
// readiness then reports error until a key is provided.
func New(api APIPinger) *Service {
	return &Service{api: api}
}

// Check runs the readiness checks. Liveness is implicit: a process able to
// serve the endpoint is alive.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.api == nil {
		checks["attio"] = CheckError
	} else if err := s.api.Ping(ctx); err != nil {
		checks["attio"] = CheckError
	} else {
		checks["attio"] = CheckOK
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Unhealthy
			break
		}
	}
	return Report{Status: status, Checks: checks}
}
