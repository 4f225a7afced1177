// Package health provides HTTP handlers for service health probes.
//
//	r.Get("/health/live", health.Liveness[*router.Context])
//	r.Get("/health/ready", health.Readiness[*router.Context](log, renderProbe))
//
// Readiness checks follow the func(context.Context) error signature.
package health
