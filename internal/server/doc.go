// Package server provides HTTP routing and middleware for the tracklist web UI.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] added first runs outermost. The [BasicRouter] stack wraps the whole [http.ServeMux],
// so requests that match no route are still logged, measured and given security headers
// (labelled "unmatched" in metrics).
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
// Routes registered with [BasicRouter.HandleWith] get extra, route-local middleware such as the
// upload [RateLimiter].
//
// # Middleware
//
//   - [RequestLogger] writes one structured log line per request, tagged with the chi request ID
//   - [Metrics] feeds the Prometheus request counters, labelled by route pattern
//   - [SecurityHeaders] sets nosniff, frame and CSP headers
//   - [RateLimiter] is a per-IP token bucket built on golang.org/x/time/rate
//
// chi's RequestID, RealIP and Recoverer middleware satisfy [Middleware] directly and are
// installed by the web package ahead of these.
package server
