package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/homebills/internal/metrics"
)

// MetricsInterceptor counts RPCs by procedure and result code and records
// their duration.
func MetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.RPCRequestsTotal.WithLabelValues(procedure, code).Inc()
			m.RPCRequestDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())

			return resp, err
		}
	}
}
