package logging

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const (
	traceparentHeader = "traceparent"
	// Cloud Run and the Google front end still send the legacy header when traceparent is absent.
	cloudTraceHeader = "X-Cloud-Trace-Context"
)

// {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^[0-9a-fA-F]{2}-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

// TRACE_ID/SPAN_ID;o=OPTIONS, span and options optional
var cloudTraceRe = regexp.MustCompile(`^([0-9a-fA-F]{32})(?:/([0-9]+))?(?:;o=([01]))?$`)

type span struct {
	traceID string
	spanID  string
	sampled bool
}

// parseTraceparent reads a W3C trace context header.
func parseTraceparent(header string) (span, bool) {
	m := traceparentRe.FindStringSubmatch(strings.TrimSpace(header))
	if m == nil {
		return span{}, false
	}
	return span{traceID: strings.ToLower(m[1]), spanID: m[2], sampled: m[3] == "01"}, true
}

// parseCloudTrace reads the legacy X-Cloud-Trace-Context header.
func parseCloudTrace(header string) (span, bool) {
	m := cloudTraceRe.FindStringSubmatch(strings.TrimSpace(header))
	if m == nil {
		return span{}, false
	}
	return span{traceID: strings.ToLower(m[1]), spanID: m[2], sampled: m[3] == "1"}, true
}

// spanFromHeaders prefers traceparent over the legacy header.
func spanFromHeaders(traceparent, cloudTrace string) (span, bool) {
	if s, ok := parseTraceparent(traceparent); ok {
		return s, true
	}
	return parseCloudTrace(cloudTrace)
}

// fields returns the Cloud Logging correlation fields for s.
func (s span) fields(projectID string) []zap.Field {
	fields := []zap.Field{
		zap.String("logging.googleapis.com/trace", "projects/"+projectID+"/traces/"+s.traceID),
		zap.Bool("logging.googleapis.com/trace_sampled", s.sampled),
	}
	if s.spanID != "" {
		fields = append(fields, zap.String("logging.googleapis.com/spanId", s.spanID))
	}
	return fields
}
