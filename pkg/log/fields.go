package log

// Shared field names so log output stays queryable across services.
const (
	FieldRequestID = "request_id"
	FieldLatency   = "latency_ms"

	FieldService = "service"

	FieldGRPCMethod = "grpc_method"
	FieldGRPCCode   = "grpc_code"
)
