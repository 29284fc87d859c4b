package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrRoute    = "route"
	AttrStatus   = "status"
	AttrUpstream = "upstream"
	AttrEndpoint = "endpoint"
)
