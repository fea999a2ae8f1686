package stream

const (
	DefaultRequestStream = "interprep-evaluations"
	DefaultResultStream  = "interprep-results"
	DefaultGroup         = "interprep-evaluators"
)
