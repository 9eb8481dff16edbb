package common

const (
	// MaxSubmissionRequestBody limits JSON request bodies on the intake endpoint.
	MaxSubmissionRequestBody = 1 << 20
	// MaxMatchCandidates bounds one scoring request; ranking is O(candidates).
	MaxMatchCandidates = 200
)
