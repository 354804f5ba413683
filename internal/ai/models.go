package ai

// FailureKind classifies oracle call failures.
type FailureKind int

const (
	// FailureTransport covers network, auth, and quota errors raised by the
	// oracle client. The client's message is preserved verbatim.
	FailureTransport FailureKind = iota + 1

	// FailureFormat means the oracle replied but the reply was not valid JSON.
	// The raw reply text is kept for logging only, never returned to callers.
	FailureFormat
)

// Failure is the structured failure result of an oracle call. Callers decide
// how to fold it into their domain error shape; it never propagates as a panic.
type Failure struct {
	Kind    FailureKind
	Message string

	// Raw holds the original oracle reply text for FailureFormat.
	Raw string
}

func (f *Failure) Error() string {
	return f.Message
}
