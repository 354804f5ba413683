// README: Feedback analysis result shapes.
package feedback

// Analysis status values.
const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)

// Sentiment values the oracle may legally return. Anything else is coerced
// to neutral.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Entry is the single analysis payload: sentiment classification, the
// feedback translated to the target language, and extracted keywords.
type Entry struct {
	Sentiment   string   `json:"sentiment"`
	Translation string   `json:"translation"`
	Keywords    []string `json:"keywords"`
}

// Result is the caller-facing feedback analysis contract. The shape is the
// same on success and on error; Error is only set when Status is Error.
type Result struct {
	Status string  `json:"status"`
	Error  string  `json:"error,omitempty"`
	Result []Entry `json:"result"`
}

// ErrorResult builds the fallback returned on any failure: neutral sentiment,
// empty translation, no keywords.
func ErrorResult(errMsg string) Result {
	return Result{
		Status: StatusError,
		Error:  errMsg,
		Result: []Entry{{
			Sentiment:   SentimentNeutral,
			Translation: "",
			Keywords:    []string{},
		}},
	}
}
