// README: Feedback service: sentiment/translation/keywords via one oracle call.
package feedback

import (
	"context"

	"go.uber.org/zap"

	"chatbotai/internal/ai"
)

// Service analyzes free-text feedback: sentiment, optional translation, and
// keyword extraction in a single oracle call.
type Service struct {
	oracle ai.Oracle
	log    *zap.Logger
}

// NewService creates a Service backed by the given oracle.
func NewService(oracle ai.Oracle, log *zap.Logger) *Service {
	return &Service{oracle: oracle, log: log}
}

// Analyze runs the feedback analysis, always returning a well-formed Result.
func (s *Service) Analyze(ctx context.Context, feedbackMessage, targetLanguageCode string) Result {
	prompt := BuildFeedbackPrompt(feedbackMessage, targetLanguageCode)

	reply, failure := s.oracle.Complete(ctx, prompt, systemInstruction)
	if failure != nil {
		s.log.Error("oracle call failed", zap.Int("kind", int(failure.Kind)), zap.String("message", failure.Message))
		return ErrorResult(failure.Message)
	}

	return s.normalize(reply)
}

// normalize extracts and repairs the three analysis fields from the oracle
// reply. Out-of-domain sentiments coerce to neutral and non-list keywords to
// an empty list, each with a logged diagnostic; the translation passes
// through unvalidated.
func (s *Service) normalize(reply map[string]any) Result {
	if msg, ok := reply["error"].(string); ok {
		return ErrorResult(msg)
	}

	sentiment, _ := reply["sentiment"].(string)
	switch sentiment {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
	default:
		s.log.Warn("invalid sentiment value, defaulting to neutral", zap.String("sentiment", sentiment))
		sentiment = SentimentNeutral
	}

	translation, _ := reply["translation"].(string)

	keywords := []string{}
	if raw, ok := reply["keywords"].([]any); ok {
		for _, k := range raw {
			if kw, ok := k.(string); ok {
				keywords = append(keywords, kw)
			}
		}
	} else if reply["keywords"] != nil {
		s.log.Warn("keywords is not a list, coercing to empty", zap.Any("keywords", reply["keywords"]))
	}

	return Result{
		Status: StatusSuccess,
		Result: []Entry{{
			Sentiment:   sentiment,
			Translation: translation,
			Keywords:    keywords,
		}},
	}
}
