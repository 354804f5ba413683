// README: Feedback analysis prompt construction (pure, deterministic).
package feedback

import "fmt"

const systemInstruction = "You are a helpful assistant that analyzes customer feedback sentiment and responds only in valid JSON format."

// feedbackTemplate embeds the target language twice: once as the translation
// target and once in the keep-as-is rule.
const feedbackTemplate = `You are an expert sentiment analysis system for customer feedback.

Task: Analyze the customer feedback message below and provide sentiment analysis, translation (if needed), and keyword extraction.

Customer Feedback Message: %s
Target Language Code: %s

Instructions:
1. Determine the sentiment of the feedback (positive, negative, or neutral)
2. If the feedback is not in the target language (%s), translate it to that language. If it is already in the target language, keep it as is.
3. Extract 3-5 relevant keywords that capture the essence of the feedback (focus on key issues, emotions, or topics mentioned)

Response Format (JSON only):
{
    "sentiment": "positive|negative|neutral",
    "translation": "translated_or_original_message_here",
    "keywords": ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5"]
}

Guidelines:
- Sentiment should be "positive" for satisfied customers, "negative" for dissatisfied customers, "neutral" for mixed or factual feedback
- Translation should be natural and maintain the original meaning and tone
- Keywords should be lowercase, relevant terms that help categorize the feedback
- Focus on extracting keywords related to: service quality, agent behavior, product issues, emotions, specific problems mentioned

Provide only the JSON response with no additional text.`

// BuildFeedbackPrompt renders the feedback message and target language into
// the analysis instruction. Pure and deterministic.
func BuildFeedbackPrompt(feedbackMessage, targetLanguageCode string) string {
	return fmt.Sprintf(feedbackTemplate, feedbackMessage, targetLanguageCode, targetLanguageCode)
}
