// README: Classification prompt construction (pure, deterministic).
package intent

import "fmt"

// systemInstruction accompanies every classification call.
const systemInstruction = "You are a helpful assistant that responds only in valid JSON format."

// classificationTemplate frames the joint classify-and-extract task. The
// block order matters to output quality: the catalog is shown before the user
// message, and the schema template is presented as the required output shape.
const classificationTemplate = `You are an expert intent and entity detection service for a customer care chatbot, tasked with identifying information in the customer's message.

Below are the supported intents and the list of entities for each intent (call it the catalog). Understand the meaning and context of every intent and entity.
%s

Task: Analyze the user message below and identify the matching intent and the entity values found in it.
User Input Message: %s

Use the following JSON structure and signature for the output:
%s

Methodology:
There are two kinds of entities: free-text entities and entities with categorical options. Infer the match from the meaning of the user message.

1. Identify the matching intent from the catalog and create a stub of the response signature from its definition.
2. Set the "user_input" key for "type"="TEXT_INPUT" entities and the "response" key for "type"="OPTIONS" entities based on the matching option, using the information present in the user message.
If a value is not present in the message, set it to null. Every entity defined for the matched intent in the catalog must appear in the response, even when unresolved.

Work through the steps carefully, be precise about the intent and entity identification, and reply with the result as JSON only.
Final Output Format: JSON`

// BuildClassificationPrompt renders the catalog text, the user message, and
// the response-schema template into a single oracle instruction. Pure and
// deterministic: identical inputs always produce identical output.
func BuildClassificationPrompt(catalogText, userMessage, schemaTemplate string) string {
	return fmt.Sprintf(classificationTemplate, catalogText, userMessage, schemaTemplate)
}
