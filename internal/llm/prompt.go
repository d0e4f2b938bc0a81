// ABOUTME: Prompt templates for sentiment classification and grounded answering
// ABOUTME: Builds the fixed grounding prompt from retrieved chunks and a query
package llm

import (
	"fmt"
	"strings"

	"github.com/docnexus/docnexus/internal/models"
)

// RefusalAnswer is the fixed string the model is instructed to return when
// the retrieved context does not contain the requested information.
const RefusalAnswer = "I don't have enough information to answer that."

const sentimentPromptTemplate = `Analyze the sentiment of the following text and respond with ONLY ONE of these exact words: positive, negative, or neutral. Do not include any other text or explanation.

Text: %s`

// SentimentPrompt builds the one-word sentiment classification prompt
func SentimentPrompt(text string) string {
	return fmt.Sprintf(sentimentPromptTemplate, text)
}

const groundingPromptTemplate = `Role and Goal:
You are a helpful and honest AI assistant who answers questions from the text provided to you.

Output Format:
You should provide a helpful and honest answer to the user's prompt in the form of a paragraph.

Response Guidelines:
- If the prompt asks for a name, number, or fact, return only that information, avoiding full-sentence responses unless necessary.
- Do not restate the question or add introductory phrases.
- If the information is unavailable in the context, respond with "%s"
- Maintain a confident tone in all scenarios, whether the answer is known or not.
- Avoid making assumptions or generating content based on incomplete or unavailable information. Do not guess, infer, or make up facts.
- There could be multiple documents in the context. In scenarios where there is no connection between them, pick the one which you think is most relevant and only extract the specific detail requested.
- Cite specific information in the context wherever possible and avoid bringing things up that are not in the context.

--- Start Context ---
%s
--- End Context ---

Based on the above context, answer the following question: %s
`

// GroundingPrompt embeds the retrieved chunk contents (in the order
// received, separated by newlines) and the literal user query into the fixed
// answer-synthesis template.
func GroundingPrompt(chunks []models.RetrievedChunk, query string) string {
	var context strings.Builder
	for _, chunk := range chunks {
		context.WriteString(chunk.Content)
		context.WriteString("\n")
	}

	return fmt.Sprintf(groundingPromptTemplate, RefusalAnswer, context.String(), query)
}
