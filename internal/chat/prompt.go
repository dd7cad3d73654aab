package chat

import (
	"fmt"
	"strings"

	"symptoscan-backend/internal/llm"
)

const systemPrompt = "You are a medical AI assistant that provides preliminary symptom analysis. Always emphasize the importance of professional medical consultation. Respond with JSON only. Never omit keys."

const systemPromptRepair = "You are a JSON repair tool. Return only valid JSON that matches the schema exactly."

const promptTemplate = `Analyze the following symptom description and provide medical guidance in JSON format:

Symptoms: %s%s

Return a JSON object with the following structure:
{
    "reply_text": "Conversational guidance for the user",
    "possible_conditions": ["condition1", "condition2"],
    "urgency": "low|medium|high|emergency",
    "recommended_actions": ["action1", "action2"]
}

The "urgency" value must be exactly one of: low, medium, high, emergency.
Be conservative with urgency levels and always recommend professional medical consultation when appropriate.`

func buildPrompt(message string, prior []Message) []llm.Message {
	context := ""
	if len(prior) > 0 {
		var lines []string
		for _, m := range prior {
			lines = append(lines, fmt.Sprintf("[%s] %s", m.Type, m.Content))
		}
		context = "\n\nUser's recent conversation, most recent first:\n" + strings.Join(lines, "\n")
	}
	return []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf(promptTemplate, message, context)},
	}
}

func buildRepairPrompt(raw []byte) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: systemPromptRepair},
		{Role: "user", Content: fmt.Sprintf(`The following output was supposed to be a JSON object with keys "reply_text" (string), "possible_conditions" (array of strings), "urgency" (one of low, medium, high, emergency), and "recommended_actions" (array of strings), but it is malformed or incomplete. Return the corrected JSON object only.

%s`, raw)},
	}
}
