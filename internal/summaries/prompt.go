package summaries

import (
	"fmt"

	"symptoscan-backend/internal/llm"
)

const systemPrompt = "You are a medical AI assistant that analyzes medical reports and provides structured summaries. Respond with JSON only. Never omit keys."

const systemPromptRepair = "You are a JSON repair tool. Return only valid JSON that matches the schema exactly."

const promptTemplate = `Analyze the following medical report and provide a structured summary in JSON format:

%s

Return a JSON object with the following structure:
{
    "summary_text": "Brief overall summary of the report",
    "key_findings": ["finding1", "finding2"],
    "recommendations": ["recommendation1", "recommendation2"]
}

Focus on medical significance and patient-relevant information.`

func buildPrompt(reportText string) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf(promptTemplate, reportText)},
	}
}

func buildRepairPrompt(raw []byte) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: systemPromptRepair},
		{Role: "user", Content: fmt.Sprintf(`The following output was supposed to be a JSON object with keys "summary_text" (string), "key_findings" (array of strings), and "recommendations" (array of strings), but it is malformed or incomplete. Return the corrected JSON object only.

%s`, raw)},
	}
}
