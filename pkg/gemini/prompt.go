package gemini

import "strings"

// ChatSystemPrompt is the system instruction for free-form chat replies.
const ChatSystemPrompt = `You are Quartz, a friendly task management assistant.

RULES:
1. Keep replies short and conversational, two or three sentences at most.
2. When the user talks about their work, gently relate the reply back to their task board.
3. Never invent tasks the user has not mentioned.
4. Plain text only. No markdown, no code blocks.`

// BuildChatPrompt builds the user-turn prompt for a chat reply, prefixing the
// recent conversation so the model keeps context across turns.
func BuildChatPrompt(history []string, message string) string {
	if len(history) == 0 {
		return message
	}
	var b strings.Builder
	b.WriteString("Recent conversation:\n")
	for _, line := range history {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\nUser: ")
	b.WriteString(message)
	return b.String()
}
