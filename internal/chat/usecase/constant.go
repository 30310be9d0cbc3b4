package usecase

const (
	// historyUsers bounds how many users keep a live conversation buffer.
	historyUsers = 256

	// historyDepth is how many conversation lines are kept per user.
	historyDepth = 10

	fallbackChatReply = "I'm having trouble thinking right now. Try asking about your tasks, or say \"help\" to see what I can do."
)
