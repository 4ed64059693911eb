package intent

// DefaultFallback is returned when no rule matches.
const DefaultFallback = "I can help you search your emails, summarize threads, draft replies, and more. What would you like to do?"

// DefaultRules returns the built-in rule table. Order matters: a
// message containing terms from several rules resolves to the first
// entry here. Responses are markdown, opaque to the router.
func DefaultRules() []Rule {
	return []Rule{
		{
			Terms: []string{"summarize", "unread"},
			Response: "📬 **Your Inbox Summary:**\n\n" +
				"• 2 unread emails requiring action\n" +
				"• John Doe is waiting for confirmation on the $910M share deal\n" +
				"• Sarah Chen needs sign-off on Q4 roadmap by Wednesday\n\n" +
				"Would you like me to draft responses for any of these?",
		},
		{
			Terms: []string{"john", "share"},
			Response: "📧 Found John Doe's email about the **20M shares acquisition**:\n\n" +
				"• Total value: $910 million at $45.50/share\n" +
				"• Documents needed: transfer agreement, board resolution, SEC filings\n" +
				"• Action required: Confirm receipt and schedule Thursday call\n\n" +
				"Shall I draft a confirmation reply?",
		},
		{
			Terms: []string{"draft", "reply"},
			Response: "✍️ Here's a draft reply:\n\n---\n\n" +
				"Hi John,\n\n" +
				"Thank you for confirming the share acquisition details. I've received the terms and they look good.\n\n" +
				"I'm available for a call on Thursday. Please share your preferred time slots.\n\n" +
				"Best regards",
		},
		{
			Terms: []string{"meeting", "week"},
			Response: "📅 **This Week's Meetings:**\n\n" +
				"• Investment Committee - Monday 2pm EST\n" +
				"• Q4 Roadmap Review - Friday (pending)\n" +
				"• Dad's Birthday - Saturday 6pm (personal)\n\n" +
				"Want me to prepare any briefing notes?",
		},
	}
}

// ExampleQueries are the starter prompts shown in an empty chat.
func ExampleQueries() []string {
	return []string{
		"Summarize my unread emails",
		"Find emails about project deadlines",
		"Draft a reply to John's last email",
		"What meetings do I have this week?",
	}
}
