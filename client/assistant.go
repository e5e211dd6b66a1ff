package client

// Assistant is the canned study-assistant exchange. There is no model
// behind it: it greets once and answers every message with the same
// acknowledgement, keeping the transcript in memory.
type Assistant struct {
	transcript []AssistantMessage
}

type AssistantMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	assistantGreeting = "Hello! I'm your AI study assistant. How can I help you today?"
	assistantReply    = "I understand your question. Let me help you with that..."
)

func NewAssistant() *Assistant {
	return &Assistant{
		transcript: []AssistantMessage{
			{Role: "assistant", Content: assistantGreeting},
		},
	}
}

func (a *Assistant) Send(message string) AssistantMessage {
	a.transcript = append(a.transcript, AssistantMessage{Role: "user", Content: message})

	reply := AssistantMessage{Role: "assistant", Content: assistantReply}
	a.transcript = append(a.transcript, reply)
	return reply
}

func (a *Assistant) Transcript() []AssistantMessage {
	transcript := make([]AssistantMessage, len(a.transcript))
	copy(transcript, a.transcript)
	return transcript
}
