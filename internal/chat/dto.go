package chat

import "time"

// MessageResponse is the outward-facing representation of a message.
type MessageResponse struct {
	MessageID string    `json:"messageId"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Metadata  *Guidance `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TurnResponse carries both halves of a chat exchange plus the
// structured guidance at the top level for convenience.
type TurnResponse struct {
	Reply              string          `json:"reply"`
	PossibleConditions []string        `json:"possibleConditions"`
	Urgency            Urgency         `json:"urgency"`
	RecommendedActions []string        `json:"recommendedActions"`
	UserMessage        MessageResponse `json:"userMessage"`
	AIMessage          MessageResponse `json:"aiMessage"`
}

// ToMessageResponse converts a message to its API shape.
func ToMessageResponse(msg Message) MessageResponse {
	return MessageResponse{
		MessageID: msg.ID,
		Type:      string(msg.Type),
		Content:   msg.Content,
		Metadata:  msg.Metadata,
		CreatedAt: msg.CreatedAt,
	}
}

// ToTurnResponse converts a completed turn to its API shape.
func ToTurnResponse(turn Turn) TurnResponse {
	resp := TurnResponse{
		Reply:              turn.AIMessage.Content,
		PossibleConditions: []string{},
		RecommendedActions: []string{},
		UserMessage:        ToMessageResponse(turn.UserMessage),
		AIMessage:          ToMessageResponse(turn.AIMessage),
	}
	if g := turn.AIMessage.Metadata; g != nil {
		resp.Urgency = g.Urgency
		if g.PossibleConditions != nil {
			resp.PossibleConditions = g.PossibleConditions
		}
		if g.RecommendedActions != nil {
			resp.RecommendedActions = g.RecommendedActions
		}
	}
	return resp
}
