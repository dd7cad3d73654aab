package chat

import (
	"fmt"
	"strings"
	"time"
)

// Message types.
const (
	TypeUser = "user"
	TypeAI   = "ai"
)

// Urgency is the closed-set triage signal attached to AI replies.
// It drives safety messaging and is never free text.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

// ParseUrgency maps a model-produced label to the closed set. Anything
// outside the set is ErrUrgencyUnparseable, never forwarded verbatim.
func ParseUrgency(raw string) (Urgency, error) {
	switch Urgency(strings.ToLower(strings.TrimSpace(raw))) {
	case UrgencyLow:
		return UrgencyLow, nil
	case UrgencyMedium:
		return UrgencyMedium, nil
	case UrgencyHigh:
		return UrgencyHigh, nil
	case UrgencyEmergency:
		return UrgencyEmergency, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUrgencyUnparseable, raw)
	}
}

// Guidance is the structured triage metadata attached to AI replies only.
type Guidance struct {
	PossibleConditions []string `json:"possible_conditions"`
	Urgency            Urgency  `json:"urgency"`
	RecommendedActions []string `json:"recommended_actions"`
}

// Message is a single chat turn. Metadata is set on AI replies only.
type Message struct {
	ID        string
	UserID    string
	Type      string
	Content   string
	Metadata  *Guidance
	CreatedAt time.Time
}
