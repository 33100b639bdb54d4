package model

import (
	"encoding/json"
	"time"
)

// Interaction is one chat turn: the user's question, the gateway's answer
// as it came back (a JSON message object, or the JSON string "No answer"
// when the gateway had no choices), and the timestamps taken before the
// gateway call and at persist time.
type Interaction struct {
	ID         string          `db:"id_serial" json:"id"`
	SessionID  string          `db:"session_id" json:"sessionId"`
	Question   string          `db:"question" json:"question"`
	Answer     json.RawMessage `db:"answer" json:"answer"`
	QTimestamp time.Time       `db:"q_timestamp" json:"qTimestamp"`
	ATimestamp time.Time       `db:"a_timestamp" json:"aTimestamp"`
}

type CreateInteractionParams struct {
	ID         string
	SessionID  string
	Question   string
	Answer     json.RawMessage
	QTimestamp time.Time
	ATimestamp time.Time
}

// ChatMessage is one entry of the flattened history returned to the client.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// AnswerContent extracts the displayable text from the stored answer.
// A message object yields its content field; a bare JSON string (the
// "No answer" case) yields the string itself.
func (i *Interaction) AnswerContent() string {
	var msg struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(i.Answer, &msg); err == nil {
		return msg.Content
	}

	var plain string
	if err := json.Unmarshal(i.Answer, &plain); err == nil {
		return plain
	}

	return ""
}
