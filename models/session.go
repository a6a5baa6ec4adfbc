package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one picker tab's hold on a color model.
type Session struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Expiry    time.Time `json:"expiry"`
}

// SessionResponse is returned by every session-scoped endpoint.
type SessionResponse struct {
	Session Session  `json:"session"`
	Colors  ColorSet `json:"colors"`
	Hue     string   `json:"hue"`
}

func (session Session) Serialize() ([]byte, error) {
	jsonSession, err := json.Marshal(session)
	if err != nil {
		return []byte{}, fmt.Errorf("error parsing json for Session %v", err)
	}
	return jsonSession, nil
}

func (session Session) Expired(now time.Time) bool {
	return now.After(session.Expiry)
}

func NewSession(lifetime time.Duration) Session {
	now := time.Now()
	return Session{
		SessionID: uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Expiry:    now.Add(lifetime),
	}
}
