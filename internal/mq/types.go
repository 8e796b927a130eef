package mq

import (
	"time"

	"biolink/internal/model"
	"biolink/pkg/util"
)

// VisitTag tags visit messages on the topic
const VisitTag = "visit"

// VisitMessage carries one visit from the redirect path to the store writer
type VisitMessage struct {
	MessageID   string      `json:"message_id"`
	Visit       model.Visit `json:"visit"`
	PublishedAt time.Time   `json:"published_at"`
}

// NewVisitMessage wraps a visit with a fresh message id
func NewVisitMessage(visit *model.Visit) *VisitMessage {
	return &VisitMessage{
		MessageID:   util.GenerateUUID(),
		Visit:       *visit,
		PublishedAt: time.Now(),
	}
}
