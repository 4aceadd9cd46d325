package domain

import (
	"time"

	"github.com/google/uuid"
)

// SendDateLayout is the external format for a log's send date. The send
// date is reported by the sender application and kept verbatim; it is
// distinct from the record's own creation timestamp.
const SendDateLayout = "01/02/2006 15:04"

type Log struct {
	ID                int64      `json:"id"`
	UserID            uuid.UUID  `json:"UserId"`
	Level             string     `json:"level"`
	Description       string     `json:"description"`
	SenderApplication string     `json:"senderApplication"`
	SendDate          string     `json:"sendDate"`
	Environment       string     `json:"environment"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	DeletedAt         *time.Time `json:"deletedAt"`
}
