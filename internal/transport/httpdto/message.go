package httpdto

import "social-media/internal/domain/message"

// MessageRequest is the body of POST /messages. PATCH /messages/{id} reads
// only MessageText.
type MessageRequest struct {
	ID          int    `json:"id"`
	PostedBy    int    `json:"postedBy"`
	MessageText string `json:"messageText"`
	TimePosted  int64  `json:"timePosted"`
}

func (r MessageRequest) ToMessage() message.Message {
	return message.Message{
		ID:          r.ID,
		PostedBy:    r.PostedBy,
		MessageText: r.MessageText,
		TimePosted:  r.TimePosted,
	}
}
