package message

// Message represents the messages table
type Message struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	PostedBy    int    `json:"postedBy" gorm:"index:idx_messages_posted_by;not null"`
	MessageText string `json:"messageText" gorm:"type:varchar(255);not null"`
	TimePosted  int64  `json:"timePosted"`
}

// MaxTextLength is measured in characters, not bytes.
const MaxTextLength = 255
