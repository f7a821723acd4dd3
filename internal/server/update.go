// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

// Update is the inbound Telegram webhook payload, reduced to the fields
// the pipeline consumes.
type Update struct {
	Message       *Message `json:"message"`
	EditedMessage *Message `json:"edited_message"`
}

// Message is a new or edited chat message.
type Message struct {
	Chat    Chat   `json:"chat"`
	Text    string `json:"text"`
	Caption string `json:"caption"`
}

// Chat identifies the conversation a message belongs to.
type Chat struct {
	ID int64 `json:"id"`
}

// Content returns the conversation identifier and the message text (or
// caption, for media posts). ok is false when the update carries no
// message or the message has no textual content.
func (u *Update) Content() (chatID int64, text string, ok bool) {
	msg := u.Message
	if msg == nil {
		msg = u.EditedMessage
	}
	if msg == nil {
		return 0, "", false
	}

	text = msg.Text
	if text == "" {
		text = msg.Caption
	}
	if text == "" {
		return 0, "", false
	}

	return msg.Chat.ID, text, true
}
