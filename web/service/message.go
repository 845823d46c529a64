package service

import (
	"errors"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/storage/model"
)

var ErrIndexOutOfRange = errors.New("message index out of range")

// MessageService handles contact-form submissions and admin replies.
// Messages are addressed by position within the collection; nothing ever
// removes a message, so positions stay stable.
type MessageService struct{}

// Submit appends a message with an empty reply.
func (s *MessageService) Submit(name string, email string, body string) error {
	return storage.Update(storage.GetStore(), storage.MessagesCollection, func(messages []model.Message) ([]model.Message, error) {
		return append(messages, model.Message{
			Name:  name,
			Email: email,
			Body:  body,
			Reply: "",
		}), nil
	})
}

// ListAll returns every message in insertion order.
func (s *MessageService) ListAll() ([]model.Message, error) {
	return storage.Load[model.Message](storage.GetStore(), storage.MessagesCollection)
}

// Answer sets the reply of the message at the given zero-based index.
// Answering again overwrites the previous reply.
func (s *MessageService) Answer(index int, reply string) error {
	return storage.Update(storage.GetStore(), storage.MessagesCollection, func(messages []model.Message) ([]model.Message, error) {
		if index < 0 || index >= len(messages) {
			return nil, ErrIndexOutOfRange
		}
		messages[index].Reply = reply
		return messages, nil
	})
}

// ListMine returns the messages whose stored name equals the requester's
// display name exactly.
func (s *MessageService) ListMine(displayName string) ([]model.Message, error) {
	messages, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	mine := make([]model.Message, 0, len(messages))
	for _, m := range messages {
		if m.Name == displayName {
			mine = append(mine, m)
		}
	}
	return mine, nil
}
