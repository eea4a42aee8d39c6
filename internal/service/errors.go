package service

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrUnknownAI            = errors.New("unknown attendant")
)
