package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session: not found")

	// ErrEmptyToken возвращается при пустом идентификаторе сессии
	ErrEmptyToken = errors.New("session: empty token")
)
