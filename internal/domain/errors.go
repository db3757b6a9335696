package domain

import "errors"

var (
	// ErrInvalidState - нарушение предусловия (например, UseKey без ключей)
	ErrInvalidState = errors.New("invalid state")

	// ErrLevelNotFound - файла уровня нет
	ErrLevelNotFound = errors.New("level not found")
	// ErrLevelParse - файл уровня есть, но прочитать его нельзя
	ErrLevelParse = errors.New("level parse error")
	// ErrLevelLoad - уровень не удалось получить ни из кэша, ни из загрузчика
	ErrLevelLoad = errors.New("level load failed")
)
