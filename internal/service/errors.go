package service

import "errors"

var (
	// ErrNotFound - сущность не существует или скрыта от зрителя
	ErrNotFound = errors.New("не найдено")
	// ErrForbidden - зритель не владеет сущностью
	ErrForbidden = errors.New("доступ запрещен")
	// ErrSelfTarget - операция над самим собой запрещена
	ErrSelfTarget = errors.New("нельзя выполнить действие над собой")
	// ErrUsernameTaken - имя пользователя уже занято
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
	// ErrEmailTaken - email уже используется
	ErrEmailTaken = errors.New("email уже используется")
	// ErrInvalidCredentials - неверное имя пользователя или пароль
	ErrInvalidCredentials = errors.New("неверные учетные данные")
	// ErrInvalidToken - токен сброса пароля недействителен или истек
	ErrInvalidToken = errors.New("недействительный или просроченный токен")
)
