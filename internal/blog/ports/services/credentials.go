// Package services определяет интерфейсы доменных сервисов.
package services

// CredentialCodec определяет операции хеширования и проверки паролей.
type CredentialCodec interface {
	// Hash возвращает соленый хеш пароля для сохранения.
	Hash(name, password string) (string, error)

	// Verify проверяет пароль против сохраненного хеша.
	Verify(name, password, storedHash string) (bool, error)
}
