package auth

import (
	"crypto/subtle"
	"fmt"
)

// DeleteConfirmations — сколько раз админ обязан повторить пароль,
// чтобы подтвердить удаление курса.
const DeleteConfirmations = 5

// PasswordGate — проверка общего админ-пароля. Отдельная абстракция,
// чтобы позже заменить на персональные учетки, не трогая store и service.
type PasswordGate struct {
	password string
}

func NewPasswordGate(password string) *PasswordGate {
	return &PasswordGate{password: password}
}

// Verify сравнивает введенный пароль с общим секретом.
func (g *PasswordGate) Verify(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
}

// VerifyRepeated требует ровно n совпадающих копий секрета.
func (g *PasswordGate) VerifyRepeated(passwords []string, n int) error {
	if len(passwords) != n {
		return fmt.Errorf("%d passwords required", n)
	}
	for _, p := range passwords {
		if !g.Verify(p) {
			return fmt.Errorf("all passwords must be correct")
		}
	}
	return nil
}
