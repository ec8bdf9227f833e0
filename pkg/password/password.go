// Package password verifica senhas contra hashes de esquemas diferentes.
//
// A tabela de usuários herdada mistura esquemas: contas antigas usam o
// formato PBKDF2 do painel original, contas migradas usam bcrypt e as mais
// recentes argon2id. O esquema é detectado pelo prefixo do hash armazenado,
// então a verificação funciona sem migração prévia da tabela.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// Verify compara a senha em claro com o hash armazenado, escolhendo o
// algoritmo pelo prefixo. Prefixo desconhecido falha a verificação.
func Verify(storedHash, plain string) bool {
	switch {
	case strings.HasPrefix(storedHash, "$2a$"),
		strings.HasPrefix(storedHash, "$2b$"),
		strings.HasPrefix(storedHash, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
	case strings.HasPrefix(storedHash, "pbkdf2_sha256$"):
		return verifyPBKDF2(storedHash, plain)
	case strings.HasPrefix(storedHash, "$argon2id$"):
		return verifyArgon2id(storedHash, plain)
	default:
		return false
	}
}

// Hash gera um hash bcrypt para senhas novas.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("password.Hash: %w", err)
	}
	return string(h), nil
}

// verifyPBKDF2 valida o formato "pbkdf2_sha256$<iterações>$<salt>$<hash base64>".
func verifyPBKDF2(storedHash, plain string) bool {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 4 {
		return false
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false
	}
	salt := parts[2]
	expected, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return false
	}
	derived := pbkdf2.Key([]byte(plain), []byte(salt), iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(derived, expected) == 1
}

// verifyArgon2id valida o formato PHC
// "$argon2id$v=19$m=<mem>,t=<tempo>,p=<paralelismo>$<salt b64>$<hash b64>".
func verifyArgon2id(storedHash, plain string) bool {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 6 {
		return false
	}
	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}
	derived := argon2.IDKey([]byte(plain), salt, iterations, memory, parallelism, uint32(len(expected)))
	return subtle.ConstantTimeCompare(derived, expected) == 1
}
