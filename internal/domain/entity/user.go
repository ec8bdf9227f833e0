package entity

// AdminUsername usuário com capacidade implícita sobre todos os módulos.
const AdminUsername = "admin"

// User usuário do painel. PasswordHash carrega o identificador do esquema no
// prefixo (bcrypt, pbkdf2_sha256 ou argon2id); ver pkg/password.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Active       bool
}
