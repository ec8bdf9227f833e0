package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound       = errors.New("recurso não encontrado")
	ErrUserNotFound   = errors.New("usuário não encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("não autorizado")
	ErrForbidden      = errors.New("acesso negado")
	ErrEmptyDateRange = errors.New("período de datas vazio")
)

// ValidationError filtro do usuário viola uma restrição documentada.
// É exibido inline e não substitui o Result corrente.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// BusinessRuleError regra de negócio do módulo (ex.: recebíveis sem período).
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string { return e.Message }

// DatabaseError falha de conexão, consulta ou timeout. O Result anterior do
// módulo permanece intacto quando este erro é devolvido.
type DatabaseError struct {
	SQLState string
	Timeout  bool
	Err      error
}

func (e *DatabaseError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("banco de dados: timeout (%v)", e.Err)
	}
	if e.SQLState != "" {
		return fmt.Sprintf("banco de dados: %s (%v)", e.SQLState, e.Err)
	}
	return fmt.Sprintf("banco de dados: %v", e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }
