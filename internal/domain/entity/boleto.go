package entity

import "time"

// Status possíveis de um boleto no fluxo de cobrança.
const (
	BoletoSent      = "Enviado"
	BoletoWrong     = "Errado"
	BoletoNoContact = "Sem contato"
)

// BoletoRecord linha crua da tabela "Boletos".
type BoletoRecord struct {
	Name          string
	BoletoID      string
	DueDate       string
	ImportDate    string
	SendTimestamp string
	Status        string
}

// Boleto boleto normalizado.
type Boleto struct {
	Name          string
	BoletoID      string
	DueDate       time.Time
	ImportDate    time.Time
	SendTimestamp time.Time
	Status        string
}
