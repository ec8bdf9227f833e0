package entity

import "time"

// Tipos de pessoa de Customer.
const (
	PersonIndividual = "Física"
	PersonBusiness   = "Jurídica"
)

// CustomerRecord linha crua da tabela "Customers".
type CustomerRecord struct {
	GestionID       string
	TypeOfPerson    string
	LegalName       string
	Name            string
	TaxIDBusiness   string // CNPJ
	TaxIDIndividual string // CPF
	Email           string
	RegisterDate    string
	Active          string
}

// Customer cliente normalizado.
type Customer struct {
	GestionID       string
	TypeOfPerson    string
	LegalName       string
	Name            string
	TaxIDBusiness   string
	TaxIDIndividual string
	Email           string
	RegisterDate    time.Time
	Active          bool
}
