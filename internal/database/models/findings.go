package models

import "time"

// Findings holds everything an investigator reports back for one case: the
// outcome code, corrected contact details, and the billing figures. One row
// per case, created empty at import time and filled in by partial updates.
// Amount fields are pointers so "not provided" round-trips as NULL, never 0.
type Findings struct {
	BaseModel
	CaseID uint `json:"donnee_id" gorm:"not null;uniqueIndex"`

	ResultCode         ResultCode `json:"code_resultat" gorm:"type:varchar(1)"`
	ElementsFound      string     `json:"elements_retrouves" gorm:"size:10"`
	CivilStatusErrFlag string     `json:"flag_etat_civil_errone" gorm:"size:1"` // "E" or empty
	ReturnedAt         *time.Time `json:"date_retour" gorm:"type:date"`

	// Updated address
	AddressLine1     string `json:"adresse1" gorm:"size:32"`
	AddressLine2     string `json:"adresse2" gorm:"size:32"`
	AddressLine3     string `json:"adresse3" gorm:"size:32"`
	AddressLine4     string `json:"adresse4" gorm:"size:32"`
	PostalCode       string `json:"code_postal" gorm:"size:10"`
	City             string `json:"ville" gorm:"size:32"`
	ResidenceCountry string `json:"pays_residence" gorm:"size:32"`

	// Phones
	PersonalPhone   string `json:"telephone_personnel" gorm:"size:15"`
	PhoneAtEmployer string `json:"telephone_chez_employeur" gorm:"size:15"`

	// Employer
	EmployerName         string `json:"nom_employeur" gorm:"size:32"`
	EmployerPhone        string `json:"telephone_employeur" gorm:"size:15"`
	EmployerFax          string `json:"telecopie_employeur" gorm:"size:15"`
	EmployerAddressLine1 string `json:"adresse1_employeur" gorm:"size:32"`
	EmployerAddressLine2 string `json:"adresse2_employeur" gorm:"size:32"`
	EmployerAddressLine3 string `json:"adresse3_employeur" gorm:"size:32"`
	EmployerAddressLine4 string `json:"adresse4_employeur" gorm:"size:32"`
	EmployerPostalCode   string `json:"code_postal_employeur" gorm:"size:10"`
	EmployerCity         string `json:"ville_employeur" gorm:"size:32"`
	EmployerCountry      string `json:"pays_employeur" gorm:"size:32"`

	// Bank
	BankName        string `json:"banque_domiciliation" gorm:"size:32"`
	BankBranchLabel string `json:"libelle_guichet" gorm:"size:30"`
	AccountHolder   string `json:"titulaire_compte" gorm:"size:32"`
	BankCode        string `json:"code_banque" gorm:"size:5"`
	BranchCode      string `json:"code_guichet" gorm:"size:5"`

	// Death
	DeathDate          *time.Time `json:"date_deces" gorm:"type:date"`
	DeathCertificateNo string     `json:"numero_acte_deces" gorm:"size:10"`
	DeathINSEECode     string     `json:"code_insee_deces" gorm:"size:5"`
	DeathPostalCode    string     `json:"code_postal_deces" gorm:"size:10"`
	DeathLocality      string     `json:"localite_deces" gorm:"size:32"`

	// Income: salary
	IncomeComments  string           `json:"commentaires_revenus" gorm:"size:128"`
	SalaryAmount    *float64         `json:"montant_salaire" gorm:"type:numeric(10,2)"`
	SalaryPayDay    *int             `json:"periode_versement_salaire"` // -1 or day of month 1-31
	SalaryFrequency PaymentFrequency `json:"frequence_versement_salaire" gorm:"type:varchar(2)"`

	// Income: up to three other incomes
	Income1Nature    string           `json:"nature_revenu1" gorm:"size:30"`
	Income1Amount    *float64         `json:"montant_revenu1" gorm:"type:numeric(10,2)"`
	Income1PayDay    *int             `json:"periode_versement_revenu1"`
	Income1Frequency PaymentFrequency `json:"frequence_versement_revenu1" gorm:"type:varchar(2)"`
	Income2Nature    string           `json:"nature_revenu2" gorm:"size:30"`
	Income2Amount    *float64         `json:"montant_revenu2" gorm:"type:numeric(10,2)"`
	Income2PayDay    *int             `json:"periode_versement_revenu2"`
	Income2Frequency PaymentFrequency `json:"frequence_versement_revenu2" gorm:"type:varchar(2)"`
	Income3Nature    string           `json:"nature_revenu3" gorm:"size:30"`
	Income3Amount    *float64         `json:"montant_revenu3" gorm:"type:numeric(10,2)"`
	Income3PayDay    *int             `json:"periode_versement_revenu3"`
	Income3Frequency PaymentFrequency `json:"frequence_versement_revenu3" gorm:"type:varchar(2)"`

	// Billing
	InvoiceNumber   string     `json:"numero_facture" gorm:"size:9"`
	InvoiceDate     *time.Time `json:"date_facture" gorm:"type:date"`
	InvoiceAmount   *float64   `json:"montant_facture" gorm:"type:numeric(8,2)"`
	AppliedRate     *float64   `json:"tarif_applique" gorm:"type:numeric(8,2)"`
	PreviousAmounts *float64   `json:"cumul_montants_precedents" gorm:"type:numeric(8,2)"`
	BillingResume   *float64   `json:"reprise_facturation" gorm:"type:numeric(8,2)"`
	Discount        *float64   `json:"remise_eventuelle" gorm:"type:numeric(8,2)"`

	// Memos
	Memo1 string `json:"memo1" gorm:"size:64"`
	Memo2 string `json:"memo2" gorm:"size:64"`
	Memo3 string `json:"memo3" gorm:"size:64"`
	Memo4 string `json:"memo4" gorm:"size:64"`
	Memo5 string `json:"memo5" gorm:"size:1000"`
}

// TableName returns the table name for Findings
func (Findings) TableName() string {
	return "case_findings"
}
