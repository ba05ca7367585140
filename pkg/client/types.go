package client

// Record is one investigation case as served by GET /api/donnees. Field names
// follow the backend's wire format, which in turn follows the EOS exchange
// files.
type Record struct {
	ID                uint     `json:"id"`
	ImportFileID      uint     `json:"fichier_id"`
	CaseNumber        string   `json:"numeroDossier"`
	ReferenceNumber   string   `json:"referenceDossier"`
	RequestType       string   `json:"typeDemande"`
	LastName          string   `json:"nom"`
	FirstName         string   `json:"prenom"`
	BirthDate         string   `json:"dateNaissance,omitempty"`
	BirthPlace        string   `json:"lieuNaissance,omitempty"`
	PostalCode        string   `json:"codePostal,omitempty"`
	City              string   `json:"ville,omitempty"`
	AddressLine1      string   `json:"adresse1,omitempty"`
	AddressLine2      string   `json:"adresse2,omitempty"`
	AddressLine3      string   `json:"adresse3,omitempty"`
	AddressLine4      string   `json:"adresse4,omitempty"`
	RequestedElements string   `json:"elementDemandes,omitempty"`
	MandatoryElements string   `json:"elementObligatoires,omitempty"`
	Urgency           string   `json:"urgence,omitempty"`
	PreviousAmounts   *float64 `json:"cumulMontantsPrecedents,omitempty"`
	InvestigatorID    *uint    `json:"enqueteurId"`

	Findings *Findings `json:"findings,omitempty"`
}

// Investigator is one field agent as served by GET /api/enqueteurs.
type Investigator struct {
	ID                 uint   `json:"id"`
	LastName           string `json:"nom"`
	FirstName          string `json:"prenom"`
	Email              string `json:"email"`
	Phone              string `json:"telephone"`
	VPNConfigGenerated bool   `json:"vpn_config_generated"`
}

// FullName renders "LASTNAME Firstname" the way operators read rosters.
func (i Investigator) FullName() string {
	return i.LastName + " " + i.FirstName
}

// NewInvestigator is the body of POST /api/enqueteurs.
type NewInvestigator struct {
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
	Phone     string `json:"telephone,omitempty"`
}

// Findings is the investigator-reported outcome attached to a record.
// Every field is optional; omitted numeric fields serialize as null so the
// backend never mistakes "not provided" for zero.
type Findings struct {
	ResultCode         string `json:"code_resultat,omitempty"`
	ElementsFound      string `json:"elements_retrouves,omitempty"`
	CivilStatusErrFlag string `json:"flag_etat_civil_errone,omitempty"`
	ReturnDate         string `json:"date_retour,omitempty"`

	AddressLine1     string `json:"adresse1,omitempty"`
	AddressLine2     string `json:"adresse2,omitempty"`
	AddressLine3     string `json:"adresse3,omitempty"`
	AddressLine4     string `json:"adresse4,omitempty"`
	PostalCode       string `json:"code_postal,omitempty"`
	City             string `json:"ville,omitempty"`
	ResidenceCountry string `json:"pays_residence,omitempty"`

	PersonalPhone   string `json:"telephone_personnel,omitempty"`
	PhoneAtEmployer string `json:"telephone_chez_employeur,omitempty"`
	EmployerName    string `json:"nom_employeur,omitempty"`
	EmployerPhone   string `json:"telephone_employeur,omitempty"`

	BankName        string `json:"banque_domiciliation,omitempty"`
	BankBranchLabel string `json:"libelle_guichet,omitempty"`
	AccountHolder   string `json:"titulaire_compte,omitempty"`
	BankCode        string `json:"code_banque,omitempty"`
	BranchCode      string `json:"code_guichet,omitempty"`

	IncomeComments  string   `json:"commentaires_revenus,omitempty"`
	SalaryAmount    *float64 `json:"montant_salaire,omitempty"`
	SalaryPayDay    *int     `json:"periode_versement_salaire,omitempty"`
	SalaryFrequency string   `json:"frequence_versement_salaire,omitempty"`

	InvoiceAmount   *float64 `json:"montant_facture,omitempty"`
	AppliedRate     *float64 `json:"tarif_applique,omitempty"`
	PreviousAmounts *float64 `json:"cumul_montants_precedents,omitempty"`

	Memo1 string `json:"memo1,omitempty"`
	Memo2 string `json:"memo2,omitempty"`
	Memo3 string `json:"memo3,omitempty"`
	Memo4 string `json:"memo4,omitempty"`
	Memo5 string `json:"memo5,omitempty"`
}

// FileStats is one entry of the recent-files list in GET /api/stats.
type FileStats struct {
	ID          uint   `json:"id"`
	Name        string `json:"nom"`
	UploadedAt  string `json:"date_upload"`
	RecordCount int64  `json:"nombre_donnees"`
}

// Stats is the aggregate response of GET /api/stats.
type Stats struct {
	TotalFiles  int64       `json:"total_fichiers"`
	TotalCases  int64       `json:"total_donnees"`
	RecentFiles []FileStats `json:"derniers_fichiers"`
}

// ImportResult is the response of POST /parse and POST /replace-file.
type ImportResult struct {
	FileID           uint   `json:"file_id"`
	RecordsProcessed int    `json:"records_processed"`
	Message          string `json:"message"`
}

// VPNConfig is the response of GET /api/enqueteurs/:id/vpn-config.
type VPNConfig struct {
	ConfigPath string `json:"config_path"`
	Message    string `json:"message"`
}

// envelope is the backend's uniform response wrapper. Success must be
// checked; HTTP status alone is not authoritative.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
