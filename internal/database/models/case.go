package models

import "time"

// Case is one investigation record ("dossier") as transmitted by EOS FRANCE.
// CaseNumber is the business identifier used everywhere outside the database;
// it never changes after import. InvestigatorID is nil while the case is
// unassigned. Column widths follow the fixed-width exchange layout.
type Case struct {
	BaseModel
	ImportFileID uint `json:"fichier_id" gorm:"not null;index"`

	CaseNumber        string      `json:"numeroDossier" gorm:"size:10;not null;uniqueIndex"`
	ReferenceNumber   string      `json:"referenceDossier" gorm:"size:15"`
	ContactNumber     string      `json:"numeroInterlocuteur" gorm:"size:12"`
	ContactGUID       string      `json:"guidInterlocuteur" gorm:"size:36"`
	RequestType       RequestType `json:"typeDemande" gorm:"type:varchar(3)"`
	RequestNumber     string      `json:"numeroDemande" gorm:"size:11"`
	ContestedRequest  string      `json:"numeroDemandeContestee" gorm:"size:11"`
	InitialRequest    string      `json:"numeroDemandeInitiale" gorm:"size:11"`
	RequestPackage    string      `json:"forfaitDemande" gorm:"size:16"`
	ExpectedReturnAt  *time.Time  `json:"dateRetourEspere" gorm:"type:date"`
	Title             string      `json:"qualite" gorm:"size:10"`
	LastName          string      `json:"nom" gorm:"size:30"`
	FirstName         string      `json:"prenom" gorm:"size:20"`
	BirthDate         *time.Time  `json:"dateNaissance" gorm:"type:date"`
	BirthPlace        string      `json:"lieuNaissance" gorm:"size:50"`
	BirthPostalCode   string      `json:"codePostalNaissance" gorm:"size:10"`
	BirthCountry      string      `json:"paysNaissance" gorm:"size:32"`
	PatronymicName    string      `json:"nomPatronymique" gorm:"size:30"`
	AddressLine1      string      `json:"adresse1" gorm:"size:32"`
	AddressLine2      string      `json:"adresse2" gorm:"size:32"`
	AddressLine3      string      `json:"adresse3" gorm:"size:32"`
	AddressLine4      string      `json:"adresse4" gorm:"size:32"`
	City              string      `json:"ville" gorm:"size:32"`
	PostalCode        string      `json:"codePostal" gorm:"size:10"`
	ResidenceCountry  string      `json:"paysResidence" gorm:"size:32"`
	PersonalPhone     string      `json:"telephonePersonnel" gorm:"size:15"`
	EmployerPhone     string      `json:"telephoneEmployeur" gorm:"size:15"`
	EmployerFax       string      `json:"telecopieEmployeur" gorm:"size:15"`
	EmployerName      string      `json:"nomEmployeur" gorm:"size:32"`
	BankName          string      `json:"banqueDomiciliation" gorm:"size:32"`
	BankBranchLabel   string      `json:"libelleGuichet" gorm:"size:30"`
	AccountHolder     string      `json:"titulaireCompte" gorm:"size:32"`
	BankCode          string      `json:"codeBanque" gorm:"size:5"`
	BranchCode        string      `json:"codeGuichet" gorm:"size:5"`
	AccountNumber     string      `json:"numeroCompte" gorm:"size:11"`
	AccountKey        string      `json:"ribCompte" gorm:"size:2"`
	SentAt            *time.Time  `json:"datedenvoie" gorm:"type:date"`
	RequestedElements string      `json:"elementDemandes" gorm:"size:10"`
	MandatoryElements string      `json:"elementObligatoires" gorm:"size:10"`
	ContestedElements string      `json:"elementContestes" gorm:"size:10"`
	ReasonCode        string      `json:"codeMotif" gorm:"size:16"`
	ContestationText  string      `json:"motifDeContestation" gorm:"size:64"`
	PreviousAmounts   *float64    `json:"cumulMontantsPrecedents" gorm:"type:numeric(8,2)"`
	CompanyCode       string      `json:"codesociete" gorm:"size:2"`
	Urgency           string      `json:"urgence" gorm:"size:1"`
	Comment           string      `json:"commentaire" gorm:"size:1000"`

	InvestigatorID *uint `json:"enqueteurId" gorm:"index"`

	// Relationships
	Investigator *Investigator `json:"-" gorm:"foreignKey:InvestigatorID;constraint:OnDelete:SET NULL"`
	Findings     *Findings     `json:"findings,omitempty" gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Case
func (Case) TableName() string {
	return "cases"
}

// Assigned reports whether the case currently has an investigator.
func (c *Case) Assigned() bool {
	return c.InvestigatorID != nil
}
