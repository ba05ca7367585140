package models

// Investigator is a field agent cases are routed to. Email doubles as the
// operational contact and must be unique.
type Investigator struct {
	BaseModel
	LastName  string `json:"nom" gorm:"size:100;not null" validate:"required,max=100"`
	FirstName string `json:"prenom" gorm:"size:100;not null" validate:"required,max=100"`
	Email     string `json:"email" gorm:"size:120;not null;uniqueIndex" validate:"required,email,max=120"`
	Phone     string `json:"telephone" gorm:"size:20" validate:"max=20"`

	VPNConfigGenerated bool `json:"vpn_config_generated" gorm:"default:false"`

	// Relationships
	Cases []Case `json:"-" gorm:"foreignKey:InvestigatorID"`
}

// TableName returns the table name for Investigator
func (Investigator) TableName() string {
	return "investigators"
}

// FullName returns "LASTNAME Firstname" the way operators read rosters.
func (i *Investigator) FullName() string {
	return i.LastName + " " + i.FirstName
}
