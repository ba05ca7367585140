package models

import "time"

// ImportFile is one uploaded EOS exchange file. Cases keep a reference to the
// file they came from so a bad import can be rolled back wholesale.
type ImportFile struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"nom" gorm:"size:255;not null;uniqueIndex"`
	UploadedAt time.Time `json:"date_upload" gorm:"autoCreateTime"`

	Cases []Case `json:"-" gorm:"foreignKey:ImportFileID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ImportFile
func (ImportFile) TableName() string {
	return "import_files"
}
