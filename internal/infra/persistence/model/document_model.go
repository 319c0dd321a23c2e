package model

// PassportModel is the GORM-specific struct for the 'passports' table.
type PassportModel struct {
	ID     int64  `gorm:"primaryKey"`
	UserID int64  `gorm:"not null;index"`
	Series string `gorm:"type:varchar(10);not null"`
	Number string `gorm:"type:varchar(20);not null"`
	INN    string `gorm:"column:inn;type:varchar(20);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PassportModel) TableName() string {
	return TablePassports
}

// IntercomModel is the GORM-specific struct for the 'intercoms' table.
type IntercomModel struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	City      string `gorm:"type:varchar(100)"`
	Street    string `gorm:"type:varchar(200)"`
	House     string `gorm:"type:varchar(20)"`
	Apartment string `gorm:"type:varchar(20)"`
	Entrance  string `gorm:"type:varchar(20)"`
	Brand     string `gorm:"type:varchar(100)"`
	Provider  string `gorm:"type:varchar(100)"`
	ImageURL  string `gorm:"column:image_url;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (IntercomModel) TableName() string {
	return TableIntercoms
}
