package model

// BankCardModel is the GORM-specific struct for the 'bank_cards' table.
type BankCardModel struct {
	ID          int64  `gorm:"primaryKey"`
	UserID      int64  `gorm:"not null;index"`
	CardNumber  string `gorm:"type:varchar(30);not null"`
	HolderName  string `gorm:"type:varchar(100)"`
	ExpireDate  string `gorm:"type:varchar(10)"`
	BankName    string `gorm:"type:varchar(100)"`
	IsSber      bool   `gorm:"not null"`
	SberSpasibo int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (BankCardModel) TableName() string {
	return TableBankCards
}
