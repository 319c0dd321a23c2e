package entity

// BankCard is a payment card linked to a user.
// IsSber and SberSpasibo are derived from the holder and bank names at creation.
type BankCard struct {
	ID          int64
	UserID      int64
	CardNumber  string
	HolderName  string
	ExpireDate  string // As printed on the card, e.g. "12/27".
	BankName    string
	IsSber      bool
	SberSpasibo int // Loyalty points granted with an affiliated card.
}
