package entity

// Passport is an identity document registered by a user. Append-only.
type Passport struct {
	ID     int64
	UserID int64
	Series string
	Number string
	INN    string // Taxpayer number, empty when not supplied.
}

// Intercom is a building entry panel registered by a user. Append-only.
type Intercom struct {
	ID        int64
	UserID    int64
	City      string
	Street    string
	House     string
	Apartment string
	Entrance  string
	Brand     string
	Provider  string
	ImageURL  string
}
