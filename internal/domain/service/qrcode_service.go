package service

// IdentityQRData is the identity payload shown on the main card.
type IdentityQRData struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName"`
	BirthDate  string `json:"birthDate"`
}

// PassportQRData extends the identity payload with passport details.
type PassportQRData struct {
	IdentityQRData
	Series string `json:"series"`
	Number string `json:"number"`
	INN    string `json:"inn"`
}

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateIdentityQR renders the identity payload as a PNG QR code
	GenerateIdentityQR(data *IdentityQRData) ([]byte, error)

	// GeneratePassportQR renders the passport payload as a PNG QR code
	GeneratePassportQR(data *PassportQRData) ([]byte, error)
}
