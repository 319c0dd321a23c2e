package handler

import (
	"citycard/internal/delivery/api/response"
	"citycard/internal/domain/entity"
)

type passportView struct {
	ID     int64  `json:"id"`
	Series string `json:"series"`
	Number string `json:"number"`
	INN    string `json:"inn"`
}

type transitCardView struct {
	ID         int64   `json:"id"`
	CardNumber string  `json:"cardNumber"`
	Balance    float64 `json:"balance"`
}

type bankCardView struct {
	ID          int64  `json:"id"`
	CardNumber  string `json:"cardNumber"`
	HolderName  string `json:"holderName"`
	ExpireDate  string `json:"expireDate"`
	BankName    string `json:"bankName"`
	IsSber      bool   `json:"isSber"`
	SberSpasibo int    `json:"sberSpasibo"`
}

type vehicleView struct {
	ID          int64  `json:"id"`
	PlateNumber string `json:"plateNumber"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        *int   `json:"year"`
}

type intercomView struct {
	ID        int64  `json:"id"`
	City      string `json:"city"`
	Street    string `json:"street"`
	House     string `json:"house"`
	Apartment string `json:"apartment"`
	Entrance  string `json:"entrance"`
	Brand     string `json:"brand"`
	Provider  string `json:"provider"`
	ImageURL  string `json:"imageUrl"`
}

type widgetView struct {
	WidgetType string `json:"widgetType"`
	IsVisible  bool   `json:"isVisible"`
	Position   int    `json:"position"`
}

type fineView struct {
	ID          int64   `json:"id"`
	FineNumber  string  `json:"fineNumber"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	IsPaid      bool    `json:"isPaid"`
}

type taxView struct {
	ID      int64   `json:"id"`
	TaxType string  `json:"taxType"`
	Amount  float64 `json:"amount"`
	Year    int     `json:"year"`
	IsPaid  bool    `json:"isPaid"`
	DueDate string  `json:"dueDate"`
}

type benefitView struct {
	ID          int64   `json:"id"`
	BenefitType string  `json:"benefitType"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// mapViews never returns nil so empty lists render as [].
func mapViews[E any, V any](items []*E, view func(*E) V) []V {
	views := make([]V, 0, len(items))
	for _, item := range items {
		views = append(views, view(item))
	}

	return views
}

func toPassportView(p *entity.Passport) passportView {
	return passportView{ID: p.ID, Series: p.Series, Number: p.Number, INN: p.INN}
}

func toTransitCardView(card *entity.TransitCard) transitCardView {
	return transitCardView{ID: card.ID, CardNumber: card.CardNumber, Balance: response.Money(card.Balance)}
}

func toBankCardView(card *entity.BankCard) bankCardView {
	return bankCardView{
		ID:          card.ID,
		CardNumber:  card.CardNumber,
		HolderName:  card.HolderName,
		ExpireDate:  card.ExpireDate,
		BankName:    card.BankName,
		IsSber:      card.IsSber,
		SberSpasibo: card.SberSpasibo,
	}
}

func toVehicleView(v *entity.Vehicle) vehicleView {
	return vehicleView{ID: v.ID, PlateNumber: v.PlateNumber, Brand: v.Brand, Model: v.Model, Year: v.Year}
}

func toIntercomView(i *entity.Intercom) intercomView {
	return intercomView{
		ID:        i.ID,
		City:      i.City,
		Street:    i.Street,
		House:     i.House,
		Apartment: i.Apartment,
		Entrance:  i.Entrance,
		Brand:     i.Brand,
		Provider:  i.Provider,
		ImageURL:  i.ImageURL,
	}
}

func toWidgetView(w *entity.WidgetSetting) widgetView {
	return widgetView{WidgetType: w.WidgetType, IsVisible: w.IsVisible, Position: w.Position}
}

func toFineView(f *entity.Fine) fineView {
	return fineView{
		ID:          f.ID,
		FineNumber:  f.FineNumber,
		Amount:      response.Money(f.Amount),
		Description: f.Description,
		Date:        response.Date(f.Date),
		Location:    f.Location,
		IsPaid:      f.IsPaid,
	}
}

func toTaxView(t *entity.Tax) taxView {
	return taxView{
		ID:      t.ID,
		TaxType: t.TaxType,
		Amount:  response.Money(t.Amount),
		Year:    t.Year,
		IsPaid:  t.IsPaid,
		DueDate: response.Date(t.DueDate),
	}
}

func toBenefitView(b *entity.Benefit) benefitView {
	return benefitView{
		ID:          b.ID,
		BenefitType: b.BenefitType,
		Status:      b.Status,
		Description: b.Description,
		Amount:      response.Money(b.Amount),
	}
}
