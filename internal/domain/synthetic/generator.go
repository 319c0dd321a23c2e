package synthetic

import (
	"fmt"
	"strconv"
	"time"

	"citycard/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const (
	// Records are generated only when the first draw exceeds this threshold (70% of calls).
	generateThreshold = 0.3

	maxFinesPerVehicle = 2
	maxFineAgeDays     = 60
	fineNumberPrefix   = "18810"

	taxYear           = 2025
	maxBenefitsPerRun = 2
)

var taxDueDate = time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

type fineTemplate struct {
	description string
	amount      int64
	location    string
}

var fineCatalog = []fineTemplate{
	{description: "Превышение скорости на 20-40 км/ч", amount: 500, location: "Невский проспект, д.1"},
	{description: "Проезд на красный свет", amount: 1000, location: "Лиговский проспект, д.30"},
	{description: "Нарушение правил парковки", amount: 1500, location: "ул. Рубинштейна, д.15"},
	{description: "Непредоставление преимущества пешеходу", amount: 1500, location: "Садовая ул., д.50"},
}

type taxTemplate struct {
	taxType   string
	minAmount float64
	maxAmount float64
}

var taxCatalog = []taxTemplate{
	{taxType: "Налог на имущество физических лиц", minAmount: 1000, maxAmount: 5000},
	{taxType: "Транспортный налог", minAmount: 2000, maxAmount: 8000},
	{taxType: "Земельный налог", minAmount: 500, maxAmount: 3000},
}

type benefitTemplate struct {
	benefitType string
	status      string
	description string
	amount      int64
}

var benefitCatalog = []benefitTemplate{
	{benefitType: "Субсидия на оплату ЖКХ", status: "Активна", description: "Ежемесячная выплата", amount: 2500},
	{benefitType: "Льгота на проезд", status: "Активна", description: "Бесплатный проезд", amount: 0},
	{benefitType: "Социальная выплата", status: "На рассмотрении", description: "Единовременная выплата", amount: 10000},
}

// Generator builds synthetic records from fixed catalogs.
type Generator struct {
	src Source
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the wall clock used to date fines.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator drawing from src.
func New(src Source, opts ...Option) *Generator {
	g := &Generator{src: src, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Fines returns zero to two fines for a newly registered vehicle.
// Nothing is generated on 30% of calls.
func (g *Generator) Fines(vehicleID int64) []*entity.Fine {
	if g.src.Float64() <= generateThreshold {
		return nil
	}

	count := g.src.IntN(maxFinesPerVehicle + 1)
	today := truncateToDate(g.now())
	fines := make([]*entity.Fine, 0, count)
	for range count {
		tpl := fineCatalog[g.src.IntN(len(fineCatalog))]
		age := 1 + g.src.IntN(maxFineAgeDays)

		fines = append(fines, &entity.Fine{
			VehicleID:   vehicleID,
			FineNumber:  fineNumberPrefix + strconv.Itoa(100000+g.src.IntN(900000)),
			Amount:      decimal.NewFromInt(tpl.amount),
			Description: tpl.description,
			Date:        today.AddDate(0, 0, -age),
			Location:    tpl.location,
		})
	}

	return fines
}

// Taxes returns one or two distinct tax assessments, or none on 30% of calls.
func (g *Generator) Taxes(userID int64) []*entity.Tax {
	if g.src.Float64() <= generateThreshold {
		return nil
	}

	count := 1 + g.src.IntN(2)
	taxes := make([]*entity.Tax, 0, count)
	for _, idx := range sample(g.src, len(taxCatalog), count) {
		tpl := taxCatalog[idx]
		amount := tpl.minAmount + g.src.Float64()*(tpl.maxAmount-tpl.minAmount)

		taxes = append(taxes, &entity.Tax{
			UserID:  userID,
			TaxType: tpl.taxType,
			Amount:  decimal.NewFromFloat(amount).Round(2),
			Year:    taxYear,
			DueDate: taxDueDate,
		})
	}

	return taxes
}

// Benefits returns zero to two distinct benefit entries.
func (g *Generator) Benefits(userID int64) []*entity.Benefit {
	count := g.src.IntN(maxBenefitsPerRun + 1)
	benefits := make([]*entity.Benefit, 0, count)
	for _, idx := range sample(g.src, len(benefitCatalog), count) {
		tpl := benefitCatalog[idx]

		benefits = append(benefits, &entity.Benefit{
			UserID:      userID,
			BenefitType: tpl.benefitType,
			Status:      tpl.status,
			Description: tpl.description,
			Amount:      decimal.NewFromInt(tpl.amount),
		})
	}

	return benefits
}

// TransitCardNumber returns a card number in the NNNN-NNNN format.
func (g *Generator) TransitCardNumber() string {
	return fmt.Sprintf("%d-%d", 1000+g.src.IntN(9000), 1000+g.src.IntN(9000))
}

// sample picks k distinct indexes out of n with a partial Fisher-Yates shuffle.
func sample(src Source, n, k int) []int {
	k = min(k, n)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := range k {
		j := i + src.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
