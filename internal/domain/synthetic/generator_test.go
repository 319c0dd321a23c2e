package synthetic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws so each branch can be asserted.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]

	return v
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted draw out of range")
	}

	return v
}

var fixedNow = time.Date(2025, time.March, 15, 13, 45, 0, 0, time.UTC)

func TestGenerator_Fines_Skip(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.3}}
	g := New(src, WithClock(func() time.Time { return fixedNow }))

	assert.Empty(t, g.Fines(7))
	assert.Empty(t, src.ints, "no further draws after skipping")
}

func TestGenerator_Fines_Generate(t *testing.T) {
	src := &scriptedSource{
		floats: []float64{0.31},
		// count=2, then per fine: catalog index, age-1, number offset
		ints: []int{2, 1, 0, 123456, 3, 59, 899999},
	}
	g := New(src, WithClock(func() time.Time { return fixedNow }))

	fines := g.Fines(7)

	require.Len(t, fines, 2)
	assert.Equal(t, int64(7), fines[0].VehicleID)
	assert.Equal(t, "Проезд на красный свет", fines[0].Description)
	assert.Equal(t, "1000", fines[0].Amount.String())
	assert.Equal(t, "Лиговский проспект, д.30", fines[0].Location)
	assert.Equal(t, "18810223456", fines[0].FineNumber)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), fines[0].Date)
	assert.False(t, fines[0].IsPaid)

	assert.Equal(t, "Непредоставление преимущества пешеходу", fines[1].Description)
	assert.Equal(t, "18810999999", fines[1].FineNumber)
	assert.Equal(t, fixedNow.AddDate(0, 0, -60).Truncate(24*time.Hour), fines[1].Date)
}

func TestGenerator_Fines_ZeroCount(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.9}, ints: []int{0}}
	g := New(src)

	assert.Empty(t, g.Fines(1))
}

func TestGenerator_Taxes_Skip(t *testing.T) {
	g := New(&scriptedSource{floats: []float64{0.1}})

	assert.Empty(t, g.Taxes(3))
}

func TestGenerator_Taxes_DistinctTypes(t *testing.T) {
	src := &scriptedSource{
		// trigger, then one amount draw per sampled tax
		floats: []float64{0.8, 0.5, 0},
		// count-1=1, sample draws: i=0 picks 2, i=1 picks offset 0
		ints: []int{1, 2, 0},
	}
	g := New(src)

	taxes := g.Taxes(3)

	require.Len(t, taxes, 2)
	assert.Equal(t, "Земельный налог", taxes[0].TaxType)
	assert.Equal(t, "1750", taxes[0].Amount.String())
	assert.Equal(t, "Транспортный налог", taxes[1].TaxType)
	assert.Equal(t, "2000", taxes[1].Amount.String())
	for _, tax := range taxes {
		assert.Equal(t, int64(3), tax.UserID)
		assert.Equal(t, 2025, tax.Year)
		assert.Equal(t, "2025-12-01", tax.DueDate.Format(time.DateOnly))
		assert.False(t, tax.IsPaid)
	}
}

func TestGenerator_Taxes_AmountWithinRange(t *testing.T) {
	g := New(NewSource(42))

	for range 200 {
		for _, tax := range g.Taxes(1) {
			amount := tax.Amount.InexactFloat64()
			switch tax.TaxType {
			case "Налог на имущество физических лиц":
				assert.True(t, amount >= 1000 && amount <= 5000, amount)
			case "Транспортный налог":
				assert.True(t, amount >= 2000 && amount <= 8000, amount)
			case "Земельный налог":
				assert.True(t, amount >= 500 && amount <= 3000, amount)
			default:
				t.Fatalf("unexpected tax type %q", tax.TaxType)
			}
		}
	}
}

func TestGenerator_Benefits(t *testing.T) {
	src := &scriptedSource{ints: []int{2, 0, 1}}
	g := New(src)

	benefits := g.Benefits(9)

	require.Len(t, benefits, 2)
	assert.Equal(t, "Субсидия на оплату ЖКХ", benefits[0].BenefitType)
	assert.Equal(t, "Активна", benefits[0].Status)
	assert.Equal(t, "2500", benefits[0].Amount.String())
	assert.Equal(t, "Социальная выплата", benefits[1].BenefitType)
	assert.Equal(t, "На рассмотрении", benefits[1].Status)
	assert.Equal(t, int64(9), benefits[1].UserID)
}

func TestGenerator_Benefits_None(t *testing.T) {
	g := New(&scriptedSource{ints: []int{0}})

	assert.Empty(t, g.Benefits(9))
}

func TestGenerator_TransitCardNumber(t *testing.T) {
	g := New(&scriptedSource{ints: []int{0, 8999}})

	assert.Equal(t, "1000-9999", g.TransitCardNumber())
}

func TestNewSource_SeedIsReproducible(t *testing.T) {
	a := New(NewSource(7))
	b := New(NewSource(7))

	for range 20 {
		assert.Equal(t, a.TransitCardNumber(), b.TransitCardNumber())
	}
}

func TestSample_Distinct(t *testing.T) {
	src := NewSource(1)
	for range 100 {
		picked := sample(src, 3, 3)
		assert.ElementsMatch(t, []int{0, 1, 2}, picked)
	}
}
