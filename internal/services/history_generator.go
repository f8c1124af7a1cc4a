package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"fre-insights/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	salaryDay          = 15
	rentDay            = 1
	maxDailyBuys       = 3
	generatedRefFormat = "GEN-%06d"
)

// GeneratedCSVColumns is the header written by WriteCSV
var GeneratedCSVColumns = []string{"date", "description", "amount", "type", "reference"}

// GeneratedCSVMapping addresses the columns written by WriteCSV
func GeneratedCSVMapping() models.ColumnMapping {
	typeCol, refCol := 3, 4
	return models.ColumnMapping{
		Date:        0,
		Description: 1,
		Amount:      2,
		Type:        &typeCol,
		Reference:   &refCol,
		HasHeader:   true,
	}
}

// merchantProfile is a purchase source with its description template and amount range.
// '#' in the template is replaced by a random digit.
type merchantProfile struct {
	template string
	category string
	min, max float64
}

// recurringCharge is billed on the same day every month
type recurringCharge struct {
	description string
	day         int
	amount      string
}

type historyGenerator struct {
	faker     *gofakeit.Faker
	merchants []merchantProfile
	recurring []recurringCharge
}

// NewHistoryGenerator creates a generator; a zero seed produces a different history on every run
func NewHistoryGenerator(seed uint64) HistoryGeneratorInterface {
	return &historyGenerator{
		faker:     gofakeit.New(seed),
		merchants: initializeMerchantPool(),
		recurring: []recurringCharge{
			{"NETFLIX.COM ####", 2, "99.90"},
			{"SPOTIFY P####", 12, "59.99"},
			{"YOUTUBE PREMIUM", 20, "57.99"},
		},
	}
}

func initializeMerchantPool() []merchantProfile {
	return []merchantProfile{
		// Groceries
		{"MIGROS #### ISTANBUL", models.CategoryGroceries, 150, 1400},
		{"A101 MAGAZA ####", models.CategoryGroceries, 40, 450},
		{"BIM BIRLESIK MAGAZALAR", models.CategoryGroceries, 40, 500},
		{"CARREFOURSA ####", models.CategoryGroceries, 120, 1100},

		// Dining
		{"YEMEKSEPETI", models.CategoryDining, 120, 650},
		{"TRENDYOL YEMEK", models.CategoryDining, 110, 600},
		{"STARBUCKS ####", models.CategoryDining, 75, 220},

		// Transportation
		{"SHELL ####", models.CategoryTransportation, 600, 2200},
		{"UBER *TRIP", models.CategoryTransportation, 90, 450},
		{"ISTANBULKART DOLUM", models.CategoryTransportation, 100, 400},

		// Shopping
		{"TRENDYOL", models.CategoryShopping, 150, 2500},
		{"HEPSIBURADA", models.CategoryShopping, 100, 3000},

		// Healthcare
		{"ECZANE ####", models.CategoryHealthcare, 60, 700},
	}
}

// Generate returns a history between start and end (inclusive), oldest first:
// salary income, rent, monthly subscriptions, a variable electricity bill and daily purchases.
func (g *historyGenerator) Generate(userID uuid.UUID, start, end time.Time, currency string) []*models.Transaction {
	start, end = models.DateOnly(start), models.DateOnly(end)
	if end.Before(start) {
		return []*models.Transaction{}
	}

	var txs []*models.Transaction
	add := func(on time.Time, description, direction string, amount decimal.Decimal) {
		if on.Before(start) || on.After(end) {
			return
		}
		txs = append(txs, &models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        on,
			Description: description,
			Merchant:    models.NormalizeMerchant(description),
			Amount:      amount,
			Direction:   direction,
			Currency:    currency,
		})
	}

	for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(end); month = month.AddDate(0, 1, 0) {
		add(month.AddDate(0, 0, salaryDay-1), "MAAS ODEMESI", models.DirectionIncome, decimal.NewFromInt(45000))
		add(month.AddDate(0, 0, rentDay-1), "KIRA ODEMESI", models.DirectionExpense, decimal.NewFromInt(15000))

		for _, charge := range g.recurring {
			add(month.AddDate(0, 0, charge.day-1), g.faker.Numerify(charge.description), models.DirectionExpense,
				decimal.RequireFromString(charge.amount))
		}

		bill := g.faker.Float64Range(450, 1300)
		add(month.AddDate(0, 0, g.faker.IntRange(5, 25)), "ENERJISA ELEKTRIK FATURA", models.DirectionExpense,
			decimal.NewFromFloat(bill).Round(2))
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for i := g.faker.IntRange(0, maxDailyBuys); i > 0; i-- {
			merchant := g.merchants[g.faker.IntRange(0, len(g.merchants)-1)]
			amount := g.faker.Float64Range(merchant.min, merchant.max)
			add(day, g.faker.Numerify(merchant.template), models.DirectionExpense, decimal.NewFromFloat(amount).Round(2))
		}
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
	for i, tx := range txs {
		tx.SourceRef = fmt.Sprintf(generatedRefFormat, i+1)
	}
	return txs
}

// WriteCSV writes transactions in the layout described by GeneratedCSVMapping
func (g *historyGenerator) WriteCSV(w io.Writer, transactions []*models.Transaction) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(GeneratedCSVColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, tx := range transactions {
		record := []string{
			tx.Date.Format("2006-01-02"),
			tx.Description,
			tx.SignedAmount().StringFixed(2),
			tx.Direction,
			tx.SourceRef,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
