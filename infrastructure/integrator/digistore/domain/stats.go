package digistoredomain

import "github.com/shopspring/decimal"

// Períodos do statsSalesSummary
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

const CurrencyEUR = "EUR"

// SalesSummary é o retorno de statsSalesSummary:
// data.for.<period>.amounts.<currency>.vendor_netto_amount
type SalesSummary struct {
	For map[string]PeriodSummary `json:"for"`
}

type PeriodSummary struct {
	Amounts map[string]PeriodAmount `json:"amounts"`
}

type PeriodAmount struct {
	VendorNettoAmount Money `json:"vendor_netto_amount"`
}

// NetAmount retorna o valor líquido do vendedor para o período e moeda.
// O segundo retorno é false quando a API não trouxe o período.
func (s *SalesSummary) NetAmount(period, currency string) (decimal.Decimal, bool) {
	if s == nil || s.For == nil {
		return decimal.Zero, false
	}

	summary, ok := s.For[period]
	if !ok || summary.Amounts == nil {
		return decimal.Zero, false
	}

	amount, ok := summary.Amounts[currency]
	if !ok {
		return decimal.Zero, false
	}

	return amount.VendorNettoAmount.Decimal, true
}

// DailyAmounts é o retorno de statsDailyAmounts
type DailyAmounts struct {
	AmountList []DailyAmount `json:"amount_list"`
}

type DailyAmount struct {
	Day               string `json:"day"`
	Currency          string `json:"currency,omitempty"`
	VendorNettoAmount Money  `json:"vendor_netto_amount"`
}

// BuyerList é o retorno de listBuyers; só o total de compradores interessa
type BuyerList struct {
	ItemCount Count `json:"item_count"`
}
