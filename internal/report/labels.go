package report

import "github.com/SscSPs/cash_book_app/internal/utils/format"

type labels struct {
	LedgerTitle     string
	CashBookTitle   string
	PartiesTitle    string
	From            string
	To              string
	PreviousBalance string
	Balance         string
	Date            string
	Party           string
	Description     string
	Debit           string
	Credit          string
	Amount          string
	Qty             string
	Total           string
	Received        string
	Paid            string
	Payable         string
	Receivable      string
	Settled         string
	NoEntries       string
}

var labelSets = map[format.Lang]labels{
	format.English: {
		LedgerTitle:     "Account Ledger",
		CashBookTitle:   "Cash Book",
		PartiesTitle:    "Party Balances",
		From:            "From",
		To:              "To",
		PreviousBalance: "Previous balance",
		Balance:         "Balance",
		Date:            "Date",
		Party:           "Party",
		Description:     "Description",
		Debit:           "Debit",
		Credit:          "Credit",
		Amount:          "Amount",
		Qty:             "Qty",
		Total:           "Total",
		Received:        "Cash Received",
		Paid:            "Cash Paid",
		Payable:         "Payable",
		Receivable:      "Receivable",
		Settled:         "Settled",
		NoEntries:       "No entries.",
	},
	format.Urdu: {
		LedgerTitle:     "کھاتہ",
		CashBookTitle:   "کیش بک",
		PartiesTitle:    "پارٹی بیلنس",
		From:            "از",
		To:              "تا",
		PreviousBalance: "سابقہ بیلنس",
		Balance:         "بیلنس",
		Date:            "تاریخ",
		Party:           "پارٹی",
		Description:     "تفصیل",
		Debit:           "بنام",
		Credit:          "جمع",
		Amount:          "رقم",
		Qty:             "مقدار",
		Total:           "کل",
		Received:        "وصولی",
		Paid:            "ادائیگی",
		Payable:         "قابل ادائیگی",
		Receivable:      "قابل وصولی",
		Settled:         "بےباق",
		NoEntries:       "کوئی اندراج نہیں۔",
	},
}

func labelsFor(lang format.Lang) labels {
	if l, ok := labelSets[lang]; ok {
		return l
	}
	return labelSets[format.English]
}
