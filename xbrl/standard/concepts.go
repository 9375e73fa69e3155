// Package standard maps filer-specific XBRL concept names onto a
// fixed vocabulary of standard concepts, so the same logical line
// item is comparable across companies and filings.
package standard

// Concept is one entry of the standard vocabulary.
type Concept struct {
	Key      string
	Label    string
	Synonyms []string
}

// DefaultConcepts is the built-in vocabulary. It is constructed
// configuration: callers may pass their own set to NewMapper.
func DefaultConcepts() []Concept {
	return []Concept{
		{Key: "revenue", Label: "Revenue",
			Synonyms: []string{"revenues", "net sales", "total revenue", "sales", "net revenue"}},
		{Key: "cost_of_revenue", Label: "Cost of Revenue",
			Synonyms: []string{"cost of sales", "cost of goods sold"}},
		{Key: "gross_profit", Label: "Gross Profit",
			Synonyms: []string{"gross margin"}},
		{Key: "operating_expenses", Label: "Operating Expenses",
			Synonyms: []string{"total operating expenses"}},
		{Key: "operating_income", Label: "Operating Income",
			Synonyms: []string{"income from operations", "operating profit"}},
		{Key: "net_income", Label: "Net Income",
			Synonyms: []string{"net income loss", "net earnings", "profit or loss"}},
		{Key: "eps_basic", Label: "Earnings Per Share (Basic)",
			Synonyms: []string{"basic earnings per share", "earnings per share basic"}},
		{Key: "eps_diluted", Label: "Earnings Per Share (Diluted)",
			Synonyms: []string{"diluted earnings per share", "earnings per share diluted"}},
		{Key: "total_assets", Label: "Total Assets",
			Synonyms: []string{"assets"}},
		{Key: "current_assets", Label: "Current Assets",
			Synonyms: []string{"total current assets", "assets current"}},
		{Key: "total_liabilities", Label: "Total Liabilities",
			Synonyms: []string{"liabilities"}},
		{Key: "current_liabilities", Label: "Current Liabilities",
			Synonyms: []string{"total current liabilities", "liabilities current"}},
		{Key: "stockholders_equity", Label: "Stockholders' Equity",
			Synonyms: []string{"shareholders equity", "total equity", "total stockholders equity"}},
		{Key: "cash_and_equivalents", Label: "Cash and Cash Equivalents",
			Synonyms: []string{"cash", "cash cash equivalents"}},
		{Key: "operating_cash_flow", Label: "Cash from Operating Activities",
			Synonyms: []string{"net cash provided by operating activities", "cash flows from operations"}},
		{Key: "investing_cash_flow", Label: "Cash from Investing Activities",
			Synonyms: []string{"net cash used in investing activities"}},
		{Key: "financing_cash_flow", Label: "Cash from Financing Activities",
			Synonyms: []string{"net cash used in financing activities"}},
	}
}

// DefaultMappings is the curated element-id -> standard-concept
// table for the us-gaap taxonomy. Keys are in underscore form.
func DefaultMappings() map[string]string {
	return map[string]string{
		"us-gaap_Revenues": "revenue",
		"us-gaap_SalesRevenueNet": "revenue",
		"us-gaap_SalesRevenueGoodsNet": "revenue",
		"us-gaap_RevenueFromContractWithCustomerExcludingAssessedTax": "revenue",
		"us-gaap_RevenueFromContractWithCustomerIncludingAssessedTax": "revenue",
		"us-gaap_CostOfRevenue": "cost_of_revenue",
		"us-gaap_CostOfGoodsAndServicesSold": "cost_of_revenue",
		"us-gaap_CostOfGoodsSold": "cost_of_revenue",
		"us-gaap_GrossProfit": "gross_profit",
		"us-gaap_OperatingExpenses": "operating_expenses",
		"us-gaap_OperatingIncomeLoss": "operating_income",
		"us-gaap_NetIncomeLoss": "net_income",
		"us-gaap_ProfitLoss": "net_income",
		"us-gaap_EarningsPerShareBasic": "eps_basic",
		"us-gaap_EarningsPerShareDiluted": "eps_diluted",
		"us-gaap_Assets": "total_assets",
		"us-gaap_AssetsCurrent": "current_assets",
		"us-gaap_Liabilities": "total_liabilities",
		"us-gaap_LiabilitiesCurrent": "current_liabilities",
		"us-gaap_StockholdersEquity": "stockholders_equity",
		"us-gaap_StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest": "stockholders_equity",
		"us-gaap_CashAndCashEquivalentsAtCarryingValue": "cash_and_equivalents",
		"us-gaap_CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents": "cash_and_equivalents",
		"us-gaap_NetCashProvidedByUsedInOperatingActivities": "operating_cash_flow",
		"us-gaap_NetCashProvidedByUsedInInvestingActivities": "investing_cash_flow",
		"us-gaap_NetCashProvidedByUsedInFinancingActivities": "financing_cash_flow",
	}
}
