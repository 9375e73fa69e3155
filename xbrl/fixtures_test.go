package xbrl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Period keys of the fixture filing's distinct reporting periods.
const (
	fy2023Key   = "duration_2023-01-01_2023-12-31"
	fy2022Key   = "duration_2022-01-01_2022-12-31"
	q4of2023Key = "duration_2023-10-01_2023-12-31"
	asOf2023Key = "instant_2023-12-31"
	asOf2022Key = "instant_2022-12-31"
)

const (
	roleBalanceSheet     = "http://acme.example.com/role/BalanceSheet"
	roleIncomeStatement  = "http://acme.example.com/role/IncomeStatement"
	roleCashFlow         = "http://acme.example.com/role/CashFlow"
	roleRevenueByProduct = "http://acme.example.com/role/RevenueByProduct"
)

func parseTestFiling(t *testing.T) *XBRL {
	t.Helper()
	x, err := Parse(Files{
		Schema:       testSchema,
		Presentation: testPresentation,
		Calculation:  testCalculation,
		Definition:   testDefinition,
		Label:        testLabels,
		Instance:     testInstance,
		SchemaName:   "acme-20231231.xsd",
		InstanceName: "acme-20231231.xml",
	})
	require.NoError(t, err)
	return x
}

const testSchema = `<?xml version="1.0" encoding="utf-8"?>
<xsd:schema xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xbrli="http://www.xbrl.org/2003/instance"
    xmlns:xlink="http://www.w3.org/1999/xlink"
    targetNamespace="http://acme.example.com/20231231">
  <xsd:annotation>
    <xsd:appinfo>
      <link:roleType roleURI="http://acme.example.com/role/BalanceSheet">
        <link:definition>Consolidated Balance Sheets</link:definition>
        <link:usedOn>link:presentationLink</link:usedOn>
      </link:roleType>
      <link:roleType roleURI="http://acme.example.com/role/IncomeStatement">
        <link:definition>Consolidated Statements of Operations</link:definition>
        <link:usedOn>link:presentationLink</link:usedOn>
      </link:roleType>
      <link:roleType roleURI="http://acme.example.com/role/CashFlow">
        <link:definition>Consolidated Statements of Cash Flows</link:definition>
        <link:usedOn>link:presentationLink</link:usedOn>
      </link:roleType>
      <link:roleType roleURI="http://acme.example.com/role/RevenueByProduct">
        <link:definition>Disaggregation of Revenue by Business Segment</link:definition>
        <link:usedOn>link:presentationLink</link:usedOn>
      </link:roleType>
    </xsd:appinfo>
  </xsd:annotation>
  <xsd:element id="us-gaap_StatementOfFinancialPositionAbstract" name="StatementOfFinancialPositionAbstract" type="xbrli:stringItemType" abstract="true" xbrli:periodType="duration"/>
  <xsd:element id="us-gaap_AssetsCurrent" name="AssetsCurrent" type="xbrli:monetaryItemType" xbrli:periodType="instant" xbrli:balance="debit"/>
  <xsd:element id="us-gaap_CashAndCashEquivalentsAtCarryingValue" name="CashAndCashEquivalentsAtCarryingValue" type="xbrli:monetaryItemType" xbrli:periodType="instant" xbrli:balance="debit"/>
  <xsd:element id="us-gaap_Assets" name="Assets" type="xbrli:monetaryItemType" xbrli:periodType="instant" xbrli:balance="debit"/>
  <xsd:element id="us-gaap_Liabilities" name="Liabilities" type="xbrli:monetaryItemType" xbrli:periodType="instant" xbrli:balance="credit"/>
  <xsd:element id="us-gaap_StockholdersEquity" name="StockholdersEquity" type="xbrli:monetaryItemType" xbrli:periodType="instant" xbrli:balance="credit"/>
  <xsd:element id="us-gaap_IncomeStatementAbstract" name="IncomeStatementAbstract" type="xbrli:stringItemType" abstract="true" xbrli:periodType="duration"/>
  <xsd:element id="us-gaap_Revenues" name="Revenues" type="xbrli:monetaryItemType" xbrli:periodType="duration" xbrli:balance="credit"/>
  <xsd:element id="us-gaap_CostOfRevenue" name="CostOfRevenue" type="xbrli:monetaryItemType" xbrli:periodType="duration" xbrli:balance="debit"/>
  <xsd:element id="us-gaap_GrossProfit" name="GrossProfit" type="xbrli:monetaryItemType" xbrli:periodType="duration" xbrli:balance="credit"/>
  <xsd:element id="us-gaap_NetIncomeLoss" name="NetIncomeLoss" type="xbrli:monetaryItemType" xbrli:periodType="duration" xbrli:balance="credit"/>
  <xsd:element id="us-gaap_EarningsPerShareBasic" name="EarningsPerShareBasic" type="xbrli:perShareItemType" xbrli:periodType="duration"/>
  <xsd:element id="us-gaap_StatementOfCashFlowsAbstract" name="StatementOfCashFlowsAbstract" type="xbrli:stringItemType" abstract="true" xbrli:periodType="duration"/>
  <xsd:element id="us-gaap_NetCashProvidedByUsedInOperatingActivities" name="NetCashProvidedByUsedInOperatingActivities" type="xbrli:monetaryItemType" xbrli:periodType="duration"/>
  <xsd:element id="us-gaap_IncreaseDecreaseInInventories" name="IncreaseDecreaseInInventories" type="xbrli:monetaryItemType" xbrli:periodType="duration" xbrli:balance="debit"/>
  <xsd:element id="acme_RevenueAbstract" name="RevenueAbstract" type="xbrli:stringItemType" abstract="true" xbrli:periodType="duration"/>
  <xsd:element id="acme_RevenueTable" name="RevenueTable" type="xbrli:stringItemType" abstract="true" xbrli:periodType="duration"/>
  <xsd:element id="acme_RevenueLineItems" name="RevenueLineItems" type="xbrli:stringItemType" abstract="true" xbrli:periodType="duration"/>
  <xsd:element id="srt_ProductOrServiceAxis" name="ProductOrServiceAxis" type="xbrli:stringItemType" abstract="true" xbrli:periodType="duration"/>
  <xsd:element id="srt_ProductsAndServicesDomain" name="ProductsAndServicesDomain" type="xbrli:stringItemType" abstract="true" xbrli:periodType="duration"/>
  <xsd:element id="acme_WidgetsMember" name="WidgetsMember" type="xbrli:stringItemType" abstract="true" xbrli:periodType="duration"/>
  <xsd:element id="acme_ServicesMember" name="ServicesMember" type="xbrli:stringItemType" abstract="true" xbrli:periodType="duration"/>
</xsd:schema>`

const testLabels = `<?xml version="1.0" encoding="utf-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink"
    xmlns:xml="http://www.w3.org/XML/1998/namespace">
  <link:labelLink xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_StatementOfFinancialPositionAbstract" xlink:label="loc_bsAbstract"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_AssetsCurrent" xlink:label="loc_assetsCurrent"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_CashAndCashEquivalentsAtCarryingValue" xlink:label="loc_cash"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_Assets" xlink:label="loc_assets"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_Liabilities" xlink:label="loc_liabilities"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_StockholdersEquity" xlink:label="loc_equity"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_IncomeStatementAbstract" xlink:label="loc_isAbstract"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_Revenues" xlink:label="loc_revenues"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_CostOfRevenue" xlink:label="loc_costOfRevenue"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_GrossProfit" xlink:label="loc_grossProfit"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_NetIncomeLoss" xlink:label="loc_netIncome"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_EarningsPerShareBasic" xlink:label="loc_epsBasic"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_StatementOfCashFlowsAbstract" xlink:label="loc_cfAbstract"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_NetCashProvidedByUsedInOperatingActivities" xlink:label="loc_opCashFlow"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_IncreaseDecreaseInInventories" xlink:label="loc_incInventories"/>
    <link:loc xlink:href="acme-20231231.xsd#acme_RevenueAbstract" xlink:label="loc_revAbstract"/>
    <link:loc xlink:href="acme-20231231.xsd#acme_RevenueTable" xlink:label="loc_revTable"/>
    <link:loc xlink:href="acme-20231231.xsd#acme_RevenueLineItems" xlink:label="loc_revLineItems"/>
    <link:loc xlink:href="acme-20231231.xsd#srt_ProductOrServiceAxis" xlink:label="loc_productAxis"/>
    <link:loc xlink:href="acme-20231231.xsd#srt_ProductsAndServicesDomain" xlink:label="loc_productDomain"/>
    <link:loc xlink:href="acme-20231231.xsd#acme_WidgetsMember" xlink:label="loc_widgets"/>
    <link:loc xlink:href="acme-20231231.xsd#acme_ServicesMember" xlink:label="loc_services"/>
    <link:labelArc xlink:from="loc_bsAbstract" xlink:to="lab_bsAbstract"/>
    <link:labelArc xlink:from="loc_assetsCurrent" xlink:to="lab_assetsCurrent"/>
    <link:labelArc xlink:from="loc_cash" xlink:to="lab_cash"/>
    <link:labelArc xlink:from="loc_assets" xlink:to="lab_assets"/>
    <link:labelArc xlink:from="loc_liabilities" xlink:to="lab_liabilities"/>
    <link:labelArc xlink:from="loc_equity" xlink:to="lab_equity"/>
    <link:labelArc xlink:from="loc_isAbstract" xlink:to="lab_isAbstract"/>
    <link:labelArc xlink:from="loc_revenues" xlink:to="lab_revenues"/>
    <link:labelArc xlink:from="loc_costOfRevenue" xlink:to="lab_costOfRevenue"/>
    <link:labelArc xlink:from="loc_grossProfit" xlink:to="lab_grossProfit"/>
    <link:labelArc xlink:from="loc_netIncome" xlink:to="lab_netIncome"/>
    <link:labelArc xlink:from="loc_epsBasic" xlink:to="lab_epsBasic"/>
    <link:labelArc xlink:from="loc_cfAbstract" xlink:to="lab_cfAbstract"/>
    <link:labelArc xlink:from="loc_opCashFlow" xlink:to="lab_opCashFlow"/>
    <link:labelArc xlink:from="loc_incInventories" xlink:to="lab_incInventories"/>
    <link:labelArc xlink:from="loc_revAbstract" xlink:to="lab_revAbstract"/>
    <link:labelArc xlink:from="loc_revTable" xlink:to="lab_revTable"/>
    <link:labelArc xlink:from="loc_revLineItems" xlink:to="lab_revLineItems"/>
    <link:labelArc xlink:from="loc_productAxis" xlink:to="lab_productAxis"/>
    <link:labelArc xlink:from="loc_productDomain" xlink:to="lab_productDomain"/>
    <link:labelArc xlink:from="loc_widgets" xlink:to="lab_widgets"/>
    <link:labelArc xlink:from="loc_services" xlink:to="lab_services"/>
    <link:label xlink:label="lab_bsAbstract" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Statement of Financial Position [Abstract]</link:label>
    <link:label xlink:label="lab_assetsCurrent" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Assets, Current</link:label>
    <link:label xlink:label="lab_assetsCurrent" xlink:role="http://www.xbrl.org/2003/role/totalLabel" xml:lang="en-US">Total current assets</link:label>
    <link:label xlink:label="lab_cash" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Cash and cash equivalents</link:label>
    <link:label xlink:label="lab_assets" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Assets</link:label>
    <link:label xlink:label="lab_assets" xlink:role="http://www.xbrl.org/2003/role/totalLabel" xml:lang="en-US">Total assets</link:label>
    <link:label xlink:label="lab_liabilities" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Liabilities</link:label>
    <link:label xlink:label="lab_equity" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Stockholders' Equity Attributable to Parent</link:label>
    <link:label xlink:label="lab_isAbstract" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Income Statement [Abstract]</link:label>
    <link:label xlink:label="lab_revenues" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Revenues</link:label>
    <link:label xlink:label="lab_costOfRevenue" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Cost of Revenue</link:label>
    <link:label xlink:label="lab_grossProfit" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Gross Profit</link:label>
    <link:label xlink:label="lab_netIncome" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Net Income (Loss)</link:label>
    <link:label xlink:label="lab_netIncome" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="de">Jahresergebnis</link:label>
    <link:label xlink:label="lab_epsBasic" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Earnings Per Share, Basic</link:label>
    <link:label xlink:label="lab_cfAbstract" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Statement of Cash Flows [Abstract]</link:label>
    <link:label xlink:label="lab_opCashFlow" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Net Cash Provided by (Used in) Operating Activities</link:label>
    <link:label xlink:label="lab_incInventories" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Increase (Decrease) in Inventories</link:label>
    <link:label xlink:label="lab_revAbstract" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Revenue [Abstract]</link:label>
    <link:label xlink:label="lab_revTable" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Disaggregation of Revenue [Table]</link:label>
    <link:label xlink:label="lab_revLineItems" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Disaggregation of Revenue [Line Items]</link:label>
    <link:label xlink:label="lab_productAxis" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Product and Service [Axis]</link:label>
    <link:label xlink:label="lab_productDomain" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Product and Service [Domain]</link:label>
    <link:label xlink:label="lab_widgets" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Widgets [Member]</link:label>
    <link:label xlink:label="lab_services" xlink:role="http://www.xbrl.org/2003/role/label" xml:lang="en-US">Services [Member]</link:label>
  </link:labelLink>
</link:linkbase>`

const testPresentation = `<?xml version="1.0" encoding="utf-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:role="http://acme.example.com/role/BalanceSheet">
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_StatementOfFinancialPositionAbstract" xlink:label="loc_bsAbstract"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_AssetsCurrent" xlink:label="loc_assetsCurrent"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_CashAndCashEquivalentsAtCarryingValue" xlink:label="loc_cash"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_Assets" xlink:label="loc_assets"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_Liabilities" xlink:label="loc_liabilities"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_StockholdersEquity" xlink:label="loc_equity"/>
    <link:presentationArc xlink:from="loc_bsAbstract" xlink:to="loc_assetsCurrent" order="1"/>
    <link:presentationArc xlink:from="loc_assetsCurrent" xlink:to="loc_cash" order="1"/>
    <link:presentationArc xlink:from="loc_bsAbstract" xlink:to="loc_assets" order="2" preferredLabel="http://www.xbrl.org/2003/role/totalLabel"/>
    <link:presentationArc xlink:from="loc_bsAbstract" xlink:to="loc_liabilities" order="3"/>
    <link:presentationArc xlink:from="loc_bsAbstract" xlink:to="loc_equity" order="4"/>
  </link:presentationLink>
  <link:presentationLink xlink:role="http://acme.example.com/role/IncomeStatement">
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_IncomeStatementAbstract" xlink:label="loc_isAbstract"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_Revenues" xlink:label="loc_revenues"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_CostOfRevenue" xlink:label="loc_costOfRevenue"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_GrossProfit" xlink:label="loc_grossProfit"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_NetIncomeLoss" xlink:label="loc_netIncome"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_EarningsPerShareBasic" xlink:label="loc_epsBasic"/>
    <link:presentationArc xlink:from="loc_isAbstract" xlink:to="loc_revenues" order="1"/>
    <link:presentationArc xlink:from="loc_isAbstract" xlink:to="loc_costOfRevenue" order="2"/>
    <link:presentationArc xlink:from="loc_isAbstract" xlink:to="loc_grossProfit" order="3" preferredLabel="http://www.xbrl.org/2003/role/totalLabel"/>
    <link:presentationArc xlink:from="loc_isAbstract" xlink:to="loc_netIncome" order="4"/>
    <link:presentationArc xlink:from="loc_isAbstract" xlink:to="loc_epsBasic" order="5"/>
  </link:presentationLink>
  <link:presentationLink xlink:role="http://acme.example.com/role/CashFlow">
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_StatementOfCashFlowsAbstract" xlink:label="loc_cfAbstract"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_NetIncomeLoss" xlink:label="loc_netIncome"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_IncreaseDecreaseInInventories" xlink:label="loc_incInventories"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_NetCashProvidedByUsedInOperatingActivities" xlink:label="loc_opCashFlow"/>
    <link:presentationArc xlink:from="loc_cfAbstract" xlink:to="loc_netIncome" order="1"/>
    <link:presentationArc xlink:from="loc_cfAbstract" xlink:to="loc_incInventories" order="2"/>
    <link:presentationArc xlink:from="loc_cfAbstract" xlink:to="loc_opCashFlow" order="3"/>
  </link:presentationLink>
  <link:presentationLink xlink:role="http://acme.example.com/role/RevenueByProduct">
    <link:loc xlink:href="acme-20231231.xsd#acme_RevenueAbstract" xlink:label="loc_revAbstract"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_Revenues" xlink:label="loc_revenues"/>
    <link:presentationArc xlink:from="loc_revAbstract" xlink:to="loc_revenues" order="1"/>
  </link:presentationLink>
</link:linkbase>`

const testCalculation = `<?xml version="1.0" encoding="utf-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:calculationLink xlink:role="http://acme.example.com/role/BalanceSheet">
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_Assets" xlink:label="loc_assets"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_AssetsCurrent" xlink:label="loc_assetsCurrent"/>
    <link:calculationArc xlink:from="loc_assets" xlink:to="loc_assetsCurrent" order="1" weight="1.0"/>
  </link:calculationLink>
  <link:calculationLink xlink:role="http://acme.example.com/role/CashFlow">
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_NetCashProvidedByUsedInOperatingActivities" xlink:label="loc_opCashFlow"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_NetIncomeLoss" xlink:label="loc_netIncome"/>
    <link:loc xlink:href="acme-20231231.xsd#us-gaap_IncreaseDecreaseInInventories" xlink:label="loc_incInventories"/>
    <link:calculationArc xlink:from="loc_opCashFlow" xlink:to="loc_netIncome" order="1" weight="1.0"/>
    <link:calculationArc xlink:from="loc_opCashFlow" xlink:to="loc_incInventories" order="2" weight="-1.0"/>
  </link:calculationLink>
</link:linkbase>`

const testDefinition = `<?xml version="1.0" encoding="utf-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:definitionLink xlink:role="http://acme.example.com/role/RevenueByProduct">
    <link:loc xlink:href="acme-20231231.xsd#acme_RevenueLineItems" xlink:label="loc_revLineItems"/>
    <link:loc xlink:href="acme-20231231.xsd#acme_RevenueTable" xlink:label="loc_revTable"/>
    <link:loc xlink:href="acme-20231231.xsd#srt_ProductOrServiceAxis" xlink:label="loc_productAxis"/>
    <link:loc xlink:href="acme-20231231.xsd#srt_ProductsAndServicesDomain" xlink:label="loc_productDomain"/>
    <link:loc xlink:href="acme-20231231.xsd#acme_WidgetsMember" xlink:label="loc_widgets"/>
    <link:loc xlink:href="acme-20231231.xsd#acme_ServicesMember" xlink:label="loc_services"/>
    <link:definitionArc xlink:from="loc_revLineItems" xlink:to="loc_revTable" xlink:arcrole="http://xbrl.org/int/dim/arcrole/all" order="1"/>
    <link:definitionArc xlink:from="loc_revTable" xlink:to="loc_productAxis" xlink:arcrole="http://xbrl.org/int/dim/arcrole/hypercube-dimension" order="1"/>
    <link:definitionArc xlink:from="loc_productAxis" xlink:to="loc_productDomain" xlink:arcrole="http://xbrl.org/int/dim/arcrole/dimension-domain" order="1"/>
    <link:definitionArc xlink:from="loc_productDomain" xlink:to="loc_widgets" xlink:arcrole="http://xbrl.org/int/dim/arcrole/domain-member" order="1"/>
    <link:definitionArc xlink:from="loc_productDomain" xlink:to="loc_services" xlink:arcrole="http://xbrl.org/int/dim/arcrole/domain-member" order="2"/>
  </link:definitionLink>
</link:linkbase>`

const testInstance = `<?xml version="1.0" encoding="utf-8"?>
<xbrl xmlns="http://www.xbrl.org/2003/instance"
    xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink"
    xmlns:us-gaap="http://fasb.org/us-gaap/2023"
    xmlns:dei="http://xbrl.sec.gov/dei/2023"
    xmlns:srt="http://fasb.org/srt/2023"
    xmlns:xbrldi="http://xbrl.org/2006/xbrldi"
    xmlns:iso4217="http://www.xbrl.org/2003/iso4217"
    xmlns:acme="http://acme.example.com/20231231">
  <link:schemaRef xlink:type="simple" xlink:href="acme-20231231.xsd"/>
  <context id="FY2023">
    <entity>
      <identifier scheme="http://www.sec.gov/CIK">0000123456</identifier>
    </entity>
    <period>
      <startDate>2023-01-01</startDate>
      <endDate>2023-12-31</endDate>
    </period>
  </context>
  <context id="FY2022">
    <entity>
      <identifier scheme="http://www.sec.gov/CIK">0000123456</identifier>
    </entity>
    <period>
      <startDate>2022-01-01</startDate>
      <endDate>2022-12-31</endDate>
    </period>
  </context>
  <context id="Q4_2023">
    <entity>
      <identifier scheme="http://www.sec.gov/CIK">0000123456</identifier>
    </entity>
    <period>
      <startDate>2023-10-01</startDate>
      <endDate>2023-12-31</endDate>
    </period>
  </context>
  <context id="AsOf2023">
    <entity>
      <identifier scheme="http://www.sec.gov/CIK">0000123456</identifier>
    </entity>
    <period>
      <instant>2023-12-31</instant>
    </period>
  </context>
  <context id="AsOf2022">
    <entity>
      <identifier scheme="http://www.sec.gov/CIK">0000123456</identifier>
    </entity>
    <period>
      <instant>2022-12-31</instant>
    </period>
  </context>
  <context id="FY2023_Widgets">
    <entity>
      <identifier scheme="http://www.sec.gov/CIK">0000123456</identifier>
      <segment>
        <xbrldi:explicitMember dimension="srt:ProductOrServiceAxis">acme:WidgetsMember</xbrldi:explicitMember>
      </segment>
    </entity>
    <period>
      <startDate>2023-01-01</startDate>
      <endDate>2023-12-31</endDate>
    </period>
  </context>
  <context id="FY2023_Services">
    <entity>
      <identifier scheme="http://www.sec.gov/CIK">0000123456</identifier>
      <segment>
        <xbrldi:explicitMember dimension="srt:ProductOrServiceAxis">acme:ServicesMember</xbrldi:explicitMember>
      </segment>
    </entity>
    <period>
      <startDate>2023-01-01</startDate>
      <endDate>2023-12-31</endDate>
    </period>
  </context>
  <unit id="usd">
    <measure>iso4217:USD</measure>
  </unit>
  <unit id="usdPerShare">
    <divide>
      <unitNumerator>
        <measure>iso4217:USD</measure>
      </unitNumerator>
      <unitDenominator>
        <measure>shares</measure>
      </unitDenominator>
    </divide>
  </unit>
  <dei:EntityRegistrantName contextRef="FY2023">Acme Corporation</dei:EntityRegistrantName>
  <dei:EntityCentralIndexKey contextRef="FY2023">0000123456</dei:EntityCentralIndexKey>
  <dei:TradingSymbol contextRef="FY2023">ACME</dei:TradingSymbol>
  <dei:DocumentType contextRef="FY2023">10-K</dei:DocumentType>
  <dei:DocumentFiscalYearFocus contextRef="FY2023">2023</dei:DocumentFiscalYearFocus>
  <dei:DocumentFiscalPeriodFocus contextRef="FY2023">FY</dei:DocumentFiscalPeriodFocus>
  <dei:DocumentPeriodEndDate contextRef="FY2023">2023-12-31</dei:DocumentPeriodEndDate>
  <dei:CurrentFiscalYearEndDate contextRef="FY2023">--12-31</dei:CurrentFiscalYearEndDate>
  <us-gaap:CashAndCashEquivalentsAtCarryingValue contextRef="AsOf2023" unitRef="usd" decimals="-3">150000</us-gaap:CashAndCashEquivalentsAtCarryingValue>
  <us-gaap:AssetsCurrent contextRef="AsOf2023" unitRef="usd" decimals="-3">400000</us-gaap:AssetsCurrent>
  <us-gaap:AssetsCurrent contextRef="AsOf2022" unitRef="usd" decimals="-3">350000</us-gaap:AssetsCurrent>
  <us-gaap:Assets contextRef="AsOf2023" unitRef="usd" decimals="-3">1000000</us-gaap:Assets>
  <us-gaap:Assets contextRef="AsOf2022" unitRef="usd" decimals="-3">900000</us-gaap:Assets>
  <us-gaap:Liabilities contextRef="AsOf2023" unitRef="usd" decimals="-3">600000</us-gaap:Liabilities>
  <us-gaap:Liabilities contextRef="AsOf2022" unitRef="usd" decimals="-3">560000</us-gaap:Liabilities>
  <us-gaap:StockholdersEquity contextRef="AsOf2023" unitRef="usd" decimals="-3">400000</us-gaap:StockholdersEquity>
  <us-gaap:StockholdersEquity contextRef="AsOf2022" unitRef="usd" decimals="-3">340000</us-gaap:StockholdersEquity>
  <us-gaap:Revenues contextRef="FY2023" unitRef="usd" decimals="-3">500000</us-gaap:Revenues>
  <us-gaap:Revenues contextRef="FY2022" unitRef="usd" decimals="-3">450000</us-gaap:Revenues>
  <us-gaap:Revenues contextRef="Q4_2023" unitRef="usd" decimals="-3">130000</us-gaap:Revenues>
  <us-gaap:Revenues contextRef="FY2023_Widgets" unitRef="usd" decimals="-3">300000</us-gaap:Revenues>
  <us-gaap:Revenues contextRef="FY2023_Services" unitRef="usd" decimals="-3">200000</us-gaap:Revenues>
  <us-gaap:CostOfRevenue contextRef="FY2023" unitRef="usd" decimals="-3">200000</us-gaap:CostOfRevenue>
  <us-gaap:GrossProfit contextRef="FY2023" unitRef="usd" decimals="-3">300000</us-gaap:GrossProfit>
  <us-gaap:NetIncomeLoss contextRef="FY2023" unitRef="usd" decimals="-3">80000</us-gaap:NetIncomeLoss>
  <us-gaap:NetIncomeLoss contextRef="FY2022" unitRef="usd" decimals="-3">70000</us-gaap:NetIncomeLoss>
  <us-gaap:EarningsPerShareBasic contextRef="FY2023" unitRef="usdPerShare" decimals="INF">1.25</us-gaap:EarningsPerShareBasic>
  <us-gaap:IncreaseDecreaseInInventories contextRef="FY2023" unitRef="usd" decimals="-3">5000</us-gaap:IncreaseDecreaseInInventories>
  <us-gaap:NetCashProvidedByUsedInOperatingActivities contextRef="FY2023" unitRef="usd" decimals="-3">90000</us-gaap:NetCashProvidedByUsedInOperatingActivities>
</xbrl>`
