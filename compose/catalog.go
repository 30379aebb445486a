package compose

import "github.com/lvillar/proposal/submission"

// Group is one of the four top-level fee groupings of a proposal.
type Group string

const (
	GroupHandover        Group = "A"
	GroupIncorporation   Group = "B"
	GroupRecurring       Group = "C"
	GroupTransferPricing Group = "D"
)

// Title returns the heading of the group.
func (g Group) Title() string {
	switch g {
	case GroupHandover:
		return "A. One time Handover Service"
	case GroupIncorporation:
		return "B. Incorporation / Secretarial Service and Mandatory Registrations post Incorporation"
	case GroupRecurring:
		return "C. Accounting / Tax / Payroll / Annual Compliance Services"
	case GroupTransferPricing:
		return "D. Transfer Pricing compliances"
	}
	return string(g)
}

// Parts of group B. Each part is a separate table.
const (
	PartIncorporation = "incorporation"
	PartOptional      = "optional"
	PartNominee       = "nominee"
)

// Categories of group C. Sections sharing a category are grouped under one
// spanning label cell.
const (
	CategoryDirectTax   = "Direct tax compliances"
	CategoryIndirectTax = "Indirect tax compliances"
	CategoryCompanyLaw  = "Company Law"
	CategoryForex       = "Foreign Exchange laws"
	CategoryAccounting  = "Accounting"
	CategoryPayroll     = "Payroll"
)

// TierTable describes a volume-band table nested in a section's notes.
type TierTable struct {
	Field     string // form field holding caller-supplied tiers
	LabelHead string
	FeeHead   string
	Defaults  []submission.Tier
}

// Section is one independently flaggable block of the proposal.
type Section struct {
	Flag  string `json:"flag"`
	Group Group  `json:"group"`
	// Part is the sub-table in group B or the category in group C.
	Part string `json:"part,omitempty"`
	Name string `json:"name"`

	FeeField   string `json:"feeField"`
	FreqField  string `json:"frequencyField,omitempty"` // empty when the frequency is fixed
	Frequency  string `json:"frequency,omitempty"`      // default or fixed frequency
	DefaultFee string `json:"defaultFee"`               // shown when the fee is blank
	PerMonth   bool   `json:"perMonth,omitempty"`       // fee shown as "N per month"

	Description string     `json:"-"` // markup
	Tiers       *TierTable `json:"tiers,omitempty"`
}

// DefaultAccountingTiers is used when a submission includes accounting
// maintenance without supplying its own bands.
var DefaultAccountingTiers = []submission.Tier{
	{Label: "Upto 20", Fee: "200"},
	{Label: "20 - 50", Fee: "250"},
	{Label: "50-80", Fee: "300"},
}

// DefaultPayrollTiers is used when a submission includes payroll processing
// without supplying its own bands.
var DefaultPayrollTiers = []submission.Tier{
	{Label: "Upto 10 employees", Fee: "125 USD"},
	{Label: "11 - 20 employees", Fee: "200 USD"},
}

func heading(s string) string {
	return `<font color="#C00000" face="Roboto-Bold"><b>` + s + `</b></font>`
}

// Catalog returns every optional section in reading order.
func Catalog() []Section {
	out := make([]Section, len(catalog))
	copy(out, catalog)
	return out
}

var catalog = []Section{
	// A. Handover
	{
		Flag: "includeHandover", Group: GroupHandover, Name: "Handover from erstwhile service provider",
		FeeField: "handoverFee", FreqField: "handoverFrequency", Frequency: "One-time", DefaultFee: "0",
		Description: heading("Handover from erstwhile service provider of various records under laws as mentioned below. " +
			"This process does not entail conducting a due diligence.") + `<br/>
• GST laws/regulations<br/>
• Income Tax Act, 1961<br/>
• Company's Act, 2013<br/>
• Foreign Exchange Rules &amp; Regulations`,
	},
	{
		Flag: "includeDueDiligence", Group: GroupHandover, Name: "Basic due diligence",
		FeeField: "dueDiligenceFee", FreqField: "ddFrequency", Frequency: "One-time", DefaultFee: "0",
		Description: `<font color="#C00000" face="Roboto-Bold">Basic due diligence from perspective of*–</font><br/>
• Company's Act, 2013<br/>
• Income Tax Act, 1961<br/>
• Goods and Service Tax Act, 2017<br/>
• Foreign Exchange Management Act, 1999`,
	},

	// B. Incorporation and mandatory registrations
	{
		Flag: "includeIncorporation", Group: GroupIncorporation, Part: PartIncorporation, Name: "Incorporation",
		FeeField: "incorporationFee", Frequency: "One-time", DefaultFee: "0",
		Description: heading("Incorporation") + `<br/>
• PAN of the company included<br/>
• TAN of the company included<br/>
• Employees' Provident Fund and Miscellaneous Provision Act, Employees' State Insurance Corporation Act included`,
	},
	{
		Flag: "includeGST", Group: GroupIncorporation, Part: PartIncorporation, Name: "GST registration",
		FeeField: "gstRegFee", Frequency: "One-time", DefaultFee: "0",
		Description: heading("Goods &amp; Service Tax (GST)") + `<br/><br/>
Registration of single location with GST authorities.<br/><br/>
<i>Registration of every additional location with the GST authorities shall cost USD 100</i>`,
	},
	{
		Flag: "includeFCGPR", Group: GroupIncorporation, Part: PartIncorporation, Name: "FCGPR filing",
		FeeField: "fcgprFee", Frequency: "One-time", DefaultFee: "0",
		Description: heading("FCGPR Filing with Reserve Bank of India") + `<br/>
Filing of Forms and declaration with RBI as required under FEMA`,
	},
	{
		Flag: "includeROC", Group: GroupIncorporation, Part: PartIncorporation, Name: "ROC statutory compliances",
		FeeField: "rocComplianceFee", Frequency: "One-time", DefaultFee: "0",
		Description: heading("Statutory Compliances with Registrar of Companies under Companies Act:") + `<br/><br/>
• Drafting of first board meeting documents<br/><br/>
• Guidance on capital infusion in bank account<br/><br/>
• File form with Ministry for commencement of business (COC)<br/><br/>
• Preparation of statutory shareholders register`,
	},

	// B. Optional registrations
	{
		Flag: "includeIEC", Group: GroupIncorporation, Part: PartOptional, Name: "Import Export Code",
		FeeField: "iecFee", Frequency: "One-time", DefaultFee: "0",
		Description: `<font color="#C00000" face="Roboto-Bold">Import Export Code (IEC Code)</font>`,
	},
	{
		Flag: "includePT", Group: GroupIncorporation, Part: PartOptional, Name: "Profession Tax",
		FeeField: "ptFee", Frequency: "One-time", DefaultFee: "0",
		Description: `<font color="#C00000" face="Roboto-Bold">Profession Tax (PT)</font><br/><br/>` +
			`• Payments and return filing for company, its employees until the company's certificate of commencement is obtained`,
	},
	{
		Flag: "includeBEN", Group: GroupIncorporation, Part: PartOptional, Name: "Beneficial ownership (BEN-2)",
		FeeField: "benFee", Frequency: "One-time", DefaultFee: "0",
		Description: `<font color="#C00000" face="Roboto-Bold">Submission of Significant Beneficial Ownership via form BEN-2</font>`,
	},
	{
		Flag: "includeMGT", Group: GroupIncorporation, Part: PartOptional, Name: "Nominee shareholding forms (MGT)",
		FeeField: "mgtFee", Frequency: "One-time", DefaultFee: "0",
		Description: `<font color="#C00000" face="Roboto-Bold">Filing of requisite forms with Registrar of Companies (ROC) ` +
			`with respect to beneficial and nominee shareholding (via Form MGT 4, MGT 5, MGT 6)</font>`,
	},
	{
		Flag: "includePAN", Group: GroupIncorporation, Part: PartOptional, Name: "Physical PAN card",
		FeeField: "panCardFee", Frequency: "One-time", DefaultFee: "0",
		Description: `<font color="#C00000" face="Roboto-Bold">Physical PAN Card of the company</font>`,
	},
	{
		Flag: "includeTrademark", Group: GroupIncorporation, Part: PartOptional, Name: "Trademark registration",
		FeeField: "trademarkFee", Frequency: "One-time", DefaultFee: "0",
		Description: `<font color="#C00000" face="Roboto-Bold">Trademark Registration (exclusive of disbursement fees)</font>`,
	},
	{
		Flag: "includeForeignPAN", Group: GroupIncorporation, Part: PartOptional, Name: "PAN for foreign director",
		FeeField: "foreignPanFee", Frequency: "One-time", DefaultFee: "0",
		Description: `<font color="#C00000" face="Roboto-Bold">PAN for foreign director</font>`,
	},
	{
		Flag: "includeBankAssist", Group: GroupIncorporation, Part: PartOptional, Name: "Bank account opening assistance",
		FeeField: "bankAssistFee", Frequency: "One-time", DefaultFee: "0",
		Description: `<font color="#C00000" face="Roboto-Bold">Assistance in opening of bank account</font>`,
	},

	// B. Nominee director and registered office
	{
		Flag: "includeRegOffice", Group: GroupIncorporation, Part: PartNominee, Name: "Registered office",
		FeeField: "registeredOfficeFee", Frequency: "Monthly", DefaultFee: "0",
		Description: heading("Registered Office Service") + `<br/><br/>
A refundable Security deposit @USD 2500 applies**. Refundable upon cessation of Registered office service.`,
	},
	{
		Flag: "includeNomineeDir", Group: GroupIncorporation, Part: PartNominee, Name: "Nominee director",
		FeeField: "nomineeDirectorFee", Frequency: "Monthly", DefaultFee: "0",
		Description: heading("Nominee Director Service") + `<br/>
A refundable Security deposit per nominee @USD 5000 applies*. Refundable upon cessation of Nominee Director Service<br/><br/>
Director's fee for attending a physical or recorded or live board meeting @USD300 per director per board meeting<br/><br/>
Every nominee director needs to be protected under a director's indemnity policy. Premium of indemnity bond to be charged
on actual basis. InCorp shall enter into a separate nominee directors' agreement at the time of engagement.<br/><br/>
To ensure the removal of a nominee director from registrations ***with various authorities where required, InCorp must be
notified at least three months in advance. Additionally, professional fees for this service will continue to be charged
until the removal is reflected by all relevant authorities as well as Bank &amp; new director is appointed in his place.`,
	},

	// C. Recurring compliance
	{
		Flag: "includeAdvanceTax", Group: GroupRecurring, Part: CategoryDirectTax, Name: "Advance tax",
		FeeField: "advanceTaxFee", FreqField: "advanceTaxFrequency", Frequency: "Quarterly", DefaultFee: "0",
		Description: `1) Advance tax Compliances • Quarterly calculations and payment`,
	},
	{
		Flag: "includeTDS", Group: GroupRecurring, Part: CategoryDirectTax, Name: "TDS compliances",
		FeeField: "tdsFee", FreqField: "tdsFrequency", Frequency: "Monthly/Quarterly", DefaultFee: "0",
		Description: `2) TDS compliances:<br/>
• Calculation and Payment of TDS<br/>
• Filing of TDS Returns<br/><br/>
(The above excludes cost of revisions of TDS returns)`,
	},
	{
		Flag: "includeIncomeTax", Group: GroupRecurring, Part: CategoryDirectTax, Name: "Annual income tax return",
		FeeField: "incomeTaxReturnFee", FreqField: "incomeTaxFrequency", Frequency: "Annual", DefaultFee: "0",
		Description: `3) Annual Income tax return<br/>
Computation and filing of Annual Income tax Return<br/><br/>
4) Statement of Financial Transactions (SFT) – Basic Reporting`,
	},
	{
		Flag: "includeGSTComp", Group: GroupRecurring, Part: CategoryIndirectTax, Name: "GST compliances",
		FeeField: "gstComplianceFee", FreqField: "gstFrequency", Frequency: "Monthly and Annual", DefaultFee: "0",
		Description: `1) GST Compliances:<br/>
• Calculations and payment of GST<br/>
• Filing of monthly GST Returns<br/><br/>
(The above excludes Annual returns of GST and revision of GST returns)`,
	},
	{
		Flag: "includeCompanyLaw", Group: GroupRecurring, Part: CategoryCompanyLaw, Name: "Company law compliances",
		FeeField: "companyLawFee", FreqField: "companyLawFrequency", Frequency: "Monthly", DefaultFee: "0",
		Description: `Company Law Compliances (Scope as per Annexure 1)<br/>
Assistance on conduction of virtual board meeting – USD 150 per board meeting`,
	},
	{
		Flag: "includeRBIFiling", Group: GroupRecurring, Part: CategoryForex, Name: "RBI annual filings",
		FeeField: "rbiFilingFee", FreqField: "rbiFilingFrequency", Frequency: "Annual", DefaultFee: "0",
		Description: `Annual Filings with Reserve bank of India`,
	},
	{
		Flag: "includeMasterFiling", Group: GroupRecurring, Part: CategoryForex, Name: "Master file (Form 3CEAA)",
		FeeField: "masterFilingFee", FreqField: "masterFilingFrequency", Frequency: "Annual", DefaultFee: "0",
		Description: `Annual Master Filing Form 3CEAA Part A (Basic Reporting)`,
	},
	{
		Flag: "includeAcctSetup", Group: GroupRecurring, Part: CategoryAccounting, Name: "Accounting software setup",
		FeeField: "accountingSetupFee", FreqField: "acctSetupFrequency", Frequency: "One time", DefaultFee: "0",
		Description: `Setup of accounting software<br/>
• Liaison with the software expert for the setup<br/>
• Ensure due configuration of the software with applicable laws<br/>
• Short tutorial on guidance with respect to use of accounting software`,
	},
	{
		Flag: "includeAcctMaint", Group: GroupRecurring, Part: CategoryAccounting, Name: "Accounting and bookkeeping",
		FeeField: "accountingMaintenanceFee", FreqField: "acctMaintFrequency", Frequency: "Monthly", DefaultFee: "200",
		PerMonth: true,
		Description: `Accounting and maintenance of books of accounts:<br/>
• Data entry in accounting software<br/>
• Weekly processing of Bank Reconciliation<br/>
• Weekly processing of Purchase invoices<br/>
• Maker access in bank account/preparing payments<br/>
• Weekly forwarding of open suppliers/customers<br/>
• Preparation of Monthly Profit &amp; loss Statement and Balance Sheet`,
		Tiers: &TierTable{
			Field:     "accountingEntries",
			LabelHead: "<b>No. of transactions per month</b>",
			FeeHead:   "<b>Fees per month (in USD)</b>",
			Defaults:  DefaultAccountingTiers,
		},
	},
	{
		Flag: "includeFinStmt", Group: GroupRecurring, Part: CategoryAccounting, Name: "Financial statements",
		FeeField: "financialStatementsFee", FreqField: "finStmtFrequency", Frequency: "Annual", DefaultFee: "0",
		Description: `• Preparation of the financial Statements as per the Indian accounting Standards<br/>
• Liaising with auditors for audit, compliance and related matters`,
	},
	{
		Flag: "includePayrollSetup", Group: GroupRecurring, Part: CategoryPayroll, Name: "Payroll setup",
		FeeField: "payrollSetupFee", FreqField: "payrollSetupFrequency", Frequency: "One time", DefaultFee: "0",
		Description: `Payroll Setup (Scope as per Annexure 2)`,
	},
	{
		Flag: "includeShopPOSH", Group: GroupRecurring, Part: CategoryPayroll, Name: "Shop registration and POSH policy",
		FeeField: "shopPOSHFee", FreqField: "shopPOSHFrequency", Frequency: "One time", DefaultFee: "0",
		Description: `1. Obtaining Shop and establishment registration under Karnataka Shop and establishment act<br/>
2. Drafting of POSH (Prevention of Sexual Harassment at Workplace) policy`,
	},
	{
		Flag: "includePayrollProc", Group: GroupRecurring, Part: CategoryPayroll, Name: "Payroll processing",
		FeeField: "payrollProcessingFee", FreqField: "payrollProcFrequency", Frequency: "Monthly", DefaultFee: "125",
		PerMonth:    true,
		Description: `Payroll Processing** (Scope as per Annexure 3)`,
		Tiers: &TierTable{
			Field:     "payrollEntries",
			LabelHead: "<b>No of employees</b>",
			FeeHead:   "<b>Amount in USD per month</b>",
			Defaults:  DefaultPayrollTiers,
		},
	},
	{
		Flag: "includeLabourLaw", Group: GroupRecurring, Part: CategoryPayroll, Name: "Labour law compliances",
		FeeField: "labourLawFee", FreqField: "labourLawFrequency", Frequency: "Monthly", DefaultFee: "0",
		Description: `Labour Law Compliances • Payments and return filing under:<br/>
• Provident Fund<br/>
• Employees State Insurance Corporation<br/>
• Profession Tax<br/>
• Labor Welfare Fund<br/>
(for employees upto 20 – fixed fee)`,
	},
	{
		Flag: "includeAnnualReturns", Group: GroupRecurring, Part: CategoryPayroll, Name: "Labour law annual returns",
		FeeField: "annualReturnsFee", FreqField: "annualReturnsFrequency", Frequency: "Annual", DefaultFee: "0",
		Description: `Annual Return under the following labor law compliances:<br/>
• Sexual Harassment of Women at Workplace Act, 2013<br/>
• Shop and Establishment Act<br/>
• Maternity Act<br/>
• Gratuity Act`,
	},

	// D. Transfer pricing
	{
		Flag: "includeBenchmarking", Group: GroupTransferPricing, Name: "Benchmarking",
		FeeField: "benchmarkingFee", Frequency: "One-time", DefaultFee: "0",
		Description: `1. Assistance in conducting Functional, Asset and Risk Analysis of the proposed transaction to be entered
between related parties.<br/>
2. Assisting in arriving at the arm's length price or margin range that may be applicable to the proposed transaction.
Arm's Length is price that Indian &lt;company name&gt; would have charged any other non related party/clients globally
for similar services. This is a legal requirement from Indian Income tax to ensure Indian revenue department is not a
loss of tax revenue.<br/>
Preparation of final benchmarking report*.`,
	},
	{
		Flag: "includeIntercompany", Group: GroupTransferPricing, Name: "Inter-company agreement",
		FeeField: "intercompanyAgreementFee", Frequency: "One-time", DefaultFee: "0",
		Description: `Drafting and finalizing of Inter-company service agreement covering detailed description of service to be
provided, components to be included while calculating cost of services, Invoicing period, Receivable cycle, withholding,
ownership rights, effective date of agreement, indemnity etc. in compliance with the Transfer Pricing regulations defined
under Income tax laws and other applicable Indian laws`,
	},
}
