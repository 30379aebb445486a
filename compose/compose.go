// Package compose turns a form submission into the ordered block sequence of
// a proposal.
//
// Select decides which optional sections appear and resolves their fees;
// Compose wraps them in the fixed skeleton of cover, letter, scope, the four
// fee groupings and their notes. Composition never looks at rendered output.
package compose

import (
	"fmt"
	"strings"
	"time"

	"github.com/lvillar/proposal/content"
	"github.com/lvillar/proposal/fee"
	"github.com/lvillar/proposal/submission"
)

// DefaultSignatory closes the client letter when no signatory is configured.
var DefaultSignatory = []string{
	"CA Bansi Shah",
	"Lead – International clients group",
	"InCorp Advisory Services Pvt Ltd",
}

// Options controls the parts of a proposal that do not come from the form.
type Options struct {
	Styles     Stylesheet
	CoverImage string   // full-bleed cover image; empty for a text cover
	Signatory  []string // letter signature lines
	Reference  string   // QR payload under the signature; empty omits it
	Now        func() time.Time
}

// Flow is a composed proposal.
type Flow struct {
	Blocks  []content.Block
	Entries []Entry

	// Totals is the fold of group C, shown in its two summary rows.
	Totals fee.Totals
	// TransferPricing is the fold of group D.
	TransferPricing fee.Totals

	Warnings []string
}

type builder struct {
	st     Stylesheet
	blocks []content.Block
}

func (b *builder) add(blocks ...content.Block) { b.blocks = append(b.blocks, blocks...) }

func (b *builder) p(style content.ParagraphStyle, markup string) {
	b.add(content.P(style, markup))
}

func (b *builder) gap(h float64) { b.add(content.Gap(h)) }

// Compose builds the proposal for form.
func Compose(form submission.Form, opts Options) Flow {
	if opts.Styles.Body.Font.Size == 0 {
		opts.Styles = DefaultStylesheet()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.Signatory) == 0 {
		opts.Signatory = DefaultSignatory
	}

	entries := Select(form)
	f := Flow{
		Entries:         entries,
		Totals:          GroupTotals(entries, GroupRecurring),
		TransferPricing: GroupTotals(entries, GroupTransferPricing),
	}
	for _, label := range f.Totals.Unclassified {
		f.Warnings = append(f.Warnings,
			fmt.Sprintf("frequency %q is not one-time, monthly, quarterly or annual; its fee is left out of the totals", label))
	}

	b := &builder{st: opts.Styles}
	b.cover(form, opts)
	b.add(content.PageBreak{})
	if w := b.letter(form, opts); w != "" {
		f.Warnings = append(f.Warnings, w)
	}
	b.add(content.PageBreak{})
	b.scope(form)
	b.handover(form, Filter(entries, GroupHandover, ""))
	b.add(content.PageBreak{})
	b.incorporation(entries)
	b.add(content.PageBreak{})
	b.recurring(Filter(entries, GroupRecurring, ""), f.Totals)
	b.add(content.PageBreak{})
	b.transferPricing(Filter(entries, GroupTransferPricing, ""), f.TransferPricing)

	f.Blocks = b.blocks
	return f
}

func (b *builder) cover(form submission.Form, opts Options) {
	company := form.String("clientCompany", "ABC India Pvt Ltd")
	if opts.CoverImage != "" {
		b.add(content.CoverImage{
			Path:     opts.CoverImage,
			Overlay:  company,
			Font:     content.FontSpec{Family: FamilySans, Size: 20},
			Color:    content.White,
			OverlayY: Inch,
		})
		return
	}
	b.gap(1.5 * Inch)
	b.p(b.st.Tagline, "LEADING ASIA PACIFIC CORPORATE SOLUTIONS PROVIDER")
	b.gap(0.3 * Inch)
	b.p(b.st.Title, "INCORP GROUP PROPOSAL")
	b.gap(0.5 * Inch)
	b.p(b.st.Company, content.Escape(company))
}

// FormatDate renders a YYYY-MM-DD proposal date as "DD. MM. YYYY". Other
// input is returned unchanged with ok set to false.
func FormatDate(s string) (string, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s, false
	}
	return t.Format("02. 01. 2006"), true
}

// Salutation returns the first word of a client name, or "XXXX" when the
// name is blank.
func Salutation(name string) string {
	if w := strings.Fields(name); len(w) > 0 {
		return w[0]
	}
	return "XXXX"
}

const letterBody = `We are pleased to be presenting our proposal to you.<br/><br/>
Our team of experienced professionals work very closely with clients on various corporate, accounting, compliance and
governance matter and identify the unique requirements of individual organizations. As a strong believer of long-term
partnerships, we are committed to providing tailored solutions that not only meet our clients' objectives, but also giving
them a peace of mind to focus on their core businesses.<br/><br/>
The following pages outline our services tailor made to you and we trust that our proposal meets your expectations. We
are excited to work with you and look forward to a long and mutually beneficial working relationship with you and the
company.<br/><br/><br/>
Yours Sincerely and on behalf of In.Corp,<br/><br/><br/>`

func (b *builder) letter(form submission.Form, opts Options) (warning string) {
	raw := form.String("proposalDate", opts.Now().Format("2006-01-02"))
	date, ok := FormatDate(raw)
	if !ok {
		warning = fmt.Sprintf("proposal date %q is not YYYY-MM-DD; printed as entered", raw)
	}

	b.p(b.st.Body, content.Escape(date))
	b.gap(12)
	b.p(b.st.Body, content.Escape(form.String("clientName", "Client Name")))
	b.p(b.st.Body, content.Escape(form.String("clientDesignation", "Client Designation")))
	b.p(b.st.Body, content.Escape(form.String("clientCompany", "Client Company Name")))
	b.p(b.st.Body, content.Escape(form.String("clientAddress", "Client Company Address")))
	b.gap(20)
	b.p(b.st.Body, fmt.Sprintf("Dear %s,", content.Escape(Salutation(form.String("clientName", "")))))
	b.gap(12)
	b.p(b.st.Strong, `<b><font color="#C00000">RE: FEE PROPOSAL</font></b>`)
	b.gap(8)
	b.p(b.st.Body, letterBody)

	lines := make([]string, len(opts.Signatory))
	for i, l := range opts.Signatory {
		lines[i] = "<b>" + content.Escape(l) + "</b>"
	}
	b.p(b.st.Strong, strings.Join(lines, "<br/>"))
	if opts.Reference != "" {
		b.gap(12)
		b.add(content.QRCode{Data: opts.Reference, Size: 0.9 * Inch})
	}
	return warning
}

const (
	defaultScope = "[NOTE TO INCORP STAFF - STAFF TO DESCRIBE IN BULLET POINTS THE ENTIRE SCOPE OF WORKS " +
		"REQUIRED BY THE CLIENT/SERVICES TO BE RENDERED BY US + CLIENT PROFILE]"

	feesIntro = `This section outlines the estimated fees for InCorp's services of your company. Our fee structure
includes initial setup fees, as well as ongoing charges that may be billed monthly, quarterly, or annually. Additionally,
fees may be incurred based on the time spent on specific tasks or on a per-instance basis. For any additional services not
encompassed by this proposal that may incur, additional charges, we will receive your approval before any work commences.
Please note that all fees mentioned are in US Dollars, exclusive of the prevailing Goods and Services Tax (GST) / Value
Added Tax (VAT).`

	pastCompliance = `Any fees for rectification (or) completion of pending past compliances shall attract additional
fees and we shall seek your approval prior to commencement of that work.`
)

func (b *builder) scope(form submission.Form) {
	b.p(b.st.Heading1, "SCOPE OF SERVICES")
	b.gap(1)
	b.p(b.st.Body, content.Sanitize(form.String("scopeOfServices", defaultScope)))
	b.gap(12)
	b.p(b.st.Heading1, "FEES")
	b.p(b.st.Body, feesIntro)
	b.gap(6)
}

func notes(items ...string) string {
	var s strings.Builder
	s.WriteString(`<b><u><font color="#002060">Note:</font></u></b><br/><br/>`)
	for _, it := range items {
		s.WriteString("• ")
		s.WriteString(it)
		s.WriteString("<br/>")
	}
	return s.String()
}

func hourlyRates(lead string) string {
	return "<b><i>" + lead + "</i></b><br/><br/>" +
		"<b><i>For Partner: USD 300 per Hour</i></b><br/><br/>" +
		"<b><i>For Associates: USD 200 per Hour</i></b>"
}

const (
	noteGST       = "All fees quoted above exclude 18% GST."
	noteAdvance   = "Advance of 100% of the above selected option."
	noteOutPocket = `Professional fees exclude all out-of-pocket expenses like filing fees, courier expenses, apostilling
&amp; notary cost to any authorities/departments, statutory fees payable to Registrar of companies (ROC) towards
incorporation etc. other than those mentioned above.`
	ratesLead = "* Any other services not specifically quoted above shall be chargeable as under:"
)

func (b *builder) handover(form submission.Form, entries []Entry) {
	b.p(b.st.Heading2, GroupHandover.Title())
	b.gap(1)
	b.p(b.st.Body, fmt.Sprintf(`Since the company has been in existence since %s, we shall need to undertake a handover
of the current financial, secretarial, payroll and other records of the company from current service provider.`,
		content.Escape(form.String("companyYear", "YYYY"))))
	b.gap(10)
	if len(entries) > 0 {
		b.add(handoverTable(b.st, entries))
		b.gap(10)
		b.p(b.st.Small, "<i><b>*"+pastCompliance+"</b></i>")
		b.gap(10)
	}
	b.p(b.st.Body, notes(
		"All fees quoted above exclude 18% GST",
		"Professional fees exclude any fees towards regularisation of past non compliances.",
		noteAdvance,
	))
	b.p(b.st.Small, hourlyRates("* Any other services not specifically quoted above and not specifically agreed separately shall be chargeable as under:"))
}

func (b *builder) incorporation(entries []Entry) {
	b.p(b.st.Heading2, GroupIncorporation.Title())
	b.gap(2)
	if inc := Filter(entries, GroupIncorporation, PartIncorporation); len(inc) > 0 {
		b.add(serviceTable(b.st, inc, "One-time Fee", 8))
		b.gap(13)
	}
	b.p(b.st.Body, notes(
		noteGST,
		noteOutPocket,
		noteAdvance,
		`On finalization of shareholding structure, we shall be able to guide on compliances needed for issuance of
share certificates and shall share a separate fee quote for the same.`,
	))
	b.p(b.st.Small, hourlyRates("* Any other services not specifically quoted above and not specifically agreed separately shall be chargeable as under"))
	b.gap(8)

	b.p(b.st.Heading2, "Optional registrations required post incorporation (One-time)")
	b.gap(3)
	if opt := Filter(entries, GroupIncorporation, PartOptional); len(opt) > 0 {
		b.add(serviceTable(b.st, opt, "Fees (In USD)", 8))
		b.gap(10)
	}
	b.p(b.st.Small, `<i><font color="#C00000">*For every new director's professional tax no., there shall be additional cost of $100 per director</font><br/>
<font color="#C00000">*Digital signature certificate (DSC) token can be obtained at a cost of USD 200 per applicant.</font></i>`)
	b.gap(20)
	b.p(b.st.Body, notes(noteGST, noteOutPocket, noteAdvance))
	b.p(b.st.Small, hourlyRates("*Any other services not specifically quoted above and not specifically agreed separately shall be chargeable as under"))
	b.gap(4)

	b.p(b.st.Heading2, "Nominee Director and Registered Office Address Service")
	b.gap(4)
	if nom := Filter(entries, GroupIncorporation, PartNominee); len(nom) > 0 {
		b.add(serviceTable(b.st, nom, "Monthly Fee(in USD)", 5))
		b.p(b.st.Small, `<b><i>*Failure to engage InCorp's services for regular compliances of the company post the setup
such as tax, secretarial, FEMA etc. shall result in forfeiture of the security deposit received against nominee director
and registered office services.<br/><br/>
**`+pastCompliance+`<br/><br/>
*** The Nominee Director shall not sign any return, forms or documents relating to any statutory filing nor will be
appointed as the authorized signatory to any of the bank accounts of the entity or under GST, Income Tax any other
government portal. The Company may consider appointing one of its key managerial personnel as the authorised signatory
across all government portals</i></b>`)
	}
	b.gap(10)
	b.p(b.st.Body, notes(
		noteGST,
		`The Nominee Director will not be involved in day-to-day affairs / management of the Company. He/She shall not
sign any return, forms or documents relating to any statutory filing.`,
		`The service of Registered office &amp; Nominee director is offered on discretionary basis only for temporary
basis of 6 months. Such services are provided only in case of successful completion of Internal Customer Due diligence at
InCorp and formal engagement of Incorp for all the compliances (tax, secretarial, FEMA etc.) post incorporation of the
company for the regular maintenance of the company.`,
		`Failure to engage InCorp's services for regular compliances of the company post the setup such as tax,
secretarial, FEMA etc. shall result in forfeiture of the security deposit received against registered office and nominee
director services.`,
		noteOutPocket,
		noteAdvance,
	))
	b.p(b.st.Small, hourlyRates(ratesLead))
}

func (b *builder) recurring(entries []Entry, totals fee.Totals) {
	b.p(b.st.Heading2, GroupRecurring.Title())
	b.gap(5)
	b.p(b.st.Small, `The below quotation is our base fees for first year of business with limited volume of
transactions and may change depending upon volume of work and nature of transactions:`)
	b.gap(12)
	if len(entries) > 0 {
		b.add(recurringTable(b.st, entries, totals))
	}
	b.gap(10)
	b.p(b.st.Small, "<i>*The above quotation fee is for approx.20 transactions per month</i>")
	b.gap(4)
	b.p(b.st.Body, `<i>InCorp's empanelled audit partners can offer the services of statutory audit (applicable to
all), tax audit (applicable on if Turnover exceeds Rs. 100 Mn) and GST audit services (If Turnover exceeds Rs. 50 Mn) and
transfer pricing reporting &amp; audit (applicable for companies having intercompany transactions). The quotes for the
same can be provided separately.</i><br/><br/>
<i>^Audit partner firms shall be able to assist on that front. The estimated statutory fee quote for the first FY shall
be between USD 2500 TO USD 3500. The auditor shall be able to provide the final fee quote closer to year end depending on
the nature and complexity of transactions.</i>`)
	b.gap(4)
	b.p(b.st.Body, notes(
		noteGST,
		"Professional fees exclude all out-of-pocket expenses like filing fees, courier expenses, government/statutory fees etc.",
		noteAdvance,
	))
	b.p(b.st.Small, hourlyRates(ratesLead))
	b.gap(15)
}

func (b *builder) transferPricing(entries []Entry, total fee.Totals) {
	b.p(b.st.Heading2, GroupTransferPricing.Title())
	b.gap(4)
	if len(entries) > 0 {
		b.add(transferPricingTable(b.st, entries, total))
		b.gap(10)
		b.p(b.st.Body, `<i>*Please note that the above benchmarking report will not be transfer pricing
documentation as required to be maintained under transfer pricing regulations. InCorp's empanelled audit partners can
assist with the transfer pricing reporting &amp; audit (applicable for companies having intercompany transactions). The
quotes for the same can be provided separately</i>`)
	}
	b.gap(10)
	b.p(b.st.Body, notes(noteGST, "Professional fees exclude all out-of-pocket expenses.", noteAdvance)+
		"<br/>"+hourlyRates(ratesLead))
	b.gap(13)
	b.p(b.st.Body, `<i>^ InCorp's empanelled audit partners can assist with the transfer pricing reporting &amp; audit
(applicable for companies having intercompany transactions). The quotes for the same can be provided separately.</i>`)
}
