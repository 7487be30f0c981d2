package pipeline

import "github.com/psarda/clauselens/internal/match"

// Built-in standard contract templates for gap comparison. Sections use the
// "## Heading" format accepted by match.ParseTemplate so custom templates can
// be dropped in from plain text files with the same layout.

var standardTemplates = map[string]string{
	"Employment Agreement": `## Parties
This Employment Agreement is made between the Employer and the Employee.

## Compensation
The Employee shall receive a monthly salary payable by the 7th of each month.
All statutory deductions including provident fund and professional tax shall apply.

## Termination
Either party may terminate this agreement with 30 days written notice.
Termination for cause requires documented reasons and an opportunity to respond.

## Confidentiality
The Employee shall keep all business information confidential during and after employment.

## Jurisdiction
This agreement is governed by Indian law and subject to the courts of the city of employment.`,

	"Vendor Agreement": `## Parties
This Vendor Agreement is made between the Buyer and the Vendor.

## Supply of Goods
The Vendor shall supply goods conforming to the agreed specifications and quality standards.

## Payment
Payment shall be made within 30 days of delivery and receipt of a valid invoice.
GST shall be charged as applicable under Indian law.

## Termination
Either party may terminate with 30 days written notice for convenience.

## Jurisdiction
Disputes shall be subject to the exclusive jurisdiction of Indian courts.`,

	"Lease Agreement": `## Parties
This Lease Agreement is made between the Landlord and the Tenant.

## Premises and Rent
The Landlord leases the premises to the Tenant at the agreed monthly rent.
A security deposit shall be refunded within 30 days of vacating the premises.

## Maintenance
The Landlord is responsible for structural repairs; the Tenant for day-to-day upkeep.

## Termination
Either party may terminate with 60 days written notice.

## Jurisdiction
This agreement is governed by Indian law including applicable state rent control legislation.`,

	"Partnership Deed": `## Parties
This Partnership Deed is made between the partners named herein.

## Capital and Profit Sharing
Each partner shall contribute capital as agreed and share profits in the agreed ratio.

## Duties
Each partner shall devote reasonable time and attention to the partnership business.

## Retirement and Dissolution
A partner may retire with 90 days written notice to the other partners.
Dissolution shall follow the Indian Partnership Act, 1932.

## Jurisdiction
This deed is governed by Indian law.`,

	"Service Agreement": `## Parties
This Service Agreement is made between the Client and the Service Provider.

## Scope of Work
The Service Provider shall deliver the services and deliverables described in the schedule.

## Payment
Fees shall be paid within 30 days of invoice. Late payments incur interest at 1.5% per month.

## Confidentiality
Each party shall protect the other's confidential information.

## Termination
Either party may terminate with 30 days written notice. Work completed shall be paid for.

## Jurisdiction
Disputes shall be resolved under Indian law in the courts of the agreed city.`,
}

// StandardTemplate returns the built-in template for a contract type
func StandardTemplate(contractType string) (match.Template, bool) {
	content, ok := standardTemplates[contractType]
	if !ok {
		return match.Template{}, false
	}
	return match.ParseTemplate(contractType, content), true
}

// TemplateContractTypes lists contract types with a built-in template, in a
// stable order for display
func TemplateContractTypes() []string {
	return []string{
		"Employment Agreement",
		"Vendor Agreement",
		"Lease Agreement",
		"Partnership Deed",
		"Service Agreement",
	}
}
