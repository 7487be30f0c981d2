package advisor

// SME-friendly template clauses surfaced alongside risky clauses so a
// business owner has concrete alternative wording to negotiate from.

var englishTemplates = map[string]string{
	"Indemnity Clause": `**SME-Friendly Indemnity Clause:**
Each party shall indemnify the other only for direct losses caused by their gross negligence or willful misconduct. The total indemnity shall not exceed 1.5 times the contract value or ₹5,00,000, whichever is lower. This clause survives termination for 2 years.`,

	"Termination Clause": `**SME-Friendly Termination Clause:**
Either party may terminate this agreement with 30 days written notice. For material breach, 15 days notice to cure is required. Upon termination, each party shall return all confidential information. Payments due for services already rendered shall be made within 15 days.`,

	"Jurisdiction Clause": `**SME-Friendly Jurisdiction Clause:**
This agreement shall be governed by Indian laws. Any disputes shall be subject to the exclusive jurisdiction of courts in [City, State], India. Arbitration, if any, shall be conducted in India under the Arbitration and Conciliation Act, 1996.`,

	"Confidentiality Clause": `**SME-Friendly Confidentiality Clause:**
Confidential Information means information marked as confidential. The Receiving Party shall protect it using reasonable care for 3 years after termination. Information that becomes public through no fault of Receiver is not confidential.`,

	"Payment Clause": `**SME-Friendly Payment Clause:**
Payment of ₹[Amount] shall be made within 30 days of receiving a proper invoice. Late payments incur interest at 1.5% per month. All disputes regarding invoices must be raised within 15 days.`,
}

var hindiTemplates = map[string]string{
	"Confidentiality Clause": `गोपनीयता खंड

1. गोपनीय जानकारी में वह जानकारी शामिल है जो गोपनीय के रूप में चिह्नित है।
2. प्राप्त करने वाला पक्ष गोपनीय जानकारी की रक्षा करेगा।
3. सार्वजनिक रूप से उपलब्ध जानकारी गोपनीय नहीं है।
4. यह दायित्व समाप्ति के बाद 3 वर्षों तक प्रभावी रहेगा।
5. यह समझौता भारतीय कानून के अधीन है।`,

	"Payment Clause": `भुगतान खंड

1. भुगतान राशि: ₹[राशि]
2. भुगतान अवधि: इनवॉइस प्राप्ति के 30 दिनों के भीतर
3. विलंब शुल्क: 1.5% प्रति माह
4. भुगतान विधि: बैंक हस्तांतरण
5. कर: सभी राशियां लागू करों के अतिरिक्त हैं`,
}

// SuggestTemplate returns an SME-friendly template clause for a clause
// type, or "" when none exists for the type/language pair
func SuggestTemplate(clauseType, language string) string {
	if language == "hi" {
		if tpl, ok := hindiTemplates[clauseType]; ok {
			return tpl
		}
		return ""
	}
	return englishTemplates[clauseType]
}

// TemplateTypes lists the clause types with an English template, in a
// stable order for display
func TemplateTypes() []string {
	return []string{
		"Indemnity Clause",
		"Termination Clause",
		"Jurisdiction Clause",
		"Confidentiality Clause",
		"Payment Clause",
	}
}
