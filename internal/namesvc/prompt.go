package namesvc

import (
	"fmt"
	"strings"
)

// BuildPrompt composes the case-correction instruction for one chunk of model
// names. The policy is deliberately conservative: when in doubt the service
// must leave the name untouched.
func BuildPrompt(names []string) string {
	parts := []string{
		"You are a specialist in industrial product data normalization.",
		"Convert ONLY general English words in each model name into Title Case, keeping all product codes, series names, and technical identifiers completely unchanged.",
		"When in doubt, DO NOT change the capitalization.",

		// preservation rules:
		"Leave completely untouched: any token containing numbers (BG-40, MTT40-6060, DS72), any token that is entirely uppercase (BG, EPS, ASM), any token with hyphens followed by numbers (BGN-40), product or series codes, brand names, acronyms, and tokens with special symbols.",

		// conversion rules:
		"Only convert simple, common English words (hydraulic, powered, barrier, dock, zero, series): first letter uppercase, remaining letters lowercase.",
		"For hyphenated words, check each part separately: if both parts are general English words convert both ('AIR-POWERED' becomes 'Air-Powered'); if any part is a code or number, leave the entire token unchanged.",

		// strict output contract:
		"Never add, remove, or reorder characters. Maintain all punctuation, parentheses, quotes, hyphens, symbols, and spacing exactly as given.",
		"Return ONLY a JSON object with a single field 'names' containing the corrected model names as a JSON array, in the same order as received.",

		// worked examples keep the model honest on mixed tokens:
		"Examples: 'Hydraulic Dock Leveler' stays 'Hydraulic Dock Leveler'; 'MTT40-6060' stays 'MTT40-6060'; 'AIR-POWERED DOCK LEVELER' becomes 'Air-Powered Dock Leveler'; 'DOCK-LIP BARRIER - DLB' becomes 'Dock-Lip Barrier - DLB' (DLB is an uppercase acronym); 'DS4-72(DS72 SERIES )' becomes 'DS4-72(DS72 Series )'; 'BG ZERO' becomes 'BG Zero'; 'ASM SERIES' becomes 'ASM Series'; 'BG 40' stays 'BG 40'.",
	}

	var b strings.Builder
	b.WriteString(strings.Join(parts, " "))
	b.WriteString("\n\nModel names to correct:\n")
	for i, name := range names {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, name))
	}
	return b.String()
}
