// Copyright Zainab Saad, 2026. All rights reserved.

// Package redact masks account numbers, contact details, and monetary figures
// in free text before it reaches the knowledge base.
package redact

import "github.com/dlclark/regexp2"

// A rule pairs a compiled pattern with the placeholder that replaces every
// match. Patterns use regexp2 because the amount rule needs a lookahead to
// leave percentage figures for the rate rule.
type rule struct {
	re          *regexp2.Regexp
	placeholder string
}

// rules run in declaration order: card-style account groups before bare digit
// runs, amounts before rates. Reordering changes which placeholder wins when
// patterns overlap.
var rules = []rule{
	{regexp2.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`, regexp2.IgnoreCase), "[REDACTED_ACCOUNT]"},
	{regexp2.MustCompile(`\b\d{9,18}\b`, regexp2.IgnoreCase), "[REDACTED_NUMBER]"},
	{regexp2.MustCompile(`\b(?:\+?\d{1,3}[-\.\s]?)?\(?\d{3}\)?[-\.\s]?\d{3}[-\.\s]?\d{4}\b`, regexp2.IgnoreCase), "[REDACTED_PHONE]"},
	{regexp2.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`, regexp2.IgnoreCase), "[REDACTED_EMAIL]"},
	{regexp2.MustCompile(`\b\d{1,3}(?:,\d{3})*(?:\.\d{2})?\b(?!%)`, regexp2.IgnoreCase), "[REDACTED_AMOUNT]"},
	{regexp2.MustCompile(`\b(?:visa|mastercard|amex)\b\s*\d{4}`, regexp2.IgnoreCase), "[REDACTED_CARD]"},
	{regexp2.MustCompile(`\b[a-z]{2}\d{5,10}\b`, regexp2.IgnoreCase), "[REDACTED_REFERENCE]"},
	{regexp2.MustCompile(`\b\d+\.\d{2}%`, regexp2.IgnoreCase), "[REDACTED_RATE]"},
}

// Apply replaces every match of every rule with its placeholder. Rules are
// applied in order to the output of the previous rule, so a later pattern sees
// placeholders, not the text they replaced. Placeholders contain no digits,
// which makes Apply idempotent.
func Apply(text string) string {
	out := text
	for _, r := range rules {
		// Replace errors only on match timeout, and no timeout is set.
		if replaced, err := r.re.Replace(out, r.placeholder, -1, -1); err == nil {
			out = replaced
		}
	}
	return out
}
