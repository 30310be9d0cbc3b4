package parser

import "strings"

// Classify determines the intent of a user message and extracts its
// parameters. It always returns exactly one ParsedCommand; the fallback is
// the chat intent at full confidence, so a rule only takes over when its
// score strictly beats the current best, or when it is a high-priority rule
// displacing the chat default. That bias is deliberate: ambiguous messages
// go to conversation, not to commands.
func (p *Parser) Classify(message string) ParsedCommand {
	best := ParsedCommand{
		Intent:       IntentChat,
		Confidence:   chatConfidence,
		OriginalText: message,
	}

	lower := strings.ToLower(message)

	for _, rule := range p.rules {
		if !containsAny(lower, rule.Keywords) {
			continue
		}

		for _, re := range rule.Regexes {
			match := re.FindStringSubmatch(message)
			if match == nil {
				continue
			}

			conf := scoreConfidence(message)
			if conf > best.Confidence ||
				(best.Intent == IntentChat && rule.Priority > chatTiePriority) {
				best = ParsedCommand{
					Intent:       rule.Intent,
					Confidence:   conf,
					Parameters:   p.Extract(rule.Intent, match, message),
					OriginalText: message,
				}
			}

			// First matching regex wins within a rule; lower-priority
			// rules are still scanned and can overwrite on a strictly
			// higher score.
			break
		}
	}

	return best
}

// scoreConfidence computes the syntactic confidence for a matched message.
// The score depends only on the message text, never on the rule.
func scoreConfidence(message string) float64 {
	conf := confidenceBase
	lower := strings.ToLower(message)

	if strings.Contains(lower, "task") || reTaskNumber.MatchString(message) {
		conf += confidenceTaskBonus
	}

	for _, verb := range leadingVerbs {
		if strings.HasPrefix(lower, verb) {
			conf += confidenceVerbBonus
			break
		}
	}

	if len(message) > longMessageLen {
		conf -= confidenceLongPenalty
	}
	if len(message) < shortMessageLen {
		conf += confidenceShortBonus
	}

	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
