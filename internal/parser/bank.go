package parser

import (
	"strings"
	"unicode"
)

// UnknownBank is returned when no registry fragment matches.
const UnknownBank = "Unknown Bank"

// bankFragments is the sender/body fragment registry. Order is a fixed
// priority list: the first fragment found wins, so broader fragments sit
// after the banks they could shadow.
var bankFragments = []string{
	"banreservas",
	"popular",
	"bhd",
	"scotiabank",
	"banesco",
	"santa cruz",
	"promerica",
	"bdi",
	"ademi",
	"lafise",
	"caribe",
	"vimenca",
	"banco múltiple",
}

// bankDisplayOverrides holds the banks whose market name is not just the
// capitalized fragment.
var bankDisplayOverrides = map[string]string{
	"bhd":         "BHD León",
	"popular":     "Banco Popular",
	"banreservas": "Banreservas",
}

// BankFragments returns the registry in priority order, for callers that
// build mailbox search queries from it.
func BankFragments() []string {
	return append([]string(nil), bankFragments...)
}

// IdentifyBank resolves a canonical bank display name from the sender
// address and the combined lower-cased email text. The sender is checked
// before the body for each fragment.
func IdentifyBank(from, content string) string {
	sender := strings.ToLower(from)

	for _, fragment := range bankFragments {
		if !strings.Contains(sender, fragment) && !strings.Contains(content, fragment) {
			continue
		}
		if display, ok := bankDisplayOverrides[fragment]; ok {
			return display
		}
		return capitalizeFirst(fragment)
	}

	return UnknownBank
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
