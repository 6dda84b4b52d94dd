package mail

import (
	"strings"

	"github.com/ginny-app/ginny-server/internal/parser"
)

// subjectKeywords are the transaction-indicating subject terms, accented and
// unaccented spellings both, since banks are inconsistent about accents.
var subjectKeywords = []string{
	"transaccion",
	"transacción",
	"compra",
	"retiro",
	"deposito",
	"depósito",
	"transferencia",
	"pago",
	"notificacion",
	"notificación",
}

// BuildBankQuery assembles the mailbox search query: a boolean OR of known
// bank sender fragments and transaction subject keywords.
func BuildBankQuery() string {
	fragments := parser.BankFragments()
	senders := make([]string, len(fragments))
	for i, fragment := range fragments {
		senders[i] = "from:" + fragment
	}

	var query strings.Builder
	query.WriteString("(")
	query.WriteString(strings.Join(senders, " OR "))
	query.WriteString(") OR subject:(")
	query.WriteString(strings.Join(subjectKeywords, " OR "))
	query.WriteString(")")
	return query.String()
}
