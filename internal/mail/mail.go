// Package mail fetches candidate bank-notification emails from the user's
// mailbox. The parsing of those emails lives in internal/parser; this package
// only deals with transport: queries, message retrieval, and decoding.
package mail

import "context"

// RawEmail is one fetched message, decoded and ready for parsing.
type RawEmail struct {
	ID      string
	Subject string
	From    string
	Date    string
	Body    string
	Snippet string
}

// Profile identifies the mailbox owner.
type Profile struct {
	Email string
}

// Source supplies candidate bank emails for a mailbox.
//
//go:generate mockery --name Source --output mock_Source.go
type Source interface {
	// Profile returns the mailbox owner. An error means the mailbox is
	// unreachable or the session is invalid.
	Profile(ctx context.Context) (Profile, error)

	// FetchBankEmails returns up to maxResults candidate emails matching
	// the bank-notification query, in mailbox result order. Individual
	// messages that fail to download are skipped, not fatal.
	FetchBankEmails(ctx context.Context, maxResults int) ([]RawEmail, error)
}
