package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const gmailUserID = "me"

// GmailSource fetches bank emails over the Gmail API.
type GmailSource struct {
	service *gmail.Service
}

var _ Source = (*GmailSource)(nil)

// NewGmailSource builds a Gmail-backed Source. Credentials come from the
// injected token source; construction does not validate them, the first call
// does.
func NewGmailSource(ctx context.Context, tokenSource oauth2.TokenSource) (*GmailSource, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("gmail.NewService: %w", err)
	}
	return &GmailSource{service: service}, nil
}

// Profile returns the mailbox owner's address.
func (s *GmailSource) Profile(ctx context.Context) (Profile, error) {
	profile, err := s.service.Users.GetProfile(gmailUserID).Context(ctx).Do()
	if err != nil {
		return Profile{}, fmt.Errorf("gmail profile: %w", err)
	}
	return Profile{Email: profile.EmailAddress}, nil
}

// FetchBankEmails lists candidate messages and downloads each in full.
// A failed message download is logged and skipped; a failed list aborts.
func (s *GmailSource) FetchBankEmails(ctx context.Context, maxResults int) ([]RawEmail, error) {
	list, err := s.service.Users.Messages.List(gmailUserID).
		Q(BuildBankQuery()).
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("gmail list messages: %w", err)
	}

	emails := make([]RawEmail, 0, len(list.Messages))
	for _, ref := range list.Messages {
		message, err := s.service.Users.Messages.Get(gmailUserID, ref.Id).
			Format("full").
			Context(ctx).
			Do()
		if err != nil {
			logrus.WithError(err).WithField("messageID", ref.Id).Warn("GmailSource.FetchBankEmails.skipping message")
			continue
		}
		emails = append(emails, messageToRawEmail(message))
	}

	return emails, nil
}

// messageToRawEmail flattens a Gmail message into a RawEmail: headers of
// interest, the decoded body (top-level or first text/plain part), and the
// API snippet.
func messageToRawEmail(message *gmail.Message) RawEmail {
	email := RawEmail{
		ID:      message.Id,
		Snippet: message.Snippet,
	}

	if message.Payload == nil {
		return email
	}

	for _, header := range message.Payload.Headers {
		switch strings.ToLower(header.Name) {
		case "subject":
			email.Subject = header.Value
		case "from":
			email.From = header.Value
		case "date":
			email.Date = header.Value
		}
	}

	email.Body = extractBody(message.Payload)
	return email
}

func extractBody(payload *gmail.MessagePart) string {
	if payload.Body != nil && payload.Body.Data != "" {
		return decodeBase64URL(payload.Body.Data)
	}

	for _, part := range payload.Parts {
		if part.MimeType != "text/plain" {
			continue
		}
		if part.Body != nil && part.Body.Data != "" {
			return decodeBase64URL(part.Body.Data)
		}
	}

	return ""
}

// decodeBase64URL handles Gmail's URL-safe base64, padded or not. Undecodable
// data yields an empty body rather than an error: the snippet still gives the
// parser something to work with.
func decodeBase64URL(data string) string {
	if decoded, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	if decoded, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	return ""
}
