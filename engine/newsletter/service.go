package newsletter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/aicopilotvisual/aicopilot-visual/pkg/config"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/logger"
	"github.com/go-resty/resty/v2"
)

// emailPattern is the loose local@domain.tld check the signup form
// applies; deliverability is the provider's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks presence and syntax of a subscription address.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// Service subscribes addresses to the configured Mailchimp audience.
type Service struct {
	client *resty.Client
	listID string
}

type memberRequest struct {
	EmailAddress string `json:"email_address"`
	Status       string `json:"status"`
}

type mailchimpError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// NewService creates a newsletter service. The Mailchimp datacenter is
// taken from the config, falling back to the API key suffix (keys look
// like "<secret>-us1").
func NewService(cfg *config.MailchimpConfig) *Service {
	dc := cfg.ServerPrefix
	if dc == "" {
		if _, suffix, found := strings.Cut(cfg.APIKey.Value(), "-"); found {
			dc = suffix
		}
	}
	client := resty.New().
		SetBaseURL(fmt.Sprintf("https://%s.api.mailchimp.com/3.0", dc)).
		SetBasicAuth("anystring", cfg.APIKey.Value())
	return &Service{client: client, listID: cfg.ListID}
}

// Subscribe adds the address to the audience with subscribed status.
// A duplicate subscription surfaces as ErrMemberExists; other provider
// failures surface as *ProviderError.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)
	mcErr := &mailchimpError{}
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(memberRequest{EmailAddress: email, Status: "subscribed"}).
		SetError(mcErr).
		Post(fmt.Sprintf("/lists/%s/members", s.listID))
	if err != nil {
		return fmt.Errorf("subscription request failed: %w", err)
	}
	if resp.IsError() {
		if mcErr.Title == "Member Exists" {
			return ErrMemberExists
		}
		log.Error("Mailing-list provider returned an error",
			"status", resp.StatusCode(),
			"title", mcErr.Title,
			"detail", mcErr.Detail,
		)
		return &ProviderError{Status: resp.StatusCode(), Title: mcErr.Title}
	}
	return nil
}
