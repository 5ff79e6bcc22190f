package pipeline

import (
	"context"
	"fmt"

	"ayurveda-intake/internal/common/config"
	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/google"
	apihttp "ayurveda-intake/internal/common/http"
	em "ayurveda-intake/internal/workers/communication/email-send"

	"google.golang.org/api/option"
)

// Backends are the external stores and transports one submission writes to.
type Backends struct {
	Spreadsheet google.Spreadsheet
	Transport   em.Transport
}

// Connector opens Backends for a single submission.
type Connector interface {
	Connect(ctx context.Context) (*Backends, error)
}

// GoogleConnector reads the service account key on every call, so a rotated
// key takes effect without a restart.
type GoogleConnector struct {
	cfg  *config.Config
	ses  em.RawEmailSender
	opts []option.ClientOption
}

// NewGoogleConnector builds a connector. ses is only used when the configured
// mail provider is ses.
func NewGoogleConnector(cfg *config.Config, ses em.RawEmailSender) *GoogleConnector {
	return &GoogleConnector{cfg: cfg, ses: ses}
}

// WithClientOptions appends options to every Sheets and Gmail client the
// connector builds, e.g. a different API endpoint.
func (c *GoogleConnector) WithClientOptions(opts ...option.ClientOption) *GoogleConnector {
	c.opts = append(c.opts, opts...)
	return c
}

func (c *GoogleConnector) Connect(ctx context.Context) (*Backends, error) {
	creds := google.CredentialSource{
		JSON:     c.cfg.Google.ServiceAccountJSON,
		JSONPath: c.cfg.Google.ServiceAccountJSONPath,
	}
	timeout := c.cfg.Google.RequestTimeout
	ctx = apihttp.WithClient(ctx, apihttp.NewClient(timeout))

	httpClient, err := creds.DelegatedClient(ctx, c.cfg.Mail.Sender)
	if err != nil {
		return nil, errors.NewCredentialsUnavailableError(err)
	}
	httpClient.Timeout = timeout

	sheets, err := google.NewSheetsClient(ctx, httpClient, c.cfg.Spreadsheet.ID, c.opts...)
	if err != nil {
		return nil, errors.NewCredentialsUnavailableError(err)
	}

	var transport em.Transport
	switch c.cfg.Mail.Provider {
	case config.MailProviderSES:
		if c.ses == nil {
			return nil, errors.NewNotificationSendFailedError(config.MailProviderSES, fmt.Errorf("ses client not configured"))
		}
		transport = em.NewSESTransport(c.ses)
	default:
		gmail, err := google.NewGmailClient(ctx, httpClient, c.opts...)
		if err != nil {
			return nil, errors.NewCredentialsUnavailableError(err)
		}
		transport = em.NewGmailTransport(gmail)
	}

	return &Backends{Spreadsheet: sheets, Transport: transport}, nil
}
