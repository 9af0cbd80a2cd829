package honeycomb

// WebhookOption customizes a webhook recipient payload.
type WebhookOption func(*RecipientDetails)

// WithWebhookSecret sets the shared secret sent with webhook calls.
func WithWebhookSecret(secret string) WebhookOption {
	return func(d *RecipientDetails) {
		d.WebhookSecret = secret
	}
}

// WithWebhookHeaders sets custom headers sent with webhook calls.
func WithWebhookHeaders(headers []WebhookHeader) WebhookOption {
	return func(d *RecipientDetails) {
		d.WebhookHeaders = headers
	}
}

// WithWebhookTemplateVariables sets user-defined template variables.
func WithWebhookTemplateVariables(variables []WebhookVariable) WebhookOption {
	return func(d *RecipientDetails) {
		if d.WebhookPayloads == nil {
			d.WebhookPayloads = &WebhookPayloads{}
		}

		d.WebhookPayloads.TemplateVariables = variables
	}
}

// WithWebhookPayloadTemplates sets per-notification payload templates.
func WithWebhookPayloadTemplates(templates map[string]string) WebhookOption {
	return func(d *RecipientDetails) {
		if d.WebhookPayloads == nil {
			d.WebhookPayloads = &WebhookPayloads{}
		}

		d.WebhookPayloads.PayloadTemplates = templates
	}
}

// EmailRecipient builds a ready-to-submit email recipient payload.
func EmailRecipient(address string) (*RecipientCreateRequest, error) {
	if address == "" {
		return nil, ErrEmailAddressRequired
	}

	return &RecipientCreateRequest{
		Type:    RecipientEmail,
		Details: RecipientDetails{EmailAddress: address},
	}, nil
}

// WebhookRecipient builds a ready-to-submit webhook recipient payload.
func WebhookRecipient(url, name string, opts ...WebhookOption) (*RecipientCreateRequest, error) {
	if url == "" {
		return nil, ErrWebhookURLRequired
	}

	details := RecipientDetails{
		WebhookURL:  url,
		WebhookName: name,
	}

	for _, opt := range opts {
		opt(&details)
	}

	return &RecipientCreateRequest{
		Type:    RecipientWebhook,
		Details: details,
	}, nil
}

// ValidateRecipient checks that the details shape matches the recipient
// type. The type implies which detail fields must be present.
func ValidateRecipient(request *RecipientCreateRequest) error {
	switch request.Type {
	case RecipientEmail:
		if request.Details.EmailAddress == "" {
			return ErrEmailAddressRequired
		}
	case RecipientWebhook:
		if request.Details.WebhookURL == "" {
			return ErrWebhookURLRequired
		}
	case RecipientSlack, RecipientPagerDuty, RecipientMSTeams, RecipientZenoss:
		// Remaining shapes are validated server-side.
	default:
		return ErrRecipientDetailsShape
	}

	return nil
}
