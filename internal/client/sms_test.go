package client_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mailersend-go/internal/client"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSMSClients(t *testing.T) {
	t.Parallel()

	sms := built(mailersend.NewSMSBuilder().
		From("+12345678901").
		To("+19876543210").
		Text("Your code is {{code}}").
		Personalize("+19876543210", map[string]any{"code": "1234"}).
		Build())(t)
	activity := built(mailersend.NewSMSActivityBuilder().
		SMSNumberID("num-1").
		Status("delivered", "failed").
		BuildList())(t)
	message := built(mailersend.NewSMSActivityBuilder().MessageID("sms-1").BuildGet())(t)
	numbers := built(mailersend.NewSMSNumbersBuilder().Paused(false).BuildList())(t)
	pause := built(mailersend.NewSMSNumbersBuilder().NumberID("num-1").Paused(true).BuildUpdate())(t)
	optOut := built(mailersend.NewSMSRecipientsBuilder().RecipientID("rcp-1").Status("opt_out").BuildUpdate())(t)
	hooks := built(mailersend.NewSMSWebhooksBuilder().SMSNumberID("num-1").BuildList())(t)
	hook := built(mailersend.NewSMSWebhooksBuilder().
		SMSNumberID("num-1").
		URL("https://hooks.example.com/sms").
		Name("SMS deliveries").
		Events(mailersend.EventSMSDelivered).
		BuildCreate())(t)
	inbound := built(mailersend.NewSMSInboundsBuilder().
		SMSNumberID("num-1").
		Name("Replies").
		ForwardURL("https://hooks.example.com/inbound").
		BuildCreate())(t)

	client.RunExchangeTests(t, []client.TestExchange{
		{
			Name:         "send",
			Method:       http.MethodPost,
			ExpectedPath: "/sms",
			ExpectedBody: map[string]interface{}{
				"from": "+12345678901",
				"to":   []interface{}{"+19876543210"},
				"text": "Your code is {{code}}",
				"personalization": []interface{}{
					map[string]interface{}{
						"phone_number": "+19876543210",
						"data":         map[string]interface{}{"code": "1234"},
					},
				},
			},
			StatusCode: http.StatusAccepted,
			Header:     map[string]string{"X-SMS-Message-Id": "sms-1"},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMS().Send(ctx, sms)
			},
			Check: func(t *testing.T, env *mailersend.Envelope) {
				t.Helper()

				assert.Equal(t, "sms-1", env.Headers().Get("x-sms-message-id"))
			},
		},
		{
			Name:          "activity",
			Method:        http.MethodGet,
			ExpectedPath:  "/sms-activity",
			ExpectedQuery: url.Values{"sms_number_id": {"num-1"}, "status[]": {"delivered", "failed"}},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMSActivity().List(ctx, activity)
			},
		},
		{
			Name:         "activity of one message",
			Method:       http.MethodGet,
			ExpectedPath: "/sms-messages/sms-1",
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMSActivity().Get(ctx, message)
			},
		},
		{
			Name:         "message",
			Method:       http.MethodGet,
			ExpectedPath: "/sms-messages/sms-1",
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMSMessages().Get(ctx, message)
			},
		},
		{
			Name:          "numbers",
			Method:        http.MethodGet,
			ExpectedPath:  "/sms-numbers",
			ExpectedQuery: url.Values{"paused": {"false"}},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMSNumbers().List(ctx, numbers)
			},
		},
		{
			Name:         "pause number",
			Method:       http.MethodPut,
			ExpectedPath: "/sms-numbers/num-1",
			ExpectedBody: map[string]interface{}{"paused": true},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMSNumbers().Update(ctx, pause)
			},
		},
		{
			Name:         "opt out recipient",
			Method:       http.MethodPut,
			ExpectedPath: "/sms-recipients/rcp-1",
			ExpectedBody: map[string]interface{}{"status": "opt_out"},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMSRecipients().Update(ctx, optOut)
			},
		},
		{
			Name:          "webhooks",
			Method:        http.MethodGet,
			ExpectedPath:  "/sms-webhooks",
			ExpectedQuery: url.Values{"sms_number_id": {"num-1"}},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMSWebhooks().List(ctx, hooks)
			},
		},
		{
			Name:         "create webhook",
			Method:       http.MethodPost,
			ExpectedPath: "/sms-webhooks",
			ExpectedBody: map[string]interface{}{
				"sms_number_id": "num-1",
				"url":           "https://hooks.example.com/sms",
				"name":          "SMS deliveries",
				"events":        []interface{}{"sms.delivered"},
			},
			StatusCode: http.StatusCreated,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMSWebhooks().Create(ctx, hook)
			},
		},
		{
			Name:         "create inbound",
			Method:       http.MethodPost,
			ExpectedPath: "/sms-inbounds",
			ExpectedBody: map[string]interface{}{
				"sms_number_id": "num-1",
				"name":          "Replies",
				"forward_url":   "https://hooks.example.com/inbound",
				"enabled":       true,
			},
			StatusCode: http.StatusCreated,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMSInbounds().Create(ctx, inbound)
			},
		},
	})
}

func TestSMSClients_EmptyIdentifier(t *testing.T) {
	t.Parallel()

	c := client.NewTestClient("http://127.0.0.1:1")

	_, err := c.SMSNumbers().Get(context.Background(), &mailersend.SMSNumberRequest{})
	require.Error(t, err)

	_, err = c.SMSInbounds().Delete(context.Background(), nil)
	require.Error(t, err)
}
