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

// built unwraps a builder result, failing the test on a build error.
func built[T any](value T, err error) func(*testing.T) T {
	return func(t *testing.T) T {
		t.Helper()
		require.NoError(t, err)

		return value
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDomainsClient(t *testing.T) {
	t.Parallel()

	list := built(mailersend.NewDomainsBuilder().Page(2).Limit(10).Verified(true).BuildList())(t)
	domain := built(mailersend.NewDomainsBuilder().DomainID("dom-1").BuildGet())(t)
	create := built(mailersend.NewDomainsBuilder().Name("example.com").BuildCreate())(t)
	settings := built(mailersend.NewDomainsBuilder().DomainID("dom-1").SendPaused(true).BuildUpdateSettings())(t)
	recipients := built(mailersend.NewDomainsBuilder().DomainID("dom-1").Limit(25).BuildRecipients())(t)

	client.RunExchangeTests(t, []client.TestExchange{
		{
			Name:          "list",
			Method:        http.MethodGet,
			ExpectedPath:  "/domains",
			ExpectedQuery: url.Values{"page": {"2"}, "limit": {"10"}, "verified": {"true"}},
			StatusCode:    http.StatusOK,
			Response:      map[string]interface{}{"data": []interface{}{}},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Domains().List(ctx, list)
			},
		},
		{
			Name:         "get",
			Method:       http.MethodGet,
			ExpectedPath: "/domains/dom-1",
			StatusCode:   http.StatusOK,
			Response:     map[string]interface{}{"data": map[string]interface{}{"id": "dom-1", "name": "example.com"}},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Domains().Get(ctx, domain)
			},
		},
		{
			Name:         "create",
			Method:       http.MethodPost,
			ExpectedPath: "/domains",
			ExpectedBody: map[string]interface{}{"name": "example.com"},
			StatusCode:   http.StatusCreated,
			Response:     map[string]interface{}{"data": map[string]interface{}{"id": "dom-2"}},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Domains().Create(ctx, create)
			},
		},
		{
			Name:         "delete has no body",
			Method:       http.MethodDelete,
			ExpectedPath: "/domains/dom-1",
			StatusCode:   http.StatusNoContent,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Domains().Delete(ctx, domain)
			},
			Check: func(t *testing.T, env *mailersend.Envelope) {
				t.Helper()

				assert.True(t, env.Success())
				assert.Equal(t, map[string]any{}, env.Data())
			},
		},
		{
			Name:          "recipients",
			Method:        http.MethodGet,
			ExpectedPath:  "/domains/dom-1/recipients",
			ExpectedQuery: url.Values{"limit": {"25"}},
			StatusCode:    http.StatusOK,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Domains().Recipients(ctx, recipients)
			},
		},
		{
			Name:         "update settings",
			Method:       http.MethodPut,
			ExpectedPath: "/domains/dom-1/settings",
			ExpectedBody: map[string]interface{}{"send_paused": true},
			StatusCode:   http.StatusOK,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Domains().UpdateSettings(ctx, settings)
			},
		},
		{
			Name:         "dns records",
			Method:       http.MethodGet,
			ExpectedPath: "/domains/dom-1/dns-records",
			StatusCode:   http.StatusOK,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Domains().DNSRecords(ctx, domain)
			},
		},
		{
			Name:         "verification status",
			Method:       http.MethodGet,
			ExpectedPath: "/domains/dom-1/verify",
			StatusCode:   http.StatusOK,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Domains().VerificationStatus(ctx, domain)
			},
		},
	})
}

func TestIdentitiesClient(t *testing.T) {
	t.Parallel()

	byID := built(mailersend.NewIdentitiesBuilder().IdentityID("id-1").BuildGet())(t)
	byEmail := built(mailersend.NewIdentitiesBuilder().Email("info@example.com").BuildGetByEmail())(t)
	update := built(mailersend.NewIdentitiesBuilder().Email("info@example.com").Name("Support").BuildUpdateByEmail())(t)

	client.RunExchangeTests(t, []client.TestExchange{
		{
			Name:         "get by id",
			Method:       http.MethodGet,
			ExpectedPath: "/identities/id-1",
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Identities().Get(ctx, byID)
			},
		},
		{
			Name:         "get by email",
			Method:       http.MethodGet,
			ExpectedPath: "/identities/email/info@example.com",
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Identities().Get(ctx, byEmail)
			},
		},
		{
			Name:         "update by email",
			Method:       http.MethodPut,
			ExpectedPath: "/identities/email/info@example.com",
			ExpectedBody: map[string]interface{}{"name": "Support"},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Identities().Update(ctx, update)
			},
		},
		{
			Name:         "delete by id",
			Method:       http.MethodDelete,
			ExpectedPath: "/identities/id-1",
			StatusCode:   http.StatusNoContent,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Identities().Delete(ctx, byID)
			},
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRecipientsClient(t *testing.T) {
	t.Parallel()

	list := built(mailersend.NewRecipientsBuilder().Page(1).Limit(25).BuildList())(t)
	recipient := built(mailersend.NewRecipientsBuilder().RecipientID("rec-1").BuildGet())(t)
	add := built(mailersend.NewRecipientsBuilder().
		DomainID("dom-1").
		Recipient("spam@example.org").
		Pattern(".*@spam.example").
		BuildAddSuppressions(mailersend.SuppressionBlocklist))(t)
	remove := built(mailersend.NewRecipientsBuilder().All().BuildDeleteSuppressions(mailersend.SuppressionUnsubscribes))(t)
	hold := built(mailersend.NewRecipientsBuilder().BuildListSuppressions(mailersend.SuppressionOnHold))(t)

	client.RunExchangeTests(t, []client.TestExchange{
		{
			Name:          "list with pagination meta",
			Method:        http.MethodGet,
			ExpectedPath:  "/recipients",
			ExpectedQuery: url.Values{"page": {"1"}, "limit": {"25"}},
			StatusCode:    http.StatusOK,
			Response: map[string]interface{}{
				"data": []interface{}{
					map[string]interface{}{"id": "rec-1", "email": "jane@example.org"},
				},
				"meta": map[string]interface{}{"current_page": 1, "per_page": 25, "last_page": 4, "total": 90},
			},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Recipients().List(ctx, list)
			},
			Check: func(t *testing.T, env *mailersend.Envelope) {
				t.Helper()

				page, ok := env.Page()
				require.True(t, ok)
				assert.Equal(t, mailersend.PageInfo{CurrentPage: 1, PerPage: 25, Total: 90, LastPage: 4}, page)

				email, err := env.Path("data", 0, "email")
				require.NoError(t, err)
				assert.Equal(t, "jane@example.org", email)
			},
		},
		{
			Name:         "delete recipient",
			Method:       http.MethodDelete,
			ExpectedPath: "/recipients/rec-1",
			StatusCode:   http.StatusNoContent,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Recipients().Delete(ctx, recipient)
			},
		},
		{
			Name:         "add to blocklist",
			Method:       http.MethodPost,
			ExpectedPath: "/suppressions/blocklist",
			ExpectedBody: map[string]interface{}{
				"domain_id":  "dom-1",
				"recipients": []interface{}{"spam@example.org"},
				"patterns":   []interface{}{".*@spam.example"},
			},
			StatusCode: http.StatusCreated,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Recipients().AddSuppressions(ctx, add)
			},
		},
		{
			Name:         "delete all unsubscribes",
			Method:       http.MethodDelete,
			ExpectedPath: "/suppressions/unsubscribes",
			ExpectedBody: map[string]interface{}{"all": true},
			StatusCode:   http.StatusNoContent,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Recipients().DeleteSuppressions(ctx, remove)
			},
		},
		{
			Name:         "list on hold",
			Method:       http.MethodGet,
			ExpectedPath: "/suppressions/on-hold-list",
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Recipients().ListSuppressions(ctx, hold)
			},
		},
	})
}

func TestTokensClient(t *testing.T) {
	t.Parallel()

	create := built(mailersend.NewTokensBuilder().
		Name("ci").
		DomainID("dom-1").
		Scope("email_full", "domains_read").
		BuildCreate())(t)
	pause := built(mailersend.NewTokensBuilder().TokenID("tok-1").Status(mailersend.TokenStatusPause).BuildUpdateStatus())(t)
	rename := built(mailersend.NewTokensBuilder().TokenID("tok-1").Name("deploy").BuildRename())(t)
	token := built(mailersend.NewTokensBuilder().TokenID("tok-1").BuildGet())(t)

	client.RunExchangeTests(t, []client.TestExchange{
		{
			Name:         "create",
			Method:       http.MethodPost,
			ExpectedPath: "/token",
			ExpectedBody: map[string]interface{}{
				"name":      "ci",
				"domain_id": "dom-1",
				"scopes":    []interface{}{"email_full", "domains_read"},
			},
			StatusCode: http.StatusCreated,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Tokens().Create(ctx, create)
			},
		},
		{
			Name:         "pause",
			Method:       http.MethodPut,
			ExpectedPath: "/token/tok-1/settings",
			ExpectedBody: map[string]interface{}{"status": "pause"},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Tokens().UpdateStatus(ctx, pause)
			},
		},
		{
			Name:         "rename",
			Method:       http.MethodPut,
			ExpectedPath: "/token/tok-1",
			ExpectedBody: map[string]interface{}{"name": "deploy"},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Tokens().Rename(ctx, rename)
			},
		},
		{
			Name:         "delete",
			Method:       http.MethodDelete,
			ExpectedPath: "/token/tok-1",
			StatusCode:   http.StatusNoContent,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Tokens().Delete(ctx, token)
			},
		},
	})
}

func TestWebhooksClient(t *testing.T) {
	t.Parallel()

	list := built(mailersend.NewWebhooksBuilder().DomainID("dom-1").BuildList())(t)
	create := built(mailersend.NewWebhooksBuilder().
		DomainID("dom-1").
		URL("https://hooks.example.com/ms").
		Name("Deliveries").
		Events(mailersend.EventActivityDelivered).
		BuildCreate())(t)
	disable := built(mailersend.NewWebhooksBuilder().WebhookID("wh-1").Enabled(false).BuildUpdate())(t)

	client.RunExchangeTests(t, []client.TestExchange{
		{
			Name:          "list",
			Method:        http.MethodGet,
			ExpectedPath:  "/webhooks",
			ExpectedQuery: url.Values{"domain_id": {"dom-1"}},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Webhooks().List(ctx, list)
			},
		},
		{
			Name:         "create",
			Method:       http.MethodPost,
			ExpectedPath: "/webhooks",
			ExpectedBody: map[string]interface{}{
				"domain_id": "dom-1",
				"url":       "https://hooks.example.com/ms",
				"name":      "Deliveries",
				"events":    []interface{}{"activity.delivered"},
			},
			StatusCode: http.StatusCreated,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Webhooks().Create(ctx, create)
			},
		},
		{
			Name:         "disable",
			Method:       http.MethodPut,
			ExpectedPath: "/webhooks/wh-1",
			ExpectedBody: map[string]interface{}{"enabled": false},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Webhooks().Update(ctx, disable)
			},
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSMTPUsersAndUsersClients(t *testing.T) {
	t.Parallel()

	smtpList := built(mailersend.NewSMTPUsersBuilder().DomainID("dom-1").Limit(10).BuildList())(t)
	smtpCreate := built(mailersend.NewSMTPUsersBuilder().DomainID("dom-1").Name("relay").Enabled(true).BuildCreate())(t)
	smtpUser := built(mailersend.NewSMTPUsersBuilder().DomainID("dom-1").SMTPUserID("smtp-1").BuildGet())(t)
	invite := built(mailersend.NewUsersBuilder().Email("new@example.com").Role("Admin").BuildInvite())(t)
	pending := built(mailersend.NewUsersBuilder().InviteID("inv-1").BuildInviteTarget())(t)
	invites := built(mailersend.NewUsersBuilder().BuildListInvites())(t)

	client.RunExchangeTests(t, []client.TestExchange{
		{
			Name:          "smtp users list",
			Method:        http.MethodGet,
			ExpectedPath:  "/domains/dom-1/smtp-users",
			ExpectedQuery: url.Values{"limit": {"10"}},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMTPUsers().List(ctx, smtpList)
			},
		},
		{
			Name:         "smtp user create",
			Method:       http.MethodPost,
			ExpectedPath: "/domains/dom-1/smtp-users",
			ExpectedBody: map[string]interface{}{"name": "relay", "enabled": true},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMTPUsers().Create(ctx, smtpCreate)
			},
		},
		{
			Name:         "smtp user delete",
			Method:       http.MethodDelete,
			ExpectedPath: "/domains/dom-1/smtp-users/smtp-1",
			StatusCode:   http.StatusNoContent,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.SMTPUsers().Delete(ctx, smtpUser)
			},
		},
		{
			Name:         "invite user",
			Method:       http.MethodPost,
			ExpectedPath: "/users",
			ExpectedBody: map[string]interface{}{
				"email":       "new@example.com",
				"role":        "Admin",
				"permissions": []interface{}{},
				"templates":   []interface{}{},
				"domains":     []interface{}{},
			},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Users().Invite(ctx, invite)
			},
		},
		{
			Name:         "list invites",
			Method:       http.MethodGet,
			ExpectedPath: "/invites",
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Users().ListInvites(ctx, invites)
			},
		},
		{
			Name:         "resend invite",
			Method:       http.MethodPost,
			ExpectedPath: "/invites/inv-1/resend",
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Users().ResendInvite(ctx, pending)
			},
		},
		{
			Name:         "cancel invite",
			Method:       http.MethodDelete,
			ExpectedPath: "/invites/inv-1",
			StatusCode:   http.StatusNoContent,
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Users().CancelInvite(ctx, pending)
			},
		},
		{
			Name:         "api quota",
			Method:       http.MethodGet,
			ExpectedPath: "/api-quota",
			Response:     map[string]interface{}{"quota": 100000, "remaining": 99000},
			Call: func(ctx context.Context, c *client.Client) (*mailersend.Envelope, error) {
				return c.Quota().Get(ctx)
			},
		},
	})
}
