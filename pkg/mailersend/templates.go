package mailersend

import "net/url"

// TemplateListRequest lists templates.
type TemplateListRequest struct {
	listQuery
}

// TemplateRequest identifies one template.
type TemplateRequest struct {
	templateID string
}

// TemplateID returns the template identifier.
func (r *TemplateRequest) TemplateID() string {
	return r.templateID
}

// TemplatesBuilder assembles template requests.
type TemplatesBuilder struct {
	builder
	pagination

	domainID   string
	templateID string
}

// NewTemplatesBuilder creates a templates builder.
func NewTemplatesBuilder() *TemplatesBuilder {
	return &TemplatesBuilder{}
}

// Page sets the page number.
func (b *TemplatesBuilder) Page(page int) *TemplatesBuilder {
	if b.checkPage(page) {
		b.page = intPtr(page)
	}

	return b
}

// Limit sets the page size.
func (b *TemplatesBuilder) Limit(limit int) *TemplatesBuilder {
	if b.checkLimit(limit) {
		b.limit = intPtr(limit)
	}

	return b
}

// DomainID filters by domain.
func (b *TemplatesBuilder) DomainID(domainID string) *TemplatesBuilder {
	if b.checkNotEmpty("domain_id", domainID) {
		b.domainID = domainID
	}

	return b
}

// TemplateID sets the template to fetch or delete.
func (b *TemplatesBuilder) TemplateID(templateID string) *TemplatesBuilder {
	if b.checkNotEmpty("template_id", templateID) {
		b.templateID = templateID
	}

	return b
}

// BuildList returns the list request.
func (b *TemplatesBuilder) BuildList() (*TemplateListRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := url.Values{}
	b.encode(query)

	if b.domainID != "" {
		query.Set("domain_id", b.domainID)
	}

	return &TemplateListRequest{listQuery{query: query}}, nil
}

// BuildGet returns the request for one template. Delete accepts it too.
func (b *TemplatesBuilder) BuildGet() (*TemplateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := requireSet("template_id", b.templateID); err != nil {
		return nil, err
	}

	return &TemplateRequest{templateID: b.templateID}, nil
}
