package wordpress

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Taxonomy identifies one of the built-in term collections.
type Taxonomy string

const (
	// TaxonomyCategory is the hierarchical category taxonomy
	TaxonomyCategory Taxonomy = "category"
	// TaxonomyTag is the flat post-tag taxonomy
	TaxonomyTag Taxonomy = "post_tag"
)

// endpoint returns the REST route for the taxonomy.
func (t Taxonomy) endpoint() string {
	if t == TaxonomyTag {
		return "/tags"
	}
	return "/categories"
}

// TermInput holds the writable fields of a taxonomy term.
type TermInput struct {
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Parent      int    `json:"parent,omitempty"`
}

// ListTerms retrieves one page of terms from the given taxonomy.
func (c *Client) ListTerms(ctx context.Context, taxonomy Taxonomy, params TermListParams) ([]Term, PageInfo, error) {
	values, err := encodeParams(params)
	if err != nil {
		return nil, PageInfo{}, err
	}

	var terms []Term
	info, err := c.get(ctx, taxonomy.endpoint(), values, &terms)
	if err != nil {
		return nil, PageInfo{}, fmt.Errorf("failed to get %s terms: %w", taxonomy, err)
	}
	return terms, info, nil
}

// ListAllTerms retrieves every term from the given taxonomy.
func (c *Client) ListAllTerms(ctx context.Context, taxonomy Taxonomy, params TermListParams) ([]Term, error) {
	if params.PerPage == 0 {
		params.PerPage = c.pageSize
	}

	var all []Term
	page := 1

	for {
		params.Page = page
		terms, info, err := c.ListTerms(ctx, taxonomy, params)
		if err != nil {
			return nil, err
		}
		all = append(all, terms...)

		if page >= info.TotalPages {
			break
		}
		page++
	}

	return all, nil
}

// GetTerm retrieves a single term by id.
func (c *Client) GetTerm(ctx context.Context, taxonomy Taxonomy, id int) (*Term, error) {
	var term Term
	if _, err := c.get(ctx, taxonomy.endpoint()+"/"+strconv.Itoa(id), nil, &term); err != nil {
		return nil, fmt.Errorf("failed to get %s term %d: %w", taxonomy, id, err)
	}
	return &term, nil
}

// GetTermBySlug retrieves a single term by slug. Returns ErrNotFound when the
// taxonomy has no term with the slug.
func (c *Client) GetTermBySlug(ctx context.Context, taxonomy Taxonomy, slug string) (*Term, error) {
	terms, _, err := c.ListTerms(ctx, taxonomy, TermListParams{Slug: []string{slug}})
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%s term %q: %w", taxonomy, slug, ErrNotFound)
	}
	return &terms[0], nil
}

// CreateTerm creates a new term in the given taxonomy.
func (c *Client) CreateTerm(ctx context.Context, taxonomy Taxonomy, input TermInput) (*Term, error) {
	var term Term
	if err := c.send(ctx, http.MethodPost, taxonomy.endpoint(), nil, input, &term); err != nil {
		return nil, fmt.Errorf("failed to create %s term: %w", taxonomy, err)
	}
	return &term, nil
}

// UpdateTerm applies the set fields of input to an existing term.
func (c *Client) UpdateTerm(ctx context.Context, taxonomy Taxonomy, id int, input TermInput) (*Term, error) {
	var term Term
	if err := c.send(ctx, http.MethodPost, taxonomy.endpoint()+"/"+strconv.Itoa(id), nil, input, &term); err != nil {
		return nil, fmt.Errorf("failed to update %s term %d: %w", taxonomy, id, err)
	}
	return &term, nil
}

// DeleteTerm deletes a term. Terms cannot be trashed, so the origin requires
// force.
func (c *Client) DeleteTerm(ctx context.Context, taxonomy Taxonomy, id int) error {
	params := url.Values{}
	params.Set("force", "true")
	if err := c.send(ctx, http.MethodDelete, taxonomy.endpoint()+"/"+strconv.Itoa(id), params, nil, nil); err != nil {
		return fmt.Errorf("failed to delete %s term %d: %w", taxonomy, id, err)
	}
	return nil
}
