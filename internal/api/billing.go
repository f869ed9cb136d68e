package api

import (
	"context"
	"fmt"
)

// Domain is a purchasable course bundle in the catalog. The price id
// fields are the payment provider's identifiers, passed back verbatim
// when starting checkout.
type Domain struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	MonthlyPrice   string `json:"monthly_price"`
	YearlyPrice    string `json:"yearly_price"`
	MonthlyPriceID string `json:"monthly_price_id"`
	YearlyPriceID  string `json:"yearly_price_id"`
	CourseCount    int    `json:"course_count"`
}

// DomainCourse is one course inside a domain.
type DomainCourse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	TotalQuestions int    `json:"total_questions"`
}

// ActiveDomain is a domain the user currently has access to.
type ActiveDomain struct {
	ID             int            `json:"id"`
	DomainID       int            `json:"domain"`
	Name           string         `json:"name"`
	SubscriptionID string         `json:"subscription_id"`
	Status         string         `json:"status"`
	ExpiresAt      string         `json:"expires_at"`
	Courses        []DomainCourse `json:"courses"`
}

type checkoutRequest struct {
	PriceID string `json:"price_id"`
	Domain  int    `json:"domain"`
}

type checkoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

type cancelResponse struct {
	Status string `json:"status"`
}

// Domains returns the purchasable domain catalog.
func (c *Client) Domains(ctx context.Context) ([]Domain, error) {
	var domains []Domain
	if err := c.get(ctx, "/domains/", &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// ActiveDomains returns the domains the user has access to, with
// their courses.
func (c *Client) ActiveDomains(ctx context.Context) ([]ActiveDomain, error) {
	var domains []ActiveDomain
	if err := c.get(ctx, "/user_active_domains/", &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// CreateCheckoutSession starts a payment flow for a domain price and
// returns the hosted checkout URL the user must open in a browser.
func (c *Client) CreateCheckoutSession(ctx context.Context, domainID int, priceID string) (string, error) {
	var resp checkoutResponse
	req := checkoutRequest{PriceID: priceID, Domain: domainID}
	if err := c.post(ctx, "/api/stripe/create-checkout-session/", req, &resp); err != nil {
		return "", err
	}
	return resp.CheckoutURL, nil
}

// CancelSubscription cancels an active subscription and returns the
// resulting status.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) (string, error) {
	var resp cancelResponse
	path := fmt.Sprintf("/api/subscription/%s/cancel/", subscriptionID)
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}
