package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const (
	metadataTier   = "tier"
	metadataUserID = "userId"
)

// ErrPriceNotConfigured is returned for a tier with no purchasable price.
var ErrPriceNotConfigured = errors.New("no price configured for tier")

// SessionParams describes a subscription upgrade to start.
type SessionParams struct {
	Tier   models.SubscriptionTier
	UserID string
}

// Session is the provider-neutral view of a checkout session.
type Session struct {
	ID     string
	URL    string
	Tier   models.SubscriptionTier
	UserID string
	Status models.CheckoutStatus
}

// CheckoutProvider creates and looks up hosted checkout sessions.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, params SessionParams) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
}

// StripeClient is a thin pass-through to Stripe Checkout.
type StripeClient struct {
	api       *client.API
	prices    map[models.SubscriptionTier]string
	clientURL string
}

var _ CheckoutProvider = (*StripeClient)(nil)

// NewStripeClient creates a Stripe-backed provider. prices maps each paid tier
// to a Stripe price id; clientURL is the base for redirect URLs.
func NewStripeClient(secretKey string, prices map[models.SubscriptionTier]string, clientURL string) (*StripeClient, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("Stripe secret key not provided")
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	copied := make(map[models.SubscriptionTier]string, len(prices))
	for tier, price := range prices {
		if price != "" {
			copied[tier] = price
		}
	}

	log.Info().Int("prices", len(copied)).Msg("Stripe client initialized")
	return &StripeClient{
		api:       api,
		prices:    copied,
		clientURL: strings.TrimRight(clientURL, "/"),
	}, nil
}

// PriceFor returns the Stripe price id for tier.
func (s *StripeClient) PriceFor(tier models.SubscriptionTier) (string, bool) {
	price, ok := s.prices[tier]
	return price, ok
}

func (s *StripeClient) CreateSession(ctx context.Context, p SessionParams) (*Session, error) {
	price, ok := s.PriceFor(p.Tier)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPriceNotConfigured, p.Tier)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(price), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(s.clientURL + "/subscription?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.clientURL + "/subscription"),
	}
	params.Context = ctx
	params.AddMetadata(metadataTier, string(p.Tier))
	params.AddMetadata(metadataUserID, p.UserID)

	cs, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return fromStripe(cs), nil
}

func (s *StripeClient) GetSession(ctx context.Context, id string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	cs, err := s.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session %s: %w", id, err)
	}
	return fromStripe(cs), nil
}

// fromStripe maps a Stripe session. A missing tier defaults to pro and any
// status other than complete is reported as open.
func fromStripe(cs *stripe.CheckoutSession) *Session {
	tier := models.SubscriptionTier(cs.Metadata[metadataTier])
	if tier == "" {
		tier = models.TierPro
	}
	status := models.CheckoutOpen
	if cs.Status == stripe.CheckoutSessionStatusComplete {
		status = models.CheckoutComplete
	}
	return &Session{
		ID:     cs.ID,
		URL:    cs.URL,
		Tier:   tier,
		UserID: cs.Metadata[metadataUserID],
		Status: status,
	}
}
