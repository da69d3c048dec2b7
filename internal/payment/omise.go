package payment

import (
	"context"
	"fmt"

	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"github.com/wb-go/wbf/logger"
)

// OmiseGateway charges cards through Omise. With empty keys it runs in
// approve-all mode for local development: every charge succeeds with a
// synthetic reference.
type OmiseGateway struct {
	client   *omise.Client
	currency string
	logger   logger.Logger
}

func NewOmiseGateway(publicKey, secretKey, currency string, logger logger.Logger) (*OmiseGateway, error) {
	if publicKey == "" || secretKey == "" {
		logger.Warn("omise keys are empty, payment gateway running in approve-all mode")
		return &OmiseGateway{client: nil, currency: currency, logger: logger}, nil
	}

	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("create omise client: %w", err)
	}

	return &OmiseGateway{client: client, currency: currency, logger: logger}, nil
}

func (g *OmiseGateway) Charge(ctx context.Context, orderID string, amountCents int64, cardToken string) (string, error) {
	if g.client == nil {
		ref := "approved-" + orderID
		g.logger.Debug("charge approved (gateway disabled)",
			logger.String("order_id", orderID),
			logger.Int64("amount_cents", amountCents),
		)
		return ref, nil
	}

	if cardToken == "" {
		return "", fmt.Errorf("%w: missing card token", domain.ErrPaymentDeclined)
	}

	charge := &omise.Charge{}
	err := g.client.Do(charge, &operations.CreateCharge{
		Amount:   amountCents,
		Currency: g.currency,
		Card:     cardToken,
		Metadata: map[string]interface{}{"order_id": orderID},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrPaymentDeclined, err)
	}

	if !charge.Paid {
		return "", fmt.Errorf("%w: %s", domain.ErrPaymentDeclined, charge.FailureMessage)
	}

	g.logger.Info("charge completed",
		logger.String("order_id", orderID),
		logger.String("charge_id", charge.ID),
		logger.Int64("amount_cents", amountCents),
	)

	return charge.ID, nil
}
