package subscription

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"NutriTrack-Backend/internal/utils"
	"NutriTrack-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	SubscriptionService interface {
		CreateTransaction(ctx context.Context, req domain.SubscribeRequest, userID string) (domain.SubscribeResponse, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
		snapClient             snap.Client
		serverKey              string
	}
)

func NewSubscriptionService(
	subscriptionRepository SubscriptionRepository,
	userRepository user.UserRepository,
) SubscriptionService {
	serverKey := utils.GetConfig("SERVER_KEY")
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(serverKey, env)

	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		snapClient:             client,
		serverKey:              serverKey,
	}
}

func (s *subscriptionService) CreateTransaction(ctx context.Context, req domain.SubscribeRequest, userID string) (domain.SubscribeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscribeResponse{}, domain.ErrParseUUID
	}

	orderID := fmt.Sprintf("premium-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: domain.PremiumPriceIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "premium-monthly",
				Name:  "NutriTrack Premium (30 days)",
				Price: domain.PremiumPriceIDR,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.SubscribeResponse{}, domain.ErrPaymentFailed
	}

	transaction := &entities.Transaction{
		ID:      uuid.New(),
		UserID:  userUUID,
		OrderID: orderID,
		Amount:  domain.PremiumPriceIDR,
		Status:  "Pending",
	}
	if err := s.subscriptionRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.SubscribeResponse{}, err
	}

	return domain.SubscribeResponse{
		OrderID:    orderID,
		InvoiceURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification processes a Midtrans webhook. The signature is
// sha512(order_id + status_code + gross_amount + server_key); anything that
// fails verification is rejected before any state changes.
func (s *subscriptionService) HandleNotification(ctx context.Context, notification domain.MidtransNotification) error {
	if !s.validSignature(notification) {
		return domain.ErrInvalidSignature
	}

	transaction, err := s.subscriptionRepository.GetTransactionByOrderID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	switch notification.TransactionStatus {
	case "settlement", "capture":
		if notification.FraudStatus == "challenge" || notification.FraudStatus == "deny" {
			return s.subscriptionRepository.UpdateTransactionStatus(ctx, notification.OrderID, "Cancel")
		}
		if err := s.subscriptionRepository.UpdateTransactionStatus(ctx, notification.OrderID, "Settlement"); err != nil {
			return err
		}
		expiresAt := time.Now().AddDate(0, 0, domain.PremiumDurationDays)
		return s.userRepository.GrantPremium(ctx, transaction.UserID.String(), expiresAt)
	case "expire":
		return s.subscriptionRepository.UpdateTransactionStatus(ctx, notification.OrderID, "Expire")
	case "cancel", "deny":
		return s.subscriptionRepository.UpdateTransactionStatus(ctx, notification.OrderID, "Cancel")
	default:
		return nil
	}
}

func (s *subscriptionService) validSignature(n domain.MidtransNotification) bool {
	payload := n.OrderID + n.StatusCode + n.GrossAmount + s.serverKey
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:]) == n.SignatureKey
}
