package checkout

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	adminstore "github.com/bekzodm/minibazar/store/admin"
	cartstore "github.com/bekzodm/minibazar/store/cart"
	"github.com/bekzodm/minibazar/thirdparty/rabbitmq"
	"github.com/bekzodm/minibazar/utils/errors"
	"github.com/bekzodm/minibazar/utils/logger"
	"go.uber.org/zap"
)

type CheckoutApp interface {
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

type checkoutAppImpl struct {
	cartStore  *cartstore.Store
	adminStore *adminstore.Store
	publisher  *rabbitmq.Publisher
}

func NewCheckoutApp(cartStore *cartstore.Store, adminStore *adminstore.Store, publisher *rabbitmq.Publisher) CheckoutApp {
	return &checkoutAppImpl{cartStore: cartStore, adminStore: adminStore, publisher: publisher}
}

// Checkout turns the cart into an order message, hands back a chat deep link
// for the client to open, and clears the cart. The link is one-way: nothing
// confirms delivery.
func (s *checkoutAppImpl) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	items := s.cartStore.Items()
	if len(items) == 0 {
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}

	message := buildOrderMessage(items, s.cartStore.Total(), req)
	link := s.deepLink(message)

	// notify the bot before clearing; the cart mutation is independent and
	// proceeds even if the publish fails
	if s.publisher != nil {
		msg := rabbitmq.BotNotification{
			Kind:   rabbitmq.NotificationKindOrder,
			ChatID: s.adminStore.Config().Bot.ChatID,
			Text:   message,
		}
		if err := s.publisher.PublishBotNotification(msg); err != nil {
			logger.Error("[Checkout] publish order notification", zap.String("error", err.Error()))
		}
	}

	s.cartStore.ClearCart()

	logger.Info("[Checkout] order composed", zap.Int("items", len(items)))
	return &model.CheckoutResponse{Message: message, Link: link}, nil
}

func buildOrderMessage(items []model.CartItem, total float64, req *model.CheckoutRequest) string {
	var b strings.Builder
	b.WriteString("🛒 Yangi buyurtma\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "• %s x%d — %.0f\n", it.Name, it.Quantity, it.Price*float64(it.Quantity))
	}
	fmt.Fprintf(&b, "\nJami: %.0f\n", total)
	fmt.Fprintf(&b, "Xaridor: %s\nTelefon: %s\n", req.Name, req.Phone)
	if req.Address != "" {
		fmt.Fprintf(&b, "Manzil: %s\n", req.Address)
	}
	return b.String()
}

// deepLink targets the configured bot, falling back to the admin contact
// handle when no bot is set.
func (s *checkoutAppImpl) deepLink(message string) string {
	cfg := s.adminStore.Config()
	handle := cfg.Bot.Username
	if handle == "" {
		handle = cfg.AdminTelegram
	}
	return fmt.Sprintf("https://t.me/%s?text=%s", handle, url.QueryEscape(message))
}
