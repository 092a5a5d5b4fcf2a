package service

import (
	"fmt"
	"log"
	"strings"

	"amur-backend/internal/domain"
	"amur-backend/internal/i18n"
)

// OrderNotifier fans one order event out to every interested party: each
// admin with a linked chat in their own language, the customer in theirs, and
// the shared staff group chat in the base language. It also drops an in-app
// notification for the customer. Push delivery goes through the Pusher and
// never blocks or fails the calling operation.
type OrderNotifier struct {
	users         UserRepository
	notifications *NotificationService
	pusher        Pusher
	groupChatID   int64
}

func NewOrderNotifier(users UserRepository, notifications *NotificationService, pusher Pusher, groupChatID int64) *OrderNotifier {
	return &OrderNotifier{
		users:         users,
		notifications: notifications,
		pusher:        pusher,
		groupChatID:   groupChatID,
	}
}

func (n *OrderNotifier) OrderCreated(order *domain.Order) {
	customer, err := n.users.GetUserByNumber(order.UserNumber)
	if err != nil {
		log.Printf("[notifier] lookup customer %s: %v", order.UserNumber, err)
		customer = nil
	}

	admins, err := n.users.ListAdmins()
	if err != nil {
		log.Printf("[notifier] list admins: %v", err)
	}
	for _, admin := range admins {
		if admin.TgID == nil {
			continue
		}
		lang := resolveLanguage(admin.Language)
		n.pusher.Enqueue(*admin.TgID, formatOrderMessage(order, lang, i18n.Translate("new_order", lang)))
	}

	if n.groupChatID != 0 {
		n.pusher.Enqueue(n.groupChatID, formatOrderMessage(order, i18n.DefaultLanguage, i18n.Translate("new_order", i18n.DefaultLanguage)))
	}

	if customer != nil {
		lang := resolveLanguage(customer.Language)
		if customer.TgID != nil {
			n.pusher.Enqueue(*customer.TgID, formatOrderMessage(order, lang, i18n.Translate("order_accepted", lang)))
		}
		message := fmt.Sprintf("%s %s", i18n.Translate("order_id", lang), order.OrderID)
		if err := n.notifications.Notify(customer.ID, i18n.Translate("order_accepted", lang), message, "order"); err != nil {
			log.Printf("[notifier] store notification for %s: %v", customer.ID, err)
		}
	}
}

func (n *OrderNotifier) OrderStatusChanged(order *domain.Order, status domain.OrderStatus) {
	// pending is the creation state, customers hear about it via OrderCreated.
	if status == domain.OrderPending {
		return
	}

	customer, err := n.users.GetUserByNumber(order.UserNumber)
	if err != nil {
		log.Printf("[notifier] lookup customer %s: %v", order.UserNumber, err)
		return
	}

	lang := resolveLanguage(customer.Language)
	text := i18n.Translate("order_status_"+string(status), lang)
	body := fmt.Sprintf("%s\n%s %s", text, i18n.Translate("order_id", lang), order.OrderID)

	if customer.TgID != nil {
		n.pusher.Enqueue(*customer.TgID, body)
	}
	if err := n.notifications.Notify(customer.ID, text, body, "order"); err != nil {
		log.Printf("[notifier] store notification for %s: %v", customer.ID, err)
	}
}

func resolveLanguage(lang string) string {
	if i18n.Supported(lang) {
		return lang
	}
	return i18n.DefaultLanguage
}

// formatOrderMessage renders an order as Telegram HTML in the given language.
func formatOrderMessage(order *domain.Order, lang, header string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>%s</b>\n\n", header)
	fmt.Fprintf(&b, "%s <code>%s</code>\n", i18n.Translate("order_id", lang), order.OrderID)
	fmt.Fprintf(&b, "%s %s\n", i18n.Translate("customer", lang), order.UserName)
	fmt.Fprintf(&b, "%s %s\n", i18n.Translate("phone", lang), order.UserNumber)
	fmt.Fprintf(&b, "%s %s\n\n", i18n.Translate("time", lang), order.CreatedAt.Format("02.01.2006 15:04"))

	fmt.Fprintf(&b, "<b>%s</b>\n", i18n.Translate("order_items", lang))
	for _, line := range order.Foods {
		fmt.Fprintf(&b, "• %s x%d = %d\n", line.Name, line.Quantity, line.TotalPrice)
	}
	fmt.Fprintf(&b, "\n<b>%s %d</b>\n", i18n.Translate("total_amount", lang), order.TotalPrice)

	switch order.Fulfillment.Type {
	case domain.DeliveryHome:
		fmt.Fprintf(&b, "%s %s\n", i18n.Translate("delivery_address", lang), order.Fulfillment.Address)
	case domain.DeliveryPickup:
		fmt.Fprintf(&b, "%s %s\n", i18n.Translate("pickup", lang), order.Fulfillment.PickupCode)
	case domain.DeliveryRestaurant:
		fmt.Fprintf(&b, "%s %s\n", i18n.Translate("restaurant_table", lang), order.Fulfillment.TableName)
	}

	fmt.Fprintf(&b, "%s %s\n", i18n.Translate("payment_method", lang), i18n.Translate(string(order.PaymentInfo.Method), lang))
	fmt.Fprintf(&b, "%s %d min\n", i18n.Translate("preparation_time", lang), order.EstimatedTime)

	if order.SpecialInstructions != nil && *order.SpecialInstructions != "" {
		fmt.Fprintf(&b, "%s %s\n", i18n.Translate("additional_notes", lang), *order.SpecialInstructions)
	}

	return b.String()
}
