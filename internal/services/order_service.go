package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"
	"marketplace/internal/logger"
	"marketplace/internal/messaging"

	"github.com/google/uuid"
)

// OrderService 订单服务。下单时冻结商品名称与价格，
// 之后商品的修改删除不影响历史订单。
type OrderService struct {
	repo      repositories.OrderRepository
	cartSvc   *CartService
	publisher EventPublisher
	logger    logger.Logger
}

// NewOrderService 创建订单服务
func NewOrderService(
	repo repositories.OrderRepository,
	cartSvc *CartService,
	publisher EventPublisher,
	logger logger.Logger,
) *OrderService {
	return &OrderService{
		repo:      repo,
		cartSvc:   cartSvc,
		publisher: publisher,
		logger:    logger,
	}
}

// Checkout 结算页：购物车为空则拒绝
func (s *OrderService) Checkout(ctx context.Context, userID string) (entities.CheckoutSummary, error) {
	view, err := s.cartSvc.View(ctx, userID)
	if err != nil {
		return entities.CheckoutSummary{}, err
	}

	if len(view.Items) == 0 {
		return entities.CheckoutSummary{}, ErrCartEmpty
	}

	return entities.CheckoutSummary{
		ItemsCount: view.ItemsCount,
		TotalPrice: view.Total,
		Items:      view.Items,
	}, nil
}

// ProcessPayment 支付落单。请求带行项则以请求为准且不动购物车，
// 未带行项则取服务端购物车并在成功后清空。
func (s *OrderService) ProcessPayment(ctx context.Context, userID string, dto entities.ProcessPaymentDTO) (entities.OrderDetail, error) {
	if dto.PaymentMode == "" {
		return entities.OrderDetail{}, ErrPaymentModeRequired
	}

	items := dto.Items
	fromCart := len(items) == 0

	if fromCart {
		view, err := s.cartSvc.View(ctx, userID)
		if err != nil {
			return entities.OrderDetail{}, err
		}
		for _, line := range view.Items {
			items = append(items, entities.PaymentItem{
				Name:     line.Name,
				Quantity: line.Quantity,
				Price:    line.Price,
			})
		}
	}

	if len(items) == 0 {
		return entities.OrderDetail{}, ErrCartEmpty
	}

	for _, item := range items {
		if item.Quantity < 1 {
			return entities.OrderDetail{}, ErrQuantityInvalid
		}
	}

	orderID := uuid.New()
	orderItems := make([]entities.OrderItem, 0, len(items))
	summary := make([]string, 0, len(items))

	for _, item := range items {
		orderItems = append(orderItems, entities.OrderItem{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
		summary = append(summary, fmt.Sprintf("%d x %s", item.Quantity, item.Name))
	}

	order := entities.Order{
		ID:            orderID,
		UserID:        userID,
		PaymentMode:   dto.PaymentMode,
		TransactionID: dto.TransactionID,
		ItemNames:     strings.Join(summary, ", "),
		OrderDate:     time.Now(),
	}

	created, err := s.repo.Create(order, orderItems)
	if err != nil {
		return entities.OrderDetail{}, err
	}

	if fromCart {
		if err := s.cartSvc.Clear(ctx, userID); err != nil {
			s.logger.WithError(err).Warn("下单后清空购物车失败: user=%s order=%s", userID, created.ID)
		}
	}

	s.publish(created, len(orderItems))

	return entities.OrderDetail{Order: created, Items: orderItems}, nil
}

// MyOrders 用户订单列表，按时间倒序
func (s *OrderService) MyOrders(userID string) ([]entities.Order, error) {
	return s.repo.FindByUser(userID)
}

// OrderItems 订单行项
func (s *OrderService) OrderItems(orderID string) ([]entities.OrderItem, error) {
	return s.repo.ListItems(orderID)
}

func (s *OrderService) publish(order entities.Order, itemCount int) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.Publish(messaging.EventTypeOrderCreated, messaging.OrderCreatedPayload{
		OrderID:     order.ID.String(),
		UserID:      order.UserID,
		PaymentMode: order.PaymentMode,
		ItemNames:   order.ItemNames,
		ItemCount:   itemCount,
	})
	if err != nil {
		s.logger.WithError(err).Error("发布订单事件失败: order=%s", order.ID)
	}
}
