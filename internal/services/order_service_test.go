package services

import (
	"context"
	"testing"

	"marketplace/internal/domain/entities"
	"marketplace/internal/messaging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	svc       *OrderService
	cart      *cartFixture
	orders    *fakeOrderRepo
	publisher *recordingPublisher
}

func newOrderFixture() *orderFixture {
	cart := newCartFixture()
	orders := newFakeOrderRepo()
	publisher := &recordingPublisher{}

	svc := NewOrderService(orders, cart.svc, publisher, testLogger())
	return &orderFixture{svc: svc, cart: cart, orders: orders, publisher: publisher}
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.Checkout(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutSummary(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	productA := f.cart.seedProduct("ProductA", 10)
	productB := f.cart.seedProduct("ProductB", 5)
	require.NoError(t, f.cart.svc.AddItem(ctx, "user-1", entities.AddCartItemDTO{ProductID: productA.ID.String(), Quantity: 2}))
	require.NoError(t, f.cart.svc.AddItem(ctx, "user-1", entities.AddCartItemDTO{ProductID: productB.ID.String(), Quantity: 1}))

	summary, err := f.svc.Checkout(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.ItemsCount)
	assert.True(t, decimal.NewFromInt(25).Equal(summary.TotalPrice))
	assert.Len(t, summary.Items, 2)
}

func TestProcessPaymentRequiresPaymentMode(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.ProcessPayment(context.Background(), "user-1", entities.ProcessPaymentDTO{})
	assert.ErrorIs(t, err, ErrPaymentModeRequired)
}

func TestProcessPaymentFromCart(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	productA := f.cart.seedProduct("ProductA", 10)
	productB := f.cart.seedProduct("ProductB", 5)
	require.NoError(t, f.cart.svc.AddItem(ctx, "user-1", entities.AddCartItemDTO{ProductID: productA.ID.String(), Quantity: 2}))
	require.NoError(t, f.cart.svc.AddItem(ctx, "user-1", entities.AddCartItemDTO{ProductID: productB.ID.String(), Quantity: 1}))

	detail, err := f.svc.ProcessPayment(ctx, "user-1", entities.ProcessPaymentDTO{
		PaymentMode:   "upi",
		TransactionID: "txn-1",
	})
	require.NoError(t, err)

	// 行项摘要与冻结行项
	assert.Equal(t, "2 x ProductA, 1 x ProductB", detail.Order.ItemNames)
	require.Len(t, detail.Items, 2)
	assert.Equal(t, "ProductA", detail.Items[0].ProductName)
	assert.True(t, decimal.NewFromInt(10).Equal(detail.Items[0].Price))

	// 从购物车落单后购物车被清空
	view, err := f.cart.svc.View(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	// 发布订单创建事件
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, messaging.EventTypeOrderCreated, f.publisher.events[0].Type)
}

func TestProcessPaymentOrderImmutable(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	product := f.cart.seedProduct("ProductA", 10)
	require.NoError(t, f.cart.svc.AddItem(ctx, "user-1", entities.AddCartItemDTO{ProductID: product.ID.String(), Quantity: 2}))

	detail, err := f.svc.ProcessPayment(ctx, "user-1", entities.ProcessPaymentDTO{PaymentMode: "card"})
	require.NoError(t, err)

	// 下单后修改商品，历史订单行项不变
	product.Name = "改名商品"
	product.Price = decimal.NewFromInt(99)
	f.cart.products.Update(product)

	items, err := f.svc.OrderItems(detail.Order.ID.String())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ProductA", items[0].ProductName)
	assert.True(t, decimal.NewFromInt(10).Equal(items[0].Price))
}

func TestProcessPaymentWithClientItems(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	// 购物车里有商品，但请求自带行项
	product := f.cart.seedProduct("CartProduct", 10)
	require.NoError(t, f.cart.svc.AddItem(ctx, "user-1", entities.AddCartItemDTO{ProductID: product.ID.String()}))

	detail, err := f.svc.ProcessPayment(ctx, "user-1", entities.ProcessPaymentDTO{
		PaymentMode: "cod",
		Items: []entities.PaymentItem{
			{Name: "ClientProduct", Quantity: 1, Price: decimal.NewFromInt(7)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "1 x ClientProduct", detail.Order.ItemNames)

	// 以请求为准时购物车保持不动
	view, err := f.cart.svc.View(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "CartProduct", view.Items[0].Name)
}

func TestProcessPaymentRejectsInvalidQuantity(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.ProcessPayment(context.Background(), "user-1", entities.ProcessPaymentDTO{
		PaymentMode: "upi",
		Items: []entities.PaymentItem{
			{Name: "X", Quantity: 0, Price: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, ErrQuantityInvalid)
}

func TestMyOrdersOnlyOwn(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	product := f.cart.seedProduct("ProductA", 10)
	require.NoError(t, f.cart.svc.AddItem(ctx, "user-1", entities.AddCartItemDTO{ProductID: product.ID.String()}))
	_, err := f.svc.ProcessPayment(ctx, "user-1", entities.ProcessPaymentDTO{PaymentMode: "upi"})
	require.NoError(t, err)

	orders, err := f.svc.MyOrders("user-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = f.svc.MyOrders("user-2")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
