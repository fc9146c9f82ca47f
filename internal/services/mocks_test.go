package services

import (
	"strings"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"
	"marketplace/internal/logger"

	"github.com/google/uuid"
)

// testLogger 测试用日志器，只输出错误
func testLogger() logger.Logger {
	return logger.New(logger.Config{Level: "error"})
}

// fakeUserRepo 内存用户仓库
type fakeUserRepo struct {
	users map[string]entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entities.User{}}
}

func (f *fakeUserRepo) Create(user entities.User) (entities.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) FindByID(id string) (entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return entities.User{}, repositories.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entities.User{}, repositories.ErrNotFound
}

// fakeVendorRepo 内存商家仓库
type fakeVendorRepo struct {
	vendors map[string]entities.VendorProfile
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: map[string]entities.VendorProfile{}}
}

func (f *fakeVendorRepo) Create(vendor entities.VendorProfile) (entities.VendorProfile, error) {
	f.vendors[vendor.ID.String()] = vendor
	return vendor, nil
}

func (f *fakeVendorRepo) FindByID(id string) (entities.VendorProfile, error) {
	vendor, ok := f.vendors[id]
	if !ok {
		return entities.VendorProfile{}, repositories.ErrNotFound
	}
	return vendor, nil
}

func (f *fakeVendorRepo) FindByUserID(userID string) (entities.VendorProfile, error) {
	for _, vendor := range f.vendors {
		if vendor.UserID == userID {
			return vendor, nil
		}
	}
	return entities.VendorProfile{}, repositories.ErrNotFound
}

func (f *fakeVendorRepo) FindAll(filter entities.VendorFilter) ([]entities.VendorProfile, error) {
	var result []entities.VendorProfile
	for _, vendor := range f.vendors {
		if filter.Status != "" && vendor.ApprovalStatus != filter.Status {
			continue
		}
		if filter.Blocked != nil && vendor.IsBlocked != *filter.Blocked {
			continue
		}
		if filter.Search != "" && !strings.Contains(vendor.ShopName, filter.Search) {
			continue
		}
		result = append(result, vendor)
	}
	return result, nil
}

func (f *fakeVendorRepo) Update(vendor entities.VendorProfile) (entities.VendorProfile, error) {
	if _, ok := f.vendors[vendor.ID.String()]; !ok {
		return entities.VendorProfile{}, repositories.ErrNotFound
	}
	f.vendors[vendor.ID.String()] = vendor
	return vendor, nil
}

func (f *fakeVendorRepo) CountAll() (int, error) {
	return len(f.vendors), nil
}

func (f *fakeVendorRepo) CountByStatus(status entities.ApprovalStatus) (int, error) {
	count := 0
	for _, vendor := range f.vendors {
		if vendor.ApprovalStatus == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeVendorRepo) CountBlocked() (int, error) {
	count := 0
	for _, vendor := range f.vendors {
		if vendor.IsBlocked {
			count++
		}
	}
	return count, nil
}

// fakeProductRepo 内存商品仓库
type fakeProductRepo struct {
	products map[string]entities.Product
	vendors  *fakeVendorRepo
}

func newFakeProductRepo(vendors *fakeVendorRepo) *fakeProductRepo {
	return &fakeProductRepo{products: map[string]entities.Product{}, vendors: vendors}
}

func (f *fakeProductRepo) Create(product entities.Product) (entities.Product, error) {
	f.products[product.ID.String()] = product
	return product, nil
}

func (f *fakeProductRepo) FindByID(id string) (entities.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return entities.Product{}, repositories.ErrNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) FindByVendor(vendorID string) ([]entities.Product, error) {
	var result []entities.Product
	for _, product := range f.products {
		if product.VendorID.String() == vendorID {
			result = append(result, product)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) FindAll(filter entities.ProductFilter) ([]entities.Product, error) {
	var result []entities.Product
	for _, product := range f.products {
		if filter.VendorID != "" && product.VendorID.String() != filter.VendorID {
			continue
		}
		if filter.Blocked != nil && product.IsBlocked != *filter.Blocked {
			continue
		}
		if filter.Search != "" && !strings.Contains(product.Name, filter.Search) {
			continue
		}
		result = append(result, product)
	}
	return result, nil
}

func (f *fakeProductRepo) FindVisible(search string) ([]entities.Product, error) {
	var result []entities.Product
	for _, product := range f.products {
		if search != "" && !strings.Contains(product.Name, search) {
			continue
		}
		if product.Status != entities.ProductStatusActive {
			continue
		}
		vendor, err := f.vendors.FindByID(product.VendorID.String())
		if err != nil {
			continue
		}
		if !product.Purchasable(vendor) {
			continue
		}
		result = append(result, product)
	}
	return result, nil
}

func (f *fakeProductRepo) Update(product entities.Product) (entities.Product, error) {
	if _, ok := f.products[product.ID.String()]; !ok {
		return entities.Product{}, repositories.ErrNotFound
	}
	f.products[product.ID.String()] = product
	return product, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	if _, ok := f.products[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) BlockByVendor(vendorID string, reason string) (int64, error) {
	var affected int64
	for id, product := range f.products {
		if product.VendorID.String() == vendorID && !product.IsBlocked {
			product.IsBlocked = true
			product.BlockedReason = reason
			f.products[id] = product
			affected++
		}
	}
	return affected, nil
}

func (f *fakeProductRepo) CountAll() (int, error) {
	return len(f.products), nil
}

func (f *fakeProductRepo) CountBlocked() (int, error) {
	count := 0
	for _, product := range f.products {
		if product.IsBlocked {
			count++
		}
	}
	return count, nil
}

// fakeCartRepo 内存购物车仓库
type fakeCartRepo struct {
	carts map[string]entities.Cart       // userID -> cart
	items map[string][]entities.CartItem // cartID -> items
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: map[string]entities.Cart{},
		items: map[string][]entities.CartItem{},
	}
}

func (f *fakeCartRepo) GetOrCreate(userID string) (entities.Cart, error) {
	if cart, ok := f.carts[userID]; ok {
		return cart, nil
	}
	cart := entities.Cart{ID: uuid.New(), UserID: userID}
	f.carts[userID] = cart
	return cart, nil
}

func (f *fakeCartRepo) ListItems(cartID string) ([]entities.CartItem, error) {
	return f.items[cartID], nil
}

func (f *fakeCartRepo) FindItem(cartID, productID string) (entities.CartItem, error) {
	for _, item := range f.items[cartID] {
		if item.ProductID.String() == productID {
			return item, nil
		}
	}
	return entities.CartItem{}, repositories.ErrNotFound
}

func (f *fakeCartRepo) AddItem(item entities.CartItem) (entities.CartItem, error) {
	cartID := item.CartID.String()
	f.items[cartID] = append(f.items[cartID], item)
	return item, nil
}

func (f *fakeCartRepo) UpdateItemQuantity(itemID string, quantity int) error {
	for cartID, items := range f.items {
		for i, item := range items {
			if item.ID.String() == itemID {
				f.items[cartID][i].Quantity = quantity
				return nil
			}
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeCartRepo) RemoveItem(cartID, productID string) error {
	items := f.items[cartID]
	for i, item := range items {
		if item.ProductID.String() == productID {
			f.items[cartID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeCartRepo) ClearItems(cartID string) error {
	f.items[cartID] = nil
	return nil
}

// fakeOrderRepo 内存订单仓库
type fakeOrderRepo struct {
	orders []entities.Order
	items  map[string][]entities.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: map[string][]entities.OrderItem{}}
}

func (f *fakeOrderRepo) Create(order entities.Order, items []entities.OrderItem) (entities.Order, error) {
	f.orders = append(f.orders, order)
	f.items[order.ID.String()] = items
	return order, nil
}

func (f *fakeOrderRepo) FindByUser(userID string) ([]entities.Order, error) {
	var result []entities.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) ListItems(orderID string) ([]entities.OrderItem, error) {
	return f.items[orderID], nil
}

// fakeLogRepo 内存审核日志仓库
type fakeLogRepo struct {
	vendorLogs  []entities.VendorApprovalLog
	productLogs []entities.ProductApprovalLog
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{}
}

func (f *fakeLogRepo) CreateVendorLog(log entities.VendorApprovalLog) (entities.VendorApprovalLog, error) {
	f.vendorLogs = append(f.vendorLogs, log)
	return log, nil
}

func (f *fakeLogRepo) ListVendorLogs(vendorID string) ([]entities.VendorApprovalLog, error) {
	var result []entities.VendorApprovalLog
	for _, log := range f.vendorLogs {
		if log.VendorID.String() == vendorID {
			result = append(result, log)
		}
	}
	return result, nil
}

func (f *fakeLogRepo) CreateProductLog(log entities.ProductApprovalLog) (entities.ProductApprovalLog, error) {
	f.productLogs = append(f.productLogs, log)
	return log, nil
}

func (f *fakeLogRepo) ListProductLogs(productID string) ([]entities.ProductApprovalLog, error) {
	var result []entities.ProductApprovalLog
	for _, log := range f.productLogs {
		if log.ProductID.String() == productID {
			result = append(result, log)
		}
	}
	return result, nil
}

// recordingPublisher 记录发布的事件
type recordingPublisher struct {
	events []publishedEvent
}

type publishedEvent struct {
	Type    string
	Payload interface{}
}

func (r *recordingPublisher) Publish(eventType string, payload interface{}) error {
	r.events = append(r.events, publishedEvent{Type: eventType, Payload: payload})
	return nil
}

// recordingNotifier 记录发送的审核结果邮件
type recordingNotifier struct {
	mails []sentMail
}

type sentMail struct {
	To       string
	ShopName string
	Action   string
	Reason   string
}

func (r *recordingNotifier) SendApprovalResult(to, shopName, action, reason string) error {
	r.mails = append(r.mails, sentMail{To: to, ShopName: shopName, Action: action, Reason: reason})
	return nil
}
