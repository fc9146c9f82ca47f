package services

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/cache"
	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"
	"marketplace/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService 购物车服务。购物车行项只存商品ID和数量，
// 名称与价格在查看时取商品当前值重新计算。
type CartService struct {
	repo        repositories.CartRepository
	productRepo repositories.ProductRepository
	vendorRepo  repositories.VendorRepository
	cache       cache.CartCache
	logger      logger.Logger
}

// NewCartService 创建购物车服务，cache可为nil
func NewCartService(
	repo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	vendorRepo repositories.VendorRepository,
	cartCache cache.CartCache,
	logger logger.Logger,
) *CartService {
	return &CartService{
		repo:        repo,
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
		cache:       cartCache,
		logger:      logger,
	}
}

// purchasable 校验商品当前可购买
func (s *CartService) purchasable(productID string) (entities.Product, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return entities.Product{}, err
	}

	vendor, err := s.vendorRepo.FindByID(product.VendorID.String())
	if err != nil {
		return entities.Product{}, err
	}

	if product.Status != entities.ProductStatusActive || !product.Purchasable(vendor) {
		return entities.Product{}, repositories.ErrNotFound
	}

	return product, nil
}

// View 购物车视图。命中缓存直接返回，否则查库重算并回填缓存。
// 已下架或不可购买的商品行在视图中被跳过。
func (s *CartService) View(ctx context.Context, userID string) (entities.CartView, error) {
	if s.cache != nil {
		view, err := s.cache.Get(ctx, userID)
		if err == nil {
			return *view, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WithError(err).Warn("读取购物车缓存失败: user=%s", userID)
		}
	}

	view, err := s.buildView(userID)
	if err != nil {
		return entities.CartView{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, &view); err != nil {
			s.logger.WithError(err).Warn("写入购物车缓存失败: user=%s", userID)
		}
	}

	return view, nil
}

func (s *CartService) buildView(userID string) (entities.CartView, error) {
	cart, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return entities.CartView{}, err
	}

	items, err := s.repo.ListItems(cart.ID.String())
	if err != nil {
		return entities.CartView{}, err
	}

	view := entities.CartView{
		Items: make([]entities.CartLine, 0, len(items)),
		Total: decimal.Zero,
	}

	for _, item := range items {
		product, err := s.purchasable(item.ProductID.String())
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return entities.CartView{}, err
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, entities.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		view.ItemsCount += item.Quantity
		view.Total = view.Total.Add(lineTotal)
	}

	return view, nil
}

// AddItem 加入购物车。已有该商品则数量累加。
func (s *CartService) AddItem(ctx context.Context, userID string, dto entities.AddCartItemDTO) error {
	quantity := dto.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return ErrQuantityInvalid
	}

	product, err := s.purchasable(dto.ProductID)
	if err != nil {
		return err
	}

	cart, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return err
	}

	existing, err := s.repo.FindItem(cart.ID.String(), product.ID.String())
	switch {
	case err == nil:
		err = s.repo.UpdateItemQuantity(existing.ID.String(), existing.Quantity+quantity)
	case errors.Is(err, repositories.ErrNotFound):
		_, err = s.repo.AddItem(entities.CartItem{
			ID:        uuid.New(),
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  quantity,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	}
	if err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

// UpdateItem 修改购物车中某商品的数量
func (s *CartService) UpdateItem(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return ErrQuantityInvalid
	}

	cart, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return err
	}

	item, err := s.repo.FindItem(cart.ID.String(), productID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateItemQuantity(item.ID.String(), quantity); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

// RemoveItem 从购物车移除商品
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) error {
	cart, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return err
	}

	if err := s.repo.RemoveItem(cart.ID.String(), productID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, userID string) error {
	cart, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return err
	}

	if err := s.repo.ClearItems(cart.ID.String()); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *CartService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.logger.WithError(err).Warn("清除购物车缓存失败: user=%s", userID)
	}
}
