package services

import (
	"testing"
	"time"

	"marketplace/internal/domain/entities"
	"marketplace/internal/messaging"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendorFixture struct {
	svc       *VendorService
	vendors   *fakeVendorRepo
	users     *fakeUserRepo
	products  *fakeProductRepo
	logs      *fakeLogRepo
	publisher *recordingPublisher
	notifier  *recordingNotifier
}

func newVendorFixture() *vendorFixture {
	vendors := newFakeVendorRepo()
	users := newFakeUserRepo()
	products := newFakeProductRepo(vendors)
	logs := newFakeLogRepo()
	publisher := &recordingPublisher{}
	notifier := &recordingNotifier{}

	svc := NewVendorService(vendors, users, products, logs, publisher, notifier, testLogger())
	return &vendorFixture{
		svc:       svc,
		vendors:   vendors,
		users:     users,
		products:  products,
		logs:      logs,
		publisher: publisher,
		notifier:  notifier,
	}
}

func (f *vendorFixture) seedVendor(status entities.ApprovalStatus, blocked bool) entities.VendorProfile {
	user := entities.User{
		ID:     uuid.New().String(),
		Name:   "张三",
		Email:  "vendor@example.com",
		Role:   entities.RoleVendor,
		Status: entities.UserStatusActive,
	}
	f.users.Create(user)

	vendor := entities.VendorProfile{
		ID:             uuid.New(),
		UserID:         user.ID,
		ShopName:       "测试商店",
		BusinessType:   entities.BusinessRetail,
		ApprovalStatus: status,
		IsBlocked:      blocked,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	f.vendors.Create(vendor)
	return vendor
}

func TestVendorApprove(t *testing.T) {
	f := newVendorFixture()
	vendor := f.seedVendor(entities.ApprovalPending, false)

	updated, err := f.svc.Approve(vendor.ID.String(), "admin-1", "资料齐全")
	require.NoError(t, err)
	assert.Equal(t, entities.ApprovalApproved, updated.ApprovalStatus)
	assert.Empty(t, updated.RejectionReason)

	// 写入一条审核日志
	logs, err := f.svc.Logs(vendor.ID.String())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entities.ActionApproved, logs[0].Action)
	assert.Equal(t, "admin-1", logs[0].AdminUserID)

	// 发布事件并发送通知
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, messaging.EventTypeVendorApproved, f.publisher.events[0].Type)
	require.Len(t, f.notifier.mails, 1)
	assert.Equal(t, "vendor@example.com", f.notifier.mails[0].To)
}

func TestVendorApproveNonPending(t *testing.T) {
	f := newVendorFixture()

	for _, status := range []entities.ApprovalStatus{entities.ApprovalApproved, entities.ApprovalRejected} {
		vendor := f.seedVendor(status, false)

		_, err := f.svc.Approve(vendor.ID.String(), "admin-1", "")
		assert.ErrorIs(t, err, ErrVendorNotPending)

		// 状态未变且不写日志
		stored, _ := f.vendors.FindByID(vendor.ID.String())
		assert.Equal(t, status, stored.ApprovalStatus)
		logs, _ := f.svc.Logs(vendor.ID.String())
		assert.Empty(t, logs)
	}
}

func TestVendorReject(t *testing.T) {
	f := newVendorFixture()
	vendor := f.seedVendor(entities.ApprovalPending, false)

	updated, err := f.svc.Reject(vendor.ID.String(), "admin-1", "证件不清晰")
	require.NoError(t, err)
	assert.Equal(t, entities.ApprovalRejected, updated.ApprovalStatus)
	assert.Equal(t, "证件不清晰", updated.RejectionReason)

	logs, _ := f.svc.Logs(vendor.ID.String())
	require.Len(t, logs, 1)
	assert.Equal(t, entities.ActionRejected, logs[0].Action)
}

func TestVendorRejectRequiresReason(t *testing.T) {
	f := newVendorFixture()
	vendor := f.seedVendor(entities.ApprovalPending, false)

	_, err := f.svc.Reject(vendor.ID.String(), "admin-1", "")
	assert.ErrorIs(t, err, ErrReasonRequired)

	stored, _ := f.vendors.FindByID(vendor.ID.String())
	assert.Equal(t, entities.ApprovalPending, stored.ApprovalStatus)
}

func TestVendorRejectNonPending(t *testing.T) {
	f := newVendorFixture()
	vendor := f.seedVendor(entities.ApprovalApproved, false)

	_, err := f.svc.Reject(vendor.ID.String(), "admin-1", "理由")
	assert.ErrorIs(t, err, ErrVendorNotPending)
}

func TestVendorBlockCascadesProducts(t *testing.T) {
	f := newVendorFixture()
	vendor := f.seedVendor(entities.ApprovalApproved, false)

	for _, name := range []string{"商品A", "商品B"} {
		f.products.Create(entities.Product{
			ID:       uuid.New(),
			VendorID: vendor.ID,
			Name:     name,
			Status:   entities.ProductStatusActive,
		})
	}

	updated, err := f.svc.Block(vendor.ID.String(), "admin-1", "售假")
	require.NoError(t, err)
	assert.True(t, updated.IsBlocked)
	assert.Equal(t, "售假", updated.BlockedReason)

	// 商品全部被连带封禁，封禁原因带上商家封禁来源
	products, _ := f.products.FindByVendor(vendor.ID.String())
	require.Len(t, products, 2)
	for _, p := range products {
		assert.True(t, p.IsBlocked)
		assert.Equal(t, "vendor blocked: 售假", p.BlockedReason)
	}

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, messaging.EventTypeVendorBlocked, f.publisher.events[0].Type)
}

func TestVendorBlockRequiresReason(t *testing.T) {
	f := newVendorFixture()
	vendor := f.seedVendor(entities.ApprovalApproved, false)

	_, err := f.svc.Block(vendor.ID.String(), "admin-1", "")
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestVendorUnblockDoesNotCascade(t *testing.T) {
	f := newVendorFixture()
	vendor := f.seedVendor(entities.ApprovalApproved, false)

	f.products.Create(entities.Product{
		ID:       uuid.New(),
		VendorID: vendor.ID,
		Name:     "商品A",
		Status:   entities.ProductStatusActive,
	})

	_, err := f.svc.Block(vendor.ID.String(), "admin-1", "售假")
	require.NoError(t, err)

	updated, err := f.svc.Unblock(vendor.ID.String(), "admin-1", "整改完成")
	require.NoError(t, err)
	assert.False(t, updated.IsBlocked)
	assert.Empty(t, updated.BlockedReason)

	// 商品封禁不随商家解封恢复
	products, _ := f.products.FindByVendor(vendor.ID.String())
	require.Len(t, products, 1)
	assert.True(t, products[0].IsBlocked)

	logs, _ := f.svc.Logs(vendor.ID.String())
	assert.Len(t, logs, 2)
}

func TestVendorCreateProfilePending(t *testing.T) {
	f := newVendorFixture()

	vendor, err := f.svc.CreateProfile("user-1", entities.RegisterVendorDTO{
		ShopName:     "新店",
		BusinessType: entities.BusinessRetail,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ApprovalPending, vendor.ApprovalStatus)
	assert.False(t, vendor.CanSell())
}
