package services

import (
	"testing"

	"marketplace/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	vendors := newFakeVendorRepo()
	products := newFakeProductRepo(vendors)
	svc := NewAdminService(vendors, products, testLogger())

	seed := func(status entities.ApprovalStatus, blocked bool) entities.VendorProfile {
		v := entities.VendorProfile{
			ID:             uuid.New(),
			UserID:         uuid.New().String(),
			ApprovalStatus: status,
			IsBlocked:      blocked,
		}
		vendors.Create(v)
		return v
	}

	approved := seed(entities.ApprovalApproved, false)
	seed(entities.ApprovalApproved, true)
	seed(entities.ApprovalPending, false)
	seed(entities.ApprovalRejected, false)

	products.Create(entities.Product{ID: uuid.New(), VendorID: approved.ID, Name: "A", Status: entities.ProductStatusActive})
	products.Create(entities.Product{ID: uuid.New(), VendorID: approved.ID, Name: "B", Status: entities.ProductStatusActive, IsBlocked: true})

	stats, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalVendors)
	assert.Equal(t, 1, stats.PendingVendors)
	assert.Equal(t, 2, stats.ApprovedVendors)
	assert.Equal(t, 1, stats.RejectedVendors)
	assert.Equal(t, 1, stats.BlockedVendors)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.BlockedProducts)
}
