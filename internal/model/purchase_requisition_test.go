package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequisitionStatusSet(t *testing.T) {
	for _, s := range []RequisitionStatus{RequisitionDraft, RequisitionPendingApproval, RequisitionApproved, RequisitionRejected} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, RequisitionStatus("archived").Valid())
	assert.False(t, RequisitionStatus("").Valid())
}

func TestRequisitionStatusTerminal(t *testing.T) {
	assert.False(t, RequisitionDraft.Terminal())
	assert.False(t, RequisitionPendingApproval.Terminal())
	assert.True(t, RequisitionApproved.Terminal())
	assert.True(t, RequisitionRejected.Terminal())
}

func TestItemSum(t *testing.T) {
	r := PurchaseRequisition{
		Items: []RequisitionItem{
			{Quantity: 3, EstimatedCost: decimal.NewFromFloat(10.50)},
			{Quantity: 2, EstimatedCost: decimal.NewFromInt(100)},
		},
	}
	assert.True(t, decimal.NewFromFloat(231.50).Equal(r.ItemSum()))

	var empty PurchaseRequisition
	assert.True(t, empty.ItemSum().IsZero())
}
