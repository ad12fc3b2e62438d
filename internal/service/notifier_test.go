package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectik/connectik_api/internal/models"
)

type recordingNotifier struct {
	events []string
}

func (r *recordingNotifier) NotifyContactCreated(s *models.ContactSubmission) {
	r.events = append(r.events, "contact:"+s.ID)
}

func (r *recordingNotifier) NotifyOrderCreated(o *models.Order) {
	r.events = append(r.events, "order:"+o.ID)
}

func (r *recordingNotifier) NotifyOrderStatusChanged(o *models.Order) {
	r.events = append(r.events, "status:"+string(o.Status))
}

func TestServices_Notify(t *testing.T) {
	ctx := context.Background()
	rec := &recordingNotifier{}

	contacts := NewContactService(newFakeContactStore())
	contacts.SetNotifier(rec)
	submission, err := contacts.Submit(ctx, &models.CreateContactInput{
		FirstName: "Awa", LastName: "Diop", Email: "awa@example.com", Message: "Un message assez long.",
	})
	require.NoError(t, err)

	orders := NewOrderService(newFakeOrderStore(newFakeProductStore()))
	orders.SetNotifier(rec)
	order, err := orders.Create(ctx, &models.CreateOrderInput{
		CustomerEmail: "c@example.com", CustomerName: "Client", ShippingAddress: "Dakar", TotalAmount: "10.00",
	})
	require.NoError(t, err)

	_, err = orders.UpdateStatus(ctx, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	_, err = orders.UpdateStatus(ctx, "missing", models.OrderStatusShipped)
	require.Error(t, err)

	assert.Equal(t, []string{"contact:" + submission.ID, "order:" + order.ID, "status:shipped"}, rec.events)
}
