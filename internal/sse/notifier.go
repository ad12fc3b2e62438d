package sse

import (
	"strings"
	"time"

	"github.com/connectik/connectik_api/internal/models"
)

// Notifier is the interface services use to emit back-office events.
type Notifier interface {
	NotifyContactCreated(s *models.ContactSubmission)
	NotifyOrderCreated(o *models.Order)
	NotifyOrderStatusChanged(o *models.Order)
}

// HubNotifier implements Notifier using the SSE Hub.
type HubNotifier struct {
	hub *Hub
	now func() time.Time
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub, now: time.Now}
}

func (n *HubNotifier) NotifyContactCreated(s *models.ContactSubmission) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(&Event{
		Event:     EventContactCreated,
		EntityID:  s.ID,
		Summary:   strings.TrimSpace(s.FirstName+" "+s.LastName) + " <" + s.Email + ">",
		Timestamp: n.now(),
	})
}

func (n *HubNotifier) NotifyOrderCreated(o *models.Order) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(orderToEvent(EventOrderCreated, o, n.now()))
}

func (n *HubNotifier) NotifyOrderStatusChanged(o *models.Order) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(orderToEvent(EventOrderStatusChanged, o, n.now()))
}

func orderToEvent(eventType EventType, o *models.Order, at time.Time) *Event {
	return &Event{
		Event:     eventType,
		EntityID:  o.ID,
		Summary:   o.CustomerName,
		Status:    string(o.Status),
		Amount:    o.TotalAmount,
		Timestamp: at,
	}
}

// NopNotifier is a no-op implementation for when SSE is not needed.
type NopNotifier struct{}

func (NopNotifier) NotifyContactCreated(*models.ContactSubmission) {}
func (NopNotifier) NotifyOrderCreated(*models.Order)               {}
func (NopNotifier) NotifyOrderStatusChanged(*models.Order)         {}
