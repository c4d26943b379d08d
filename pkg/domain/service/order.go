package service

import (
	"sync"

	"github.com/sirupsen/logrus"

	"order/pkg/domain/model"
)

type Event interface{ Type() string }
type EventDispatcher interface{ Dispatch(event Event) error }

type OrderService interface {
	AddItemToOrder(order *model.Order, item *model.Item) error
}

func NewOrderService(dispatcher EventDispatcher, logger logrus.FieldLogger) OrderService {
	return &orderService{dispatcher: dispatcher, logger: logger}
}

// orderService serializes item insertion, Order itself does no locking.
type orderService struct {
	mu         sync.Mutex
	dispatcher EventDispatcher
	logger     logrus.FieldLogger
}

func (s *orderService) AddItemToOrder(order *model.Order, item *model.Item) error {
	if order == nil {
		return model.ErrNilOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := order.AddItem(item); err != nil {
		s.logger.WithFields(logrus.Fields{
			"order_id": order.ID(),
			"reason":   err.Error(),
		}).Warn("item rejected")
		return err
	}

	s.dispatchEvents(order)
	return nil
}

func (s *orderService) dispatchEvents(order *model.Order) {
	for _, event := range order.Events() {
		if err := s.dispatcher.Dispatch(event); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"order_id": order.ID(),
				"event":    event.Type(),
			}).Error("failed to dispatch event")
		}
	}
}
