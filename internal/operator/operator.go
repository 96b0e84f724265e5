package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-insights/internal/events"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage   *storage.Storage
	queue     chan ActionItem
	publisher events.Publisher
	logger    *logrus.Logger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, publisher events.Publisher, logger *logrus.Logger) *Operator {
	return &Operator{
		storage:   s,
		queue:     queue,
		publisher: publisher,
		logger:    logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	// The caller may have given up while the item sat in the queue.
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	// Rollback and publishing outlive a canceled request.
	detached := context.WithoutCancel(item.ctx)

	if err = item.action.Perform(item.ctx, writer); err != nil {
		if rbErr := writer.Rollback(detached); rbErr != nil {
			o.logger.WithError(rbErr).Warn("Operator.processItem.rollback failed")
		}
		return err
	}

	if err = writer.Commit(detached); err != nil {
		return err
	}

	o.publish(detached, item.action)
	return nil
}

func (o *Operator) publish(ctx context.Context, action actions.IAction) {
	event := action.Event()
	if event == nil {
		return
	}
	if err := o.publisher.Publish(ctx, *event); err != nil {
		o.logger.WithError(err).WithFields(logrus.Fields{
			"kind": event.Kind,
			"id":   event.ID,
		}).Error("Operator.publish.failed")
	}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
