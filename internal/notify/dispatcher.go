// Package notify решает, как сообщить пользователю о результатах оценки, и доставляет уведомления.
package notify

import (
	"context"
	"time"

	"github.com/shenikar/dont_forget_tracker/internal/metrics"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/internal/proximity"
	"github.com/sirupsen/logrus"
)

// Каналы доставки для метрик
const (
	channelPush   = "push"
	channelInApp  = "in_app"
	channelFailed = "failed"
)

// Notifier - платформенная доставка уведомлений и вибрации
type Notifier interface {
	RequestPermission(ctx context.Context) (bool, error)
	Send(ctx context.Context, n models.Notification) (string, error)
	Vibrate(ctx context.Context, v models.Vibration) error
}

// Alerter показывает модальное сообщение внутри приложения
type Alerter interface {
	ShowAlert(ctx context.Context, alert models.InAppAlert) error
}

// PremiumChecker - проверка премиум-доступа
type PremiumChecker interface {
	IsPremium(ctx context.Context) (bool, error)
}

// Dispatcher выбирает форму уведомления и отправляет его. Ошибки доставки только логируются.
type Dispatcher struct {
	notifier Notifier
	alerter  Alerter
	premium  PremiumChecker
	platform string
	logger   *logrus.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewDispatcher создает диспетчер. notifier может быть nil: тогда используются только алерты приложения.
func NewDispatcher(notifier Notifier, alerter Alerter, premium PremiumChecker, platform string, logger *logrus.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		alerter:  alerter,
		premium:  premium,
		platform: platform,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// Dispatch уведомляет о новых уходах и возвращениях
func (d *Dispatcher) Dispatch(ctx context.Context, cls proximity.Classification) {
	if len(cls.ToAlert) > 0 {
		d.dispatchAway(ctx, cls.ToAlert)
	}
	if len(cls.ToReturn) > 0 {
		d.dispatchReturned(ctx, cls.ToReturn)
	}
}

func (d *Dispatcher) dispatchAway(ctx context.Context, ts []proximity.Transition) {
	log := d.logger.WithFields(logrus.Fields{
		"service":  "notify",
		"method":   "dispatchAway",
		"item_ids": transitionIDs(ts),
	})

	notification := AwayNotification(ts[0])
	pattern := PatternAway
	if len(ts) > 1 {
		notification = MultipleAwayNotification(ts)
		pattern = PatternMultiple
	}

	delivered := false
	if d.notificationsEnabled(ctx, log) {
		deliveryID, err := d.notifier.Send(ctx, notification)
		if err != nil {
			log.WithError(err).Warn("Failed to send away notification, falling back to in-app alert")
		} else {
			delivered = true
			d.metrics.Notifications.WithLabelValues(notification.Type, channelPush).Inc()
			log.WithField("delivery_id", deliveryID).Info("Away notification sent")
		}
	}

	if !delivered {
		if err := d.alerter.ShowAlert(ctx, AwayAlert(ts, d.now())); err != nil {
			d.metrics.Notifications.WithLabelValues(notification.Type, channelFailed).Inc()
			log.WithError(err).Error("Failed to show in-app away alert")
		} else {
			d.metrics.Notifications.WithLabelValues(notification.Type, channelInApp).Inc()
			log.Info("In-app away alert shown")
		}
	}

	d.vibrate(ctx, pattern, log)
}

func (d *Dispatcher) dispatchReturned(ctx context.Context, ts []proximity.Transition) {
	log := d.logger.WithFields(logrus.Fields{
		"service":  "notify",
		"method":   "dispatchReturned",
		"item_ids": transitionIDs(ts),
	})

	if !d.notificationsEnabled(ctx, log) {
		return
	}

	premium, err := d.premium.IsPremium(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to check premium status, skipping return notifications")
		return
	}
	if !premium {
		log.Debug("Return notifications are a premium feature")
		return
	}

	for _, t := range ts {
		n := ReturnedNotification(t.Item)
		deliveryID, err := d.notifier.Send(ctx, n)
		if err != nil {
			d.metrics.Notifications.WithLabelValues(n.Type, channelFailed).Inc()
			log.WithError(err).WithField("item_id", t.Item.ID).Warn("Failed to send return notification")
			continue
		}
		d.metrics.Notifications.WithLabelValues(n.Type, channelPush).Inc()
		log.WithField("delivery_id", deliveryID).WithField("item_id", t.Item.ID).Info("Return notification sent")
	}

	d.vibrate(ctx, PatternReturned, log)
}

// notificationsEnabled - доступен ли notifier и выдано ли разрешение
func (d *Dispatcher) notificationsEnabled(ctx context.Context, log *logrus.Entry) bool {
	if d.notifier == nil {
		return false
	}
	granted, err := d.notifier.RequestPermission(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to check notification permission")
		return false
	}
	return granted
}

func (d *Dispatcher) vibrate(ctx context.Context, pattern string, log *logrus.Entry) {
	if d.notifier == nil {
		return
	}
	if err := d.notifier.Vibrate(ctx, VibrationFor(d.platform, pattern)); err != nil {
		log.WithError(err).WithField("pattern", pattern).Warn("Failed to vibrate")
	}
}
