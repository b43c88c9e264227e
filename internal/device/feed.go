// Package device принимает от устройства разрешения и координаты и раздает их трекеру.
package device

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/pkg/geo"
)

var ErrNoFix = errors.New("no location fix received")

// WatchOptions - как часто доставлять обновления: по времени или по пройденному расстоянию
type WatchOptions struct {
	MinInterval time.Duration
	MinDistance float64
}

// Subscription - подписка на поток координат
type Subscription interface {
	Unsubscribe()
}

type watcher struct {
	opts          WatchOptions
	callback      func(models.Location)
	last          *models.Location
	lastDelivered time.Time
}

// Feed хранит последние сообщенные устройством разрешения и координату
type Feed struct {
	fixTimeout time.Duration
	now        func() time.Time

	mu                   sync.Mutex
	locationDecided      chan struct{}
	locationGranted      bool
	notificationsGranted bool
	latest               *models.Location
	firstFix             chan struct{}
	watchers             map[int]*watcher
	nextWatcherID        int
}

func NewFeed(fixTimeout time.Duration) *Feed {
	return &Feed{
		fixTimeout:      fixTimeout,
		now:             time.Now,
		locationDecided: make(chan struct{}),
		firstFix:        make(chan struct{}),
		watchers:        make(map[int]*watcher),
	}
}

// ReportPermissions сохраняет решение пользователя. Решение по геолокации фиксируется один раз:
// повторный запрос разрешения внутри приложения не предусмотрен.
func (f *Feed) ReportPermissions(location, notifications bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.notificationsGranted = notifications
	select {
	case <-f.locationDecided:
	default:
		f.locationGranted = location
		close(f.locationDecided)
	}
}

// NotificationsGranted - последнее решение по уведомлениям
func (f *Feed) NotificationsGranted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notificationsGranted
}

// RequestPermission ждет, пока устройство сообщит решение по геолокации
func (f *Feed) RequestPermission(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-f.locationDecided:
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locationGranted, nil
}

// CurrentPosition возвращает последнюю координату или ждет первую не дольше fixTimeout
func (f *Feed) CurrentPosition(ctx context.Context) (models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, f.fixTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		return models.Location{}, fmt.Errorf("%w: %v", ErrNoFix, ctx.Err())
	case <-f.firstFix:
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.latest, nil
}

// Watch подписывает callback на координаты. Обновление доставляется, если с прошлой доставки
// прошло MinInterval или устройство сместилось на MinDistance метров, что наступит раньше.
// Если координата уже известна, она доставляется сразу при подписке и служит точкой отсчета.
func (f *Feed) Watch(_ context.Context, opts WatchOptions, callback func(models.Location)) (Subscription, error) {
	if callback == nil {
		return nil, errors.New("device: watch callback is required")
	}

	f.mu.Lock()
	id := f.nextWatcherID
	f.nextWatcherID++
	w := &watcher{opts: opts, callback: callback}
	var initial *models.Location
	if f.latest != nil {
		loc := *f.latest
		w.last = &loc
		w.lastDelivered = f.now()
		initial = &loc
	}
	f.watchers[id] = w
	f.mu.Unlock()

	if initial != nil {
		callback(*initial)
	}

	return &subscription{feed: f, id: id}, nil
}

// ReportLocation принимает новую координату от устройства
func (f *Feed) ReportLocation(loc models.Location) {
	f.mu.Lock()
	f.latest = &loc
	select {
	case <-f.firstFix:
	default:
		close(f.firstFix)
	}

	now := f.now()
	var deliver []func(models.Location)
	for _, w := range f.watchers {
		if !w.due(loc, now) {
			continue
		}
		delivered := loc
		w.last = &delivered
		w.lastDelivered = now
		deliver = append(deliver, w.callback)
	}
	f.mu.Unlock()

	// callback вызывается вне блокировки: подписчик может обратиться к Feed
	for _, cb := range deliver {
		cb(loc)
	}
}

// Latest - последняя координата или nil
func (f *Feed) Latest() *models.Location {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latest == nil {
		return nil
	}
	loc := *f.latest
	return &loc
}

func (w *watcher) due(loc models.Location, now time.Time) bool {
	if w.last == nil {
		return true
	}
	if now.Sub(w.lastDelivered) >= w.opts.MinInterval {
		return true
	}
	moved := geo.Distance(w.last.Latitude, w.last.Longitude, loc.Latitude, loc.Longitude)
	return moved >= w.opts.MinDistance
}

type subscription struct {
	feed *Feed
	id   int
	once sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.feed.mu.Lock()
		delete(s.feed.watchers, s.id)
		s.feed.mu.Unlock()
	})
}
