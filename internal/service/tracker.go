package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/dont_forget_tracker/internal/catalog"
	"github.com/shenikar/dont_forget_tracker/internal/device"
	"github.com/shenikar/dont_forget_tracker/internal/entitlement"
	"github.com/shenikar/dont_forget_tracker/internal/metrics"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/internal/proximity"
	"github.com/shenikar/dont_forget_tracker/internal/state"
	"github.com/sirupsen/logrus"
)

var (
	ErrLocationUnavailable = errors.New("location not available")
	ErrItemNotFound        = errors.New("item not found")
	ErrInvalidItem         = errors.New("invalid item")
	ErrUnknownIcon         = errors.New("unknown icon")
	ErrPersistence         = errors.New("items kept for this session but could not be persisted")
	ErrTrackerStopped      = errors.New("tracker stopped")
)

// ItemStore определяет контракт для сохранения коллекции предметов
type ItemStore interface {
	Load(ctx context.Context) ([]models.TrackedItem, error)
	Save(ctx context.Context, items []models.TrackedItem) error
}

// LocationProvider - источник координат устройства
type LocationProvider interface {
	RequestPermission(ctx context.Context) (bool, error)
	CurrentPosition(ctx context.Context) (models.Location, error)
	Watch(ctx context.Context, opts device.WatchOptions, callback func(models.Location)) (device.Subscription, error)
}

// Dispatcher уведомляет пользователя о переходах
type Dispatcher interface {
	Dispatch(ctx context.Context, cls proximity.Classification)
}

// PermissionRequester - запрос разрешения на уведомления
type PermissionRequester interface {
	RequestPermission(ctx context.Context) (bool, error)
}

// Entitlements - премиум-доступ
type Entitlements interface {
	IsPremium(ctx context.Context) (bool, error)
	SetPremium(ctx context.Context, premium bool) error
}

// AlertInbox - модальные сообщения приложения
type AlertInbox interface {
	ShowAlert(ctx context.Context, alert models.InAppAlert) error
	Drain(ctx context.Context) ([]models.InAppAlert, error)
}

// FixRecorder - журнал полученных координат
type FixRecorder interface {
	SaveLocationFix(ctx context.Context, fix *models.LocationFix) error
	GetLocationFixStats(ctx context.Context, minutes int) (int, error)
}

// DeviceService принимает от устройства разрешения и координаты
type DeviceService interface {
	ReportPermissions(location, notifications bool)
	ReportLocation(loc models.Location)
}

// TrackerService определяет контракт бизнес-логики трекера
type TrackerService interface {
	CreateItem(ctx context.Context, input models.ItemInput) (models.TrackedItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input models.ItemInput) (models.TrackedItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	GetItem(ctx context.Context, id uuid.UUID) (models.TrackedItem, error)
	ListItems(ctx context.Context) ([]models.TrackedItem, error)
	Status(ctx context.Context) Status
	PendingAlerts(ctx context.Context) ([]models.InAppAlert, error)
	PremiumStatus(ctx context.Context) (PremiumStatus, error)
	SetPremium(ctx context.Context, premium bool) (PremiumStatus, error)
	GetStats(ctx context.Context) (int, error)
}

// State - состояние цикла отслеживания
type State string

const (
	StateUninitialized       State = "uninitialized"
	StatePermissionRequested State = "permission_requested"
	StateDenied              State = "denied"
	StateTracking            State = "tracking"
)

// Status - снимок состояния трекера
type Status struct {
	State         State
	Location      *models.Location
	ItemCount     int
	AwayCount     int
	NotifiedCount int
}

// PremiumStatus - состояние премиум-доступа и лимита бесплатной версии
type PremiumStatus struct {
	Premium   bool
	ItemCount int
	ItemLimit int
	Message   string
}

// TrackerOptions - параметры цикла отслеживания
type TrackerOptions struct {
	Watch              device.WatchOptions
	StatsWindowMinutes int
}

// Tracker владеет коллекцией предметов, множеством уведомленных и координатой устройства.
// Все изменения выполняются одной горутиной цикла событий в порядке поступления.
type Tracker struct {
	store        ItemStore
	locations    LocationProvider
	dispatcher   Dispatcher
	notifier     PermissionRequester
	entitlements Entitlements
	inbox        AlertInbox
	fixes        FixRecorder
	policy       *entitlement.Policy
	catalog      *catalog.Catalog
	logger       *logrus.Logger
	metrics      *metrics.Metrics
	opts         TrackerOptions
	now          func() time.Time

	events  chan func(context.Context)
	done    chan struct{}
	started atomic.Bool

	mu       sync.RWMutex
	state    State
	items    []models.TrackedItem
	notified models.NotifiedSet
	location *models.Location
	sub      device.Subscription
	stopped  bool
}

func NewTracker(
	store ItemStore,
	locations LocationProvider,
	dispatcher Dispatcher,
	notifier PermissionRequester,
	entitlements Entitlements,
	inbox AlertInbox,
	fixes FixRecorder,
	policy *entitlement.Policy,
	cat *catalog.Catalog,
	logger *logrus.Logger,
	m *metrics.Metrics,
	opts TrackerOptions,
) *Tracker {
	return &Tracker{
		store:        store,
		locations:    locations,
		dispatcher:   dispatcher,
		notifier:     notifier,
		entitlements: entitlements,
		inbox:        inbox,
		fixes:        fixes,
		policy:       policy,
		catalog:      cat,
		logger:       logger,
		metrics:      m,
		opts:         opts,
		now:          time.Now,
		events:       make(chan func(context.Context), 64),
		done:         make(chan struct{}),
		state:        StateUninitialized,
		items:        []models.TrackedItem{},
		notified:     models.NewNotifiedSet(),
	}
}

// Run загружает предметы, запрашивает разрешение и обрабатывает события до отмены ctx.
// Отмена ctx - единственная точка остановки: подписка на координаты снимается.
func (t *Tracker) Run(ctx context.Context) error {
	if !t.started.CompareAndSwap(false, true) {
		return errors.New("service: tracker is already running")
	}
	defer close(t.done)

	log := t.logger.WithFields(logrus.Fields{
		"service": "tracker",
		"method":  "Run",
	})

	items, err := t.store.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load items, starting with an empty collection")
		items = []models.TrackedItem{}
	}
	t.commit(items, models.NewNotifiedSet())
	log.WithField("count", len(items)).Info("Items loaded")

	t.setState(StatePermissionRequested)
	go t.startTracking(ctx)

	for {
		select {
		case <-ctx.Done():
			t.teardown()
			log.Info("Tracker stopped")
			return nil
		case fn := <-t.events:
			fn(ctx)
		}
	}
}

// startTracking проходит PermissionRequested -> Denied | Tracking
func (t *Tracker) startTracking(ctx context.Context) {
	log := t.logger.WithFields(logrus.Fields{
		"service": "tracker",
		"method":  "startTracking",
	})

	granted, err := t.locations.RequestPermission(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.WithError(err).Warn("Location permission request failed")
		granted = false
	}

	t.checkNotificationPermission(ctx, log)

	if !granted {
		t.setState(StateDenied)
		log.Warn("Location permission denied")
		t.showAlert(ctx, "Permission Required", "Location permission is required to use this app.")
		return
	}
	t.setState(StateTracking)

	fix, err := t.locations.CurrentPosition(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.WithError(err).Warn("Failed to get initial location fix")
		t.showAlert(ctx, "Location Error", "Unable to get your location.")
	} else if err := t.submit(ctx, func(loopCtx context.Context) { t.handleLocation(loopCtx, fix) }); err != nil {
		return
	}

	sub, err := t.locations.Watch(ctx, t.opts.Watch, func(loc models.Location) {
		// после остановки submit вернет ошибку, и обновление будет проигнорировано
		_ = t.submit(ctx, func(loopCtx context.Context) { t.handleLocation(loopCtx, loc) })
	})
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to location updates")
		t.showAlert(ctx, "Location Error", "Unable to get your location.")
		return
	}

	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	t.sub = sub
	t.mu.Unlock()
	log.Info("Subscribed to location updates")
}

func (t *Tracker) checkNotificationPermission(ctx context.Context, log *logrus.Entry) {
	if t.notifier == nil {
		return
	}
	granted, err := t.notifier.RequestPermission(ctx)
	if err != nil {
		log.WithError(err).Warn("Notification permission request failed")
	}
	if !granted {
		log.Info("Notifications disabled, alerts will be shown in-app")
		t.showAlert(ctx, "Notifications Disabled", "Alerts will be shown inside the app instead of notifications.")
	}
}

func (t *Tracker) teardown() {
	t.mu.Lock()
	t.stopped = true
	sub := t.sub
	t.sub = nil
	t.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// submit ставит событие в очередь цикла
func (t *Tracker) submit(ctx context.Context, fn func(context.Context)) error {
	select {
	case <-t.done:
		return ErrTrackerStopped
	default:
	}

	select {
	case t.events <- fn:
		return nil
	case <-t.done:
		return ErrTrackerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// do выполняет fn в цикле событий и ждет результата
func (t *Tracker) do(ctx context.Context, fn func(context.Context) error) error {
	reply := make(chan error, 1)
	if err := t.submit(ctx, func(loopCtx context.Context) { reply <- fn(loopCtx) }); err != nil {
		return err
	}

	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-t.done:
		select {
		case err := <-reply:
			return err
		default:
			return ErrTrackerStopped
		}
	}
}

func (t *Tracker) handleLocation(ctx context.Context, loc models.Location) {
	t.mu.Lock()
	t.location = &loc
	t.mu.Unlock()

	if _, err := t.evaluate(ctx); err != nil {
		t.logger.WithError(err).WithField("service", "tracker").Warn("Evaluation finished with errors")
	}
	t.recordFix(ctx, loc)
}

// evaluate выполняет конвейер оценка -> уведомление -> сохранение.
// Вызывается только из цикла событий. saved сообщает, что коллекция была сохранена.
func (t *Tracker) evaluate(ctx context.Context) (saved bool, err error) {
	loc, items, notified := t.location, t.items, t.notified
	if loc == nil || len(items) == 0 {
		return false, nil
	}

	cls := proximity.Evaluate(loc, items, notified)
	t.metrics.Evaluations.Inc()
	if cls.Empty() {
		return false, nil
	}

	t.logger.WithFields(logrus.Fields{
		"service":   "tracker",
		"method":    "evaluate",
		"to_alert":  len(cls.ToAlert),
		"to_return": len(cls.ToReturn),
	}).Info("Proximity transitions detected")

	t.dispatcher.Dispatch(ctx, cls)

	updated, nextNotified := state.ApplyTransitions(items, cls, notified)
	t.commit(updated, nextNotified)
	t.metrics.Transitions.WithLabelValues("away").Add(float64(len(cls.ToAlert)))
	t.metrics.Transitions.WithLabelValues("returned").Add(float64(len(cls.ToReturn)))

	if err := t.persist(ctx, updated); err != nil {
		return false, err
	}
	return true, nil
}

func (t *Tracker) persist(ctx context.Context, items []models.TrackedItem) error {
	if err := t.store.Save(ctx, items); err != nil {
		t.metrics.StorageFailures.Inc()
		t.logger.WithError(err).WithField("service", "tracker").Error("Failed to persist items")
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// commit публикует новый снимок для читателей
func (t *Tracker) commit(items []models.TrackedItem, notified models.NotifiedSet) {
	away := 0
	for _, item := range items {
		if item.IsAway {
			away++
		}
	}

	t.mu.Lock()
	t.items = items
	t.notified = notified
	t.mu.Unlock()

	t.metrics.TrackedItems.Set(float64(len(items)))
	t.metrics.AwayItems.Set(float64(away))
}

// saveAndEvaluate сохраняет изменения и сразу перепроверяет состояние алертов
func (t *Tracker) saveAndEvaluate(ctx context.Context, items []models.TrackedItem) error {
	saveErr := t.persist(ctx, items)
	saved, evalErr := t.evaluate(ctx)
	if saved {
		// оценка уже сохранила коллекцию целиком
		return nil
	}
	if evalErr != nil {
		return evalErr
	}
	return saveErr
}

func (t *Tracker) recordFix(ctx context.Context, loc models.Location) {
	if t.fixes == nil {
		return
	}
	away := 0
	for _, item := range t.items {
		if item.IsAway {
			away++
		}
	}
	fix := &models.LocationFix{Latitude: loc.Latitude, Longitude: loc.Longitude, AwayCount: away}
	if err := t.fixes.SaveLocationFix(ctx, fix); err != nil {
		t.logger.WithError(err).WithField("service", "tracker").Warn("Failed to record location fix")
	}
}

func (t *Tracker) showAlert(ctx context.Context, title, message string) {
	alert := models.InAppAlert{Title: title, Message: message, CreatedAt: t.now().UTC()}
	if err := t.inbox.ShowAlert(ctx, alert); err != nil {
		t.logger.WithError(err).WithField("title", title).Error("Failed to show in-app alert")
	}
}

func (t *Tracker) setState(s State) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
	t.logger.WithField("service", "tracker").WithField("state", s).Info("Tracking state changed")
}

func (t *Tracker) isPremium(ctx context.Context, log *logrus.Entry) bool {
	premium, err := t.entitlements.IsPremium(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to check premium status, assuming free version")
		return false
	}
	return premium
}

func (t *Tracker) validateInput(input models.ItemInput) (models.ItemInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if input.AlertDistance <= 0 {
		return input, fmt.Errorf("%w: alert distance must be positive", ErrInvalidItem)
	}
	if !t.catalog.HasIcon(input.IconID) {
		return input, fmt.Errorf("%w: %q", ErrUnknownIcon, input.IconID)
	}
	return input, nil
}

// CreateItem сохраняет предмет в текущей координате устройства
func (t *Tracker) CreateItem(ctx context.Context, input models.ItemInput) (models.TrackedItem, error) {
	log := t.logger.WithFields(logrus.Fields{
		"service": "tracker",
		"method":  "CreateItem",
		"name":    input.Name,
	})
	log.Info("Attempting to create a new item")

	input, err := t.validateInput(input)
	if err != nil {
		log.WithError(err).Warn("Invalid item input")
		return models.TrackedItem{}, err
	}

	var created models.TrackedItem
	err = t.do(ctx, func(loopCtx context.Context) error {
		if t.location == nil {
			return ErrLocationUnavailable
		}

		premium := t.isPremium(loopCtx, log)
		if err := t.policy.CanAddItem(premium, len(t.items)); err != nil {
			return err
		}
		if err := t.policy.CheckDistance(premium, input.AlertDistance); err != nil {
			return err
		}

		loc := *t.location
		created = models.TrackedItem{
			ID:            uuid.New(),
			Name:          input.Name,
			IconID:        input.IconID,
			Location:      &loc,
			AlertDistance: input.AlertDistance,
			IsAway:        false,
			CreatedAt:     t.now().UTC(),
		}
		items := append(models.CloneItems(t.items), created)
		t.commit(items, t.notified)

		return t.saveAndEvaluate(loopCtx, items)
	})
	if err != nil && !errors.Is(err, ErrPersistence) {
		log.WithError(err).Warn("Failed to create item")
		return models.TrackedItem{}, fmt.Errorf("service: could not create item: %w", err)
	}
	if err != nil {
		return created, fmt.Errorf("service: could not create item: %w", err)
	}

	log.WithField("item_id", created.ID).Info("Item created successfully")
	return created, nil
}

// UpdateItem меняет имя, иконку и радиус. Координата и дата создания сохраняются,
// отслеживание предмета начинается заново с состояния "рядом".
func (t *Tracker) UpdateItem(ctx context.Context, id uuid.UUID, input models.ItemInput) (models.TrackedItem, error) {
	log := t.logger.WithFields(logrus.Fields{
		"service": "tracker",
		"method":  "UpdateItem",
		"item_id": id,
	})
	log.Info("Attempting to update item")

	input, err := t.validateInput(input)
	if err != nil {
		log.WithError(err).Warn("Invalid item input")
		return models.TrackedItem{}, err
	}

	var edited models.TrackedItem
	err = t.do(ctx, func(loopCtx context.Context) error {
		if err := t.policy.CheckDistance(t.isPremium(loopCtx, log), input.AlertDistance); err != nil {
			return err
		}

		items, notified, item, ok := state.EditItem(t.items, id, input, t.notified)
		if !ok {
			return ErrItemNotFound
		}
		edited = item
		t.commit(items, notified)

		err := t.saveAndEvaluate(loopCtx, items)
		// оценка могла сразу пометить предмет как оставленный
		for _, current := range t.items {
			if current.ID == id {
				edited = current
				break
			}
		}
		return err
	})
	if err != nil && !errors.Is(err, ErrPersistence) {
		log.WithError(err).Warn("Failed to update item")
		return models.TrackedItem{}, fmt.Errorf("service: could not update item: %w", err)
	}
	if err != nil {
		return edited, fmt.Errorf("service: could not update item: %w", err)
	}

	log.Info("Item updated successfully")
	return edited, nil
}

// DeleteItem удаляет предмет и забывает о его алертах
func (t *Tracker) DeleteItem(ctx context.Context, id uuid.UUID) error {
	log := t.logger.WithFields(logrus.Fields{
		"service": "tracker",
		"method":  "DeleteItem",
		"item_id": id,
	})
	log.Info("Attempting to delete item")

	err := t.do(ctx, func(loopCtx context.Context) error {
		items, notified, ok := state.RemoveItem(t.items, id, t.notified)
		if !ok {
			return ErrItemNotFound
		}
		t.commit(items, notified)

		return t.saveAndEvaluate(loopCtx, items)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to delete item")
		return fmt.Errorf("service: could not delete item: %w", err)
	}

	log.Info("Item deleted successfully")
	return nil
}

// GetItem возвращает предмет из последнего зафиксированного снимка
func (t *Tracker) GetItem(_ context.Context, id uuid.UUID) (models.TrackedItem, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, item := range t.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.TrackedItem{}, ErrItemNotFound
}

func (t *Tracker) ListItems(_ context.Context) ([]models.TrackedItem, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return models.CloneItems(t.items), nil
}

func (t *Tracker) Status(_ context.Context) Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	status := Status{
		State:         t.state,
		ItemCount:     len(t.items),
		NotifiedCount: len(t.notified),
	}
	if t.location != nil {
		loc := *t.location
		status.Location = &loc
	}
	for _, item := range t.items {
		if item.IsAway {
			status.AwayCount++
		}
	}
	return status
}

// PendingAlerts забирает накопившиеся модальные сообщения
func (t *Tracker) PendingAlerts(ctx context.Context) ([]models.InAppAlert, error) {
	alerts, err := t.inbox.Drain(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not read in-app alerts: %w", err)
	}
	return alerts, nil
}

func (t *Tracker) PremiumStatus(ctx context.Context) (PremiumStatus, error) {
	premium, err := t.entitlements.IsPremium(ctx)
	if err != nil {
		return PremiumStatus{}, fmt.Errorf("service: could not read premium status: %w", err)
	}
	return t.premiumStatus(premium), nil
}

func (t *Tracker) SetPremium(ctx context.Context, premium bool) (PremiumStatus, error) {
	log := t.logger.WithFields(logrus.Fields{
		"service": "tracker",
		"method":  "SetPremium",
		"premium": premium,
	})

	if err := t.entitlements.SetPremium(ctx, premium); err != nil {
		log.WithError(err).Error("Failed to store premium status")
		return PremiumStatus{}, fmt.Errorf("service: could not set premium status: %w", err)
	}
	log.Info("Premium status updated")
	return t.premiumStatus(premium), nil
}

func (t *Tracker) premiumStatus(premium bool) PremiumStatus {
	t.mu.RLock()
	count := len(t.items)
	t.mu.RUnlock()

	status := PremiumStatus{Premium: premium, ItemCount: count}
	if !premium {
		status.ItemLimit = t.policy.FreeItemLimit()
		status.Message = t.policy.ItemLimitMessage(count)
	}
	return status
}

// GetStats возвращает число полученных координат за окно статистики
func (t *Tracker) GetStats(ctx context.Context) (int, error) {
	count, err := t.fixes.GetLocationFixStats(ctx, t.opts.StatsWindowMinutes)
	if err != nil {
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}
