package service_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/dont_forget_tracker/internal/catalog"
	"github.com/shenikar/dont_forget_tracker/internal/device"
	"github.com/shenikar/dont_forget_tracker/internal/entitlement"
	"github.com/shenikar/dont_forget_tracker/internal/metrics"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/internal/proximity"
	"github.com/shenikar/dont_forget_tracker/internal/service"
	"github.com/shenikar/dont_forget_tracker/internal/service/mocks"
	"github.com/shenikar/dont_forget_tracker/pkg/geo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var home = models.Location{Latitude: 40.0, Longitude: -75.0}

// north - точка в meters метрах к северу от home
func north(meters float64) models.Location {
	return models.Location{
		Latitude:  home.Latitude + meters/geo.EarthRadiusMeters*180/math.Pi,
		Longitude: home.Longitude,
	}
}

// fakeLocations - управляемый из теста источник координат
type fakeLocations struct {
	granted bool
	fix     *models.Location

	mu           sync.Mutex
	callback     func(models.Location)
	unsubscribed atomic.Bool
}

func (f *fakeLocations) RequestPermission(_ context.Context) (bool, error) {
	return f.granted, nil
}

func (f *fakeLocations) CurrentPosition(_ context.Context) (models.Location, error) {
	if f.fix == nil {
		return models.Location{}, device.ErrNoFix
	}
	return *f.fix, nil
}

func (f *fakeLocations) Watch(_ context.Context, _ device.WatchOptions, callback func(models.Location)) (device.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callback = callback
	return f, nil
}

func (f *fakeLocations) Unsubscribe() {
	f.unsubscribed.Store(true)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callback = nil
}

func (f *fakeLocations) subscribed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callback != nil
}

func (f *fakeLocations) emit(loc models.Location) {
	f.mu.Lock()
	cb := f.callback
	f.mu.Unlock()
	if cb != nil {
		cb(loc)
	}
}

// recorder собирает сохраненные коллекции, уведомления и модальные сообщения
type recorder struct {
	mu        sync.Mutex
	saveErr   error
	saves     [][]models.TrackedItem
	alerts    []models.InAppAlert
	dispatchs []proximity.Classification
}

func (r *recorder) save(_ context.Context, items []models.TrackedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, models.CloneItems(items))
	return r.saveErr
}

func (r *recorder) lastSaved() []models.TrackedItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

func (r *recorder) showAlert(_ context.Context, alert models.InAppAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
	return nil
}

func (r *recorder) alertTitles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	titles := make([]string, 0, len(r.alerts))
	for _, a := range r.alerts {
		titles = append(titles, a.Title)
	}
	return titles
}

func (r *recorder) dispatch(_ context.Context, cls proximity.Classification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dispatchs = append(r.dispatchs, cls)
}

func (r *recorder) dispatched() []proximity.Classification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]proximity.Classification(nil), r.dispatchs...)
}

type testDeps struct {
	locations    *fakeLocations
	dispatcher   *mocks.MockDispatcher
	entitlements *mocks.MockEntitlements
	rec          *recorder
}

// newTestTracker собирает трекер с моками. Отправка уведомлений не ожидается,
// пока тест явно не задаст ожидание на dispatcher.
func newTestTracker(t *testing.T, locations *fakeLocations, initial []models.TrackedItem) (*service.Tracker, *testDeps) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockItemStore(ctrl)
	dispatcher := mocks.NewMockDispatcher(ctrl)
	notifier := mocks.NewMockPermissionRequester(ctrl)
	entitlements := mocks.NewMockEntitlements(ctrl)
	inbox := mocks.NewMockAlertInbox(ctrl)
	fixes := mocks.NewMockFixRecorder(ctrl)
	rec := &recorder{}

	store.EXPECT().Load(gomock.Any()).Return(initial, nil).Times(1)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(rec.save).AnyTimes()
	notifier.EXPECT().RequestPermission(gomock.Any()).Return(true, nil).AnyTimes()
	inbox.EXPECT().ShowAlert(gomock.Any(), gomock.Any()).DoAndReturn(rec.showAlert).AnyTimes()
	fixes.EXPECT().SaveLocationFix(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cat := catalog.Default()
	tracker := service.NewTracker(
		store, locations, dispatcher, notifier, entitlements, inbox, fixes,
		entitlement.NewPolicy(cat, 5), cat, logger, metrics.NewNop(),
		service.TrackerOptions{StatsWindowMinutes: 60},
	)

	return tracker, &testDeps{
		locations:    locations,
		dispatcher:   dispatcher,
		entitlements: entitlements,
		rec:          rec,
	}
}

// start запускает цикл и останавливает его раньше проверки ожиданий gomock
func start(t *testing.T, tracker *service.Tracker) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = tracker.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return cancel
}

func startTracking(t *testing.T, tracker *service.Tracker, deps *testDeps) {
	start(t, tracker)
	require.Eventually(t, deps.locations.subscribed, time.Second, 5*time.Millisecond)
	require.NoError(t, tracker.Flush(context.Background()))
}

func move(t *testing.T, tracker *service.Tracker, deps *testDeps, loc models.Location) {
	deps.locations.emit(loc)
	require.NoError(t, tracker.Flush(context.Background()))
}

func keysInput() models.ItemInput {
	return models.ItemInput{Name: "Keys", IconID: "key", AlertDistance: 50}
}

func TestTracker_KeysScenario(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, nil)
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).AnyTimes()
	ctx := context.Background()

	// Ожидания
	deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(deps.rec.dispatch).Times(2)

	// Действие
	startTracking(t, tracker, deps)
	keys, err := tracker.CreateItem(ctx, keysInput())
	require.NoError(t, err)

	move(t, tracker, deps, north(80))
	away, err := tracker.GetItem(ctx, keys.ID)
	require.NoError(t, err)
	status := tracker.Status(ctx)

	move(t, tracker, deps, north(120)) // повторная оценка вдали не уведомляет
	move(t, tracker, deps, north(10))

	// Проверки
	require.NotNil(t, keys.Location)
	assert.Equal(t, home, *keys.Location)
	assert.False(t, keys.IsAway)

	assert.True(t, away.IsAway)
	assert.Equal(t, 1, status.NotifiedCount)
	assert.Equal(t, 1, status.AwayCount)

	dispatched := deps.rec.dispatched()
	require.Len(t, dispatched, 2)
	require.Len(t, dispatched[0].ToAlert, 1)
	assert.Equal(t, keys.ID, dispatched[0].ToAlert[0].Item.ID)
	assert.InDelta(t, 80, dispatched[0].ToAlert[0].Distance, 0.5)
	require.Len(t, dispatched[1].ToReturn, 1)
	assert.Equal(t, keys.ID, dispatched[1].ToReturn[0].Item.ID)

	final := tracker.Status(ctx)
	assert.Equal(t, 0, final.NotifiedCount)
	assert.Equal(t, 0, final.AwayCount)
	saved := deps.rec.lastSaved()
	require.Len(t, saved, 1)
	assert.False(t, saved[0].IsAway)
}

func TestTracker_BatchesSimultaneousAway(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, nil)
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).AnyTimes()
	ctx := context.Background()

	// Ожидания
	deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(deps.rec.dispatch).Times(1)

	// Действие
	startTracking(t, tracker, deps)
	_, err := tracker.CreateItem(ctx, keysInput())
	require.NoError(t, err)
	_, err = tracker.CreateItem(ctx, models.ItemInput{Name: "Wallet", IconID: "wallet", AlertDistance: 100})
	require.NoError(t, err)
	move(t, tracker, deps, north(500))

	// Проверки
	dispatched := deps.rec.dispatched()
	require.Len(t, dispatched, 1)
	assert.Len(t, dispatched[0].ToAlert, 2)
	assert.Empty(t, dispatched[0].ToReturn)
	assert.Equal(t, 2, tracker.Status(ctx).AwayCount)
}

func TestTracker_EditResetsAwayItem(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, nil)
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).AnyTimes()
	ctx := context.Background()

	// Ожидания
	// 1. Уход после перемещения. 2. Повторный алерт после проверки сразу за сохранением правки.
	deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(deps.rec.dispatch).Times(2)

	// Действие
	startTracking(t, tracker, deps)
	keys, err := tracker.CreateItem(ctx, keysInput())
	require.NoError(t, err)
	move(t, tracker, deps, north(80))

	edited, err := tracker.UpdateItem(ctx, keys.ID, models.ItemInput{Name: "House keys", IconID: "key", AlertDistance: 50})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "House keys", edited.Name)
	assert.Equal(t, keys.CreatedAt, edited.CreatedAt)
	assert.Equal(t, keys.Location, edited.Location)

	dispatched := deps.rec.dispatched()
	require.Len(t, dispatched, 2)
	require.Len(t, dispatched[1].ToAlert, 1)
	assert.Equal(t, "House keys", dispatched[1].ToAlert[0].Item.Name)
	assert.False(t, dispatched[1].ToAlert[0].Item.IsAway)

	// ответ отражает состояние после повторной проверки
	assert.True(t, edited.IsAway)
	stored, err := tracker.GetItem(ctx, keys.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, edited)
}

func TestTracker_EditNearItemStaysHere(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, nil)
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).AnyTimes()
	ctx := context.Background()

	// Ожидания
	deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	startTracking(t, tracker, deps)
	keys, err := tracker.CreateItem(ctx, keysInput())
	require.NoError(t, err)

	edited, err := tracker.UpdateItem(ctx, keys.ID, models.ItemInput{Name: "House keys", IconID: "key", AlertDistance: 50})

	// Проверки
	require.NoError(t, err)
	assert.False(t, edited.IsAway)
	stored, err := tracker.GetItem(ctx, keys.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, edited)
}

func TestTracker_DeleteAwayItemPurgesNotified(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, nil)
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).AnyTimes()
	ctx := context.Background()

	// Ожидания
	deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(deps.rec.dispatch).Times(1)

	// Действие
	startTracking(t, tracker, deps)
	keys, err := tracker.CreateItem(ctx, keysInput())
	require.NoError(t, err)
	move(t, tracker, deps, north(80))

	err = tracker.DeleteItem(ctx, keys.ID)
	require.NoError(t, err)
	move(t, tracker, deps, north(10))

	// Проверки
	status := tracker.Status(ctx)
	assert.Equal(t, 0, status.ItemCount)
	assert.Equal(t, 0, status.NotifiedCount)
	assert.Empty(t, deps.rec.lastSaved())

	_, err = tracker.GetItem(ctx, keys.ID)
	assert.ErrorIs(t, err, service.ErrItemNotFound)
}

func TestTracker_UnknownItem(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, nil)
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).AnyTimes()
	ctx := context.Background()
	startTracking(t, tracker, deps)

	// Действие
	_, updateErr := tracker.UpdateItem(ctx, uuid.New(), keysInput())
	deleteErr := tracker.DeleteItem(ctx, uuid.New())

	// Проверки
	assert.ErrorIs(t, updateErr, service.ErrItemNotFound)
	assert.ErrorIs(t, deleteErr, service.ErrItemNotFound)
}

func TestTracker_CreateRequiresLocation(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true}, nil)
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).AnyTimes()
	startTracking(t, tracker, deps)

	// Действие
	_, err := tracker.CreateItem(context.Background(), keysInput())

	// Проверки
	assert.ErrorIs(t, err, service.ErrLocationUnavailable)
	assert.Contains(t, deps.rec.alertTitles(), "Location Error")
	assert.Equal(t, service.StateTracking, tracker.Status(context.Background()).State)
}

func TestTracker_PermissionDenied(t *testing.T) {
	// Подготовка
	locations := &fakeLocations{granted: false, fix: &home}
	tracker, deps := newTestTracker(t, locations, nil)

	// Действие
	start(t, tracker)

	// Проверки
	require.Eventually(t, func() bool {
		return tracker.Status(context.Background()).State == service.StateDenied
	}, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return len(deps.rec.alertTitles()) > 0
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"Permission Required"}, deps.rec.alertTitles())
	assert.False(t, locations.subscribed())
}

func TestTracker_InvalidInput(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, nil)
	ctx := context.Background()
	startTracking(t, tracker, deps)

	// Действие
	_, nameErr := tracker.CreateItem(ctx, models.ItemInput{Name: "  ", IconID: "key", AlertDistance: 50})
	_, iconErr := tracker.CreateItem(ctx, models.ItemInput{Name: "Keys", IconID: "rocket", AlertDistance: 50})

	// Проверки
	assert.ErrorIs(t, nameErr, service.ErrInvalidItem)
	assert.ErrorIs(t, iconErr, service.ErrUnknownIcon)
}

func TestTracker_FreeItemLimit(t *testing.T) {
	// Подготовка
	initial := make([]models.TrackedItem, 0, 5)
	for i := 0; i < 5; i++ {
		loc := home
		initial = append(initial, models.TrackedItem{ID: uuid.New(), Name: "Item", IconID: "key", Location: &loc, AlertDistance: 50})
	}
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, initial)
	ctx := context.Background()

	// Ожидания
	gomock.InOrder(
		deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).Times(1),
		deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(true, nil).Times(1),
	)

	// Действие
	startTracking(t, tracker, deps)
	_, freeErr := tracker.CreateItem(ctx, keysInput())
	created, premiumErr := tracker.CreateItem(ctx, keysInput())

	// Проверки
	assert.ErrorIs(t, freeErr, entitlement.ErrItemLimitReached)
	require.NoError(t, premiumErr)
	assert.Equal(t, "Keys", created.Name)
	assert.Equal(t, 6, tracker.Status(ctx).ItemCount)
}

func TestTracker_CustomDistanceRequiresPremium(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, nil)
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).AnyTimes()
	startTracking(t, tracker, deps)

	// Действие
	_, err := tracker.CreateItem(context.Background(), models.ItemInput{Name: "Keys", IconID: "key", AlertDistance: 75})

	// Проверки
	assert.ErrorIs(t, err, entitlement.ErrCustomDistance)
	assert.Equal(t, 0, tracker.Status(context.Background()).ItemCount)
}

func TestTracker_PersistenceFailureKeepsItem(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, nil)
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).AnyTimes()
	deps.rec.saveErr = errors.New("disk full")
	startTracking(t, tracker, deps)

	// Действие
	created, err := tracker.CreateItem(context.Background(), keysInput())

	// Проверки
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.Equal(t, "Keys", created.Name)
	items, listErr := tracker.ListItems(context.Background())
	require.NoError(t, listErr)
	assert.Len(t, items, 1)
}

func TestTracker_StopUnsubscribes(t *testing.T) {
	// Подготовка
	locations := &fakeLocations{granted: true, fix: &home}
	tracker, deps := newTestTracker(t, locations, nil)
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).AnyTimes()
	cancel := start(t, tracker)
	require.Eventually(t, locations.subscribed, time.Second, 5*time.Millisecond)

	// Действие
	cancel()

	// Проверки
	require.Eventually(t, locations.unsubscribed.Load, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		_, err := tracker.CreateItem(context.Background(), keysInput())
		return errors.Is(err, service.ErrTrackerStopped)
	}, time.Second, 5*time.Millisecond)
}

func TestTracker_PremiumStatus(t *testing.T) {
	// Подготовка
	tracker, deps := newTestTracker(t, &fakeLocations{granted: true, fix: &home}, nil)
	ctx := context.Background()

	// Ожидания
	deps.entitlements.EXPECT().IsPremium(gomock.Any()).Return(false, nil).Times(1)
	deps.entitlements.EXPECT().SetPremium(gomock.Any(), true).Return(nil).Times(1)

	// Действие
	startTracking(t, tracker, deps)
	free, err := tracker.PremiumStatus(ctx)
	require.NoError(t, err)
	premium, err := tracker.SetPremium(ctx, true)
	require.NoError(t, err)

	// Проверки
	assert.False(t, free.Premium)
	assert.Equal(t, 5, free.ItemLimit)
	assert.NotEmpty(t, free.Message)
	assert.True(t, premium.Premium)
	assert.Zero(t, premium.ItemLimit)
}
