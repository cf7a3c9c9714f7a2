package impl

import (
	"context"
	"testing"
	"time"

	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/domain/service"
	mockRepo "snackbasket/internal/mocks/repository"
	mockSvc "snackbasket/internal/mocks/service"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryServiceMocks struct {
	deliveryRepo *mockRepo.MockDeliveryRepository
	orderRepo    *mockRepo.MockOrderRepository
	shopRepo     *mockRepo.MockShopRepository
	labels       *mockSvc.MockLabelService
	txManager    *mockRepo.MockTransactionManager
}

// expectTx runs the transaction body against the delivery repository mock.
func (m *deliveryServiceMocks) expectTx(t *testing.T) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDeliveryRepository().Return(m.deliveryRepo)
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newTestDeliveryService(t *testing.T, enforceForward bool) (*deliveryService, *deliveryServiceMocks) {
	t.Helper()

	m := &deliveryServiceMocks{
		deliveryRepo: mockRepo.NewMockDeliveryRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		shopRepo:     mockRepo.NewMockShopRepository(t),
		labels:       mockSvc.NewMockLabelService(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
	}
	cfg := newTestConfig()
	cfg.Delivery.EnforceForwardOnly = enforceForward

	srv := NewDeliveryService(DeliveryServiceParams{
		DeliveryRepo: m.deliveryRepo,
		OrderRepo:    m.orderRepo,
		TxManager:    m.txManager,
		ShopRepo:     m.shopRepo,
		Labels:       m.labels,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	}).(*deliveryService)
	srv.now = fixedClock

	return srv, m
}

func newTestDelivery(status entity.DeliveryStatus) *entity.Delivery {
	d := &entity.Delivery{
		ID:              uuid.New(),
		OrderID:         uuid.New(),
		ShopID:          uuid.New(),
		CurrentLocation: "Warehouse",
		TrackingNumber:  "TR-123456",
		CreatedAt:       testNow.Add(-time.Hour),
	}
	d.RecordStatus(status, "", "", "", testNow.Add(-time.Hour))

	return d
}

func TestDeliveryService_CreateDeliveryFromOrder_New(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	order := &entity.Order{ID: uuid.New(), ShopID: uuid.New()}

	m.deliveryRepo.EXPECT().FindByOrderID(mock.Anything, order.ID).Return(nil, repository.ErrDeliveryNotFound)
	m.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	m.deliveryRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Delivery")).Return(nil)

	d, err := srv.CreateDeliveryFromOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, d.OrderID)
	assert.Equal(t, order.ShopID, d.ShopID)
	assert.Equal(t, entity.DeliveryStatusPackaging, d.Status)
	assert.Equal(t, "Warehouse", d.CurrentLocation)
	require.NotNil(t, d.EstimatedDeliveryDate)
	assert.Equal(t, testNow.Add(72*time.Hour), *d.EstimatedDeliveryDate)
	assert.Nil(t, d.ActualDeliveryDate)
	assert.Regexp(t, `^TR-[1-9][0-9]{5}$`, d.TrackingNumber)
	require.Len(t, d.StatusHistory, 1)
	assert.Equal(t, "Order received and processing started", d.StatusHistory[0].Notes)
	assert.Equal(t, "Warehouse", d.StatusHistory[0].Location)
}

func TestDeliveryService_CreateDeliveryFromOrder_Idempotent(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	existing := newTestDelivery(entity.DeliveryStatusTransit)

	m.deliveryRepo.EXPECT().FindByOrderID(mock.Anything, existing.OrderID).Return(existing, nil).Times(2)

	first, err := srv.CreateDeliveryFromOrder(context.Background(), existing.OrderID)
	require.NoError(t, err)
	second, err := srv.CreateDeliveryFromOrder(context.Background(), existing.OrderID)
	require.NoError(t, err)

	assert.Same(t, existing, first)
	assert.Same(t, first, second)
}

func TestDeliveryService_CreateDeliveryFromOrder_ConcurrentInsert(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	order := &entity.Order{ID: uuid.New(), ShopID: uuid.New()}
	winner := newTestDelivery(entity.DeliveryStatusPackaging)

	m.deliveryRepo.EXPECT().FindByOrderID(mock.Anything, order.ID).Return(nil, repository.ErrDeliveryNotFound).Once()
	m.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	m.deliveryRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDeliveryExists)
	m.deliveryRepo.EXPECT().FindByOrderID(mock.Anything, order.ID).Return(winner, nil).Once()

	d, err := srv.CreateDeliveryFromOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Same(t, winner, d)
}

func TestDeliveryService_CreateDeliveryFromOrder_UnknownOrder(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	orderID := uuid.New()

	m.deliveryRepo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, repository.ErrDeliveryNotFound)
	m.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := srv.CreateDeliveryFromOrder(context.Background(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestDeliveryService_CreateDelivery_Manual(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	order := &entity.Order{ID: uuid.New(), ShopID: uuid.New()}
	eta := testNow.Add(24 * time.Hour)

	m.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	m.deliveryRepo.EXPECT().FindByOrderID(mock.Anything, order.ID).Return(nil, repository.ErrDeliveryNotFound)
	m.deliveryRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	d, err := srv.CreateDelivery(context.Background(), &usecase.CreateDeliveryInput{
		OrderID:               order.ID,
		Status:                "Transit",
		CurrentLocation:       "Hub 2",
		EstimatedDeliveryDate: &eta,
		TrackingNumber:        "TR-654321",
		Notes:                 "picked up",
		UpdatedBy:             "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, order.ShopID, d.ShopID)
	assert.Equal(t, entity.DeliveryStatusTransit, d.Status)
	assert.Equal(t, "TR-654321", d.TrackingNumber)
	assert.Equal(t, &eta, d.EstimatedDeliveryDate)
	require.Len(t, d.StatusHistory, 1)
	assert.Equal(t, "Hub 2", d.StatusHistory[0].Location)
	assert.Equal(t, "alice@example.com", d.StatusHistory[0].UpdatedBy)
}

func TestDeliveryService_CreateDelivery_Conflict(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	existing := newTestDelivery(entity.DeliveryStatusPackaging)
	order := &entity.Order{ID: existing.OrderID, ShopID: existing.ShopID}

	m.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	m.deliveryRepo.EXPECT().FindByOrderID(mock.Anything, order.ID).Return(existing, nil)

	_, err := srv.CreateDelivery(context.Background(), &usecase.CreateDeliveryInput{OrderID: order.ID})
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryAlreadyExists)
}

func TestDeliveryService_CreateDelivery_Validation(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	order := &entity.Order{ID: uuid.New(), ShopID: uuid.New()}

	_, err := srv.CreateDelivery(context.Background(), &usecase.CreateDeliveryInput{OrderID: order.ID, Status: "Lost"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	m.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	_, err = srv.CreateDelivery(context.Background(), &usecase.CreateDeliveryInput{OrderID: order.ID, ShopID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeliveryService_Advance_AppendsHistory(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	d := newTestDelivery(entity.DeliveryStatusOutForDelivery)

	m.expectTx(t)
	m.deliveryRepo.EXPECT().FindByIDForUpdate(mock.Anything, d.ID).Return(d, nil)
	m.deliveryRepo.EXPECT().Update(mock.Anything, d).Return(nil)

	got, err := srv.Advance(context.Background(), d.ID, &usecase.AdvanceDeliveryInput{
		Status: "Delivered",
		Notes:  "signed by owner",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusDelivered, got.Status)
	require.Len(t, got.StatusHistory, 2)
	assert.Equal(t, entity.DeliveryStatusOutForDelivery, got.StatusHistory[0].Status)
	assert.Equal(t, "signed by owner", got.StatusHistory[1].Notes)
	assert.Equal(t, "Warehouse", got.StatusHistory[1].Location)
	require.NotNil(t, got.ActualDeliveryDate)
	assert.Equal(t, testNow, *got.ActualDeliveryDate)
}

func TestDeliveryService_Advance_BackwardAllowedByDefault(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	d := newTestDelivery(entity.DeliveryStatusDelivered)

	m.expectTx(t)
	m.deliveryRepo.EXPECT().FindByIDForUpdate(mock.Anything, d.ID).Return(d, nil)
	m.deliveryRepo.EXPECT().Update(mock.Anything, d).Return(nil)

	got, err := srv.Advance(context.Background(), d.ID, &usecase.AdvanceDeliveryInput{Status: "Packaging", Location: "Returns desk"})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusPackaging, got.Status)
	assert.Equal(t, "Returns desk", got.CurrentLocation)
	assert.Nil(t, got.ActualDeliveryDate)
}

func TestDeliveryService_Advance_ForwardOnly(t *testing.T) {
	srv, m := newTestDeliveryService(t, true)
	d := newTestDelivery(entity.DeliveryStatusShipToOutlet)

	m.expectTx(t)
	m.deliveryRepo.EXPECT().FindByIDForUpdate(mock.Anything, d.ID).Return(d, nil)

	_, err := srv.Advance(context.Background(), d.ID, &usecase.AdvanceDeliveryInput{Status: "Transit"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	assert.Len(t, d.StatusHistory, 1)
}

func TestDeliveryService_Advance_Errors(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	id := uuid.New()

	_, err := srv.Advance(context.Background(), id, &usecase.AdvanceDeliveryInput{Status: "Shipped"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	m.expectTx(t)
	m.deliveryRepo.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(nil, repository.ErrDeliveryNotFound)
	_, err = srv.Advance(context.Background(), id, &usecase.AdvanceDeliveryInput{Status: "Transit"})
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryNotFound)
}

func TestDeliveryService_AdvanceToNext(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	d := newTestDelivery(entity.DeliveryStatusPackaging)

	m.expectTx(t)
	m.deliveryRepo.EXPECT().FindByIDForUpdate(mock.Anything, d.ID).Return(d, nil)
	m.deliveryRepo.EXPECT().Update(mock.Anything, d).Return(nil)

	got, err := srv.AdvanceToNext(context.Background(), d.ID, &usecase.AdvanceDeliveryInput{})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusTransit, got.Status)
}

func TestDeliveryService_AdvanceToNext_FromDelivered(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	d := newTestDelivery(entity.DeliveryStatusDelivered)

	m.expectTx(t)
	m.deliveryRepo.EXPECT().FindByIDForUpdate(mock.Anything, d.ID).Return(d, nil)

	_, err := srv.AdvanceToNext(context.Background(), d.ID, &usecase.AdvanceDeliveryInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestDeliveryService_Advance_UpdateFailureFailsTransaction(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	d := newTestDelivery(entity.DeliveryStatusTransit)

	m.expectTx(t)
	m.deliveryRepo.EXPECT().FindByIDForUpdate(mock.Anything, d.ID).Return(d, nil)
	m.deliveryRepo.EXPECT().Update(mock.Anything, d).Return(assert.AnError)

	got, err := srv.Advance(context.Background(), d.ID, &usecase.AdvanceDeliveryInput{Status: "Delivered"})
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, got)
}

func TestDeliveryService_Advance_BeginFailure(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)

	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := srv.AdvanceToNext(context.Background(), uuid.New(), &usecase.AdvanceDeliveryInput{})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDeliveryService_ListDeliveries_Search(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	shopA := newTestShop("Sunrise Mart", 0, 0)
	shopB := newTestShop("Corner Kiosk", 0, 0)
	d1 := newTestDelivery(entity.DeliveryStatusTransit)
	d1.ShopID = shopA.ID
	d2 := newTestDelivery(entity.DeliveryStatusTransit)
	d2.ShopID = shopB.ID
	d2.TrackingNumber = "TR-777001"

	m.deliveryRepo.EXPECT().List(mock.Anything, entity.DeliveryStatus("")).Return([]*entity.Delivery{d1, d2}, nil)
	m.shopRepo.EXPECT().FindByIDs(mock.Anything, []uuid.UUID{shopA.ID, shopB.ID}).Return([]*entity.Shop{shopA, shopB}, nil)

	got, err := srv.ListDeliveries(context.Background(), usecase.DeliveryFilter{Search: "SUNRISE", Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, []*entity.Delivery{d1}, got)
}

func TestDeliveryService_ListDeliveries_SearchByTrackingAndOrder(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	d1 := newTestDelivery(entity.DeliveryStatusTransit)
	d2 := newTestDelivery(entity.DeliveryStatusTransit)
	d2.TrackingNumber = "TR-777001"

	m.deliveryRepo.EXPECT().List(mock.Anything, entity.DeliveryStatusTransit).Return([]*entity.Delivery{d1, d2}, nil)
	m.shopRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(nil, nil)

	got, err := srv.ListDeliveries(context.Background(), usecase.DeliveryFilter{Search: "tr-777", Status: "Transit"})
	require.NoError(t, err)
	assert.Equal(t, []*entity.Delivery{d2}, got)

	got, err = srv.ListDeliveries(context.Background(), usecase.DeliveryFilter{Search: d1.OrderID.String()[:8], Status: "Transit"})
	require.NoError(t, err)
	assert.Contains(t, got, d1)
}

func TestDeliveryService_ListDeliveries_InvalidStatus(t *testing.T) {
	srv, _ := newTestDeliveryService(t, false)

	_, err := srv.ListDeliveries(context.Background(), usecase.DeliveryFilter{Status: "Shipped"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeliveryService_Summary(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)

	m.deliveryRepo.EXPECT().CountByStatus(mock.Anything).Return(map[entity.DeliveryStatus]int64{
		entity.DeliveryStatusPackaging:      2,
		entity.DeliveryStatusTransit:        3,
		entity.DeliveryStatusOutForDelivery: 1,
		entity.DeliveryStatusDelivered:      4,
	}, nil)

	summary, err := srv.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), summary.Total)
	assert.Equal(t, int64(4), summary.InTransit)
	assert.Equal(t, int64(4), summary.Delivered)
	assert.Equal(t, int64(0), summary.ByStatus[entity.DeliveryStatusShipToOutlet])
	assert.Len(t, summary.ByStatus, 5)
}

func TestDeliveryService_TrackingLabel(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	d := newTestDelivery(entity.DeliveryStatusPackaging)
	png := []byte{0x89, 'P', 'N', 'G'}

	m.deliveryRepo.EXPECT().FindByID(mock.Anything, d.ID).Return(d, nil)
	m.labels.EXPECT().GenerateTrackingLabel(d).Return(png, nil)

	got, err := srv.TrackingLabel(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestDeliveryService_ResolveLabel(t *testing.T) {
	srv, m := newTestDeliveryService(t, false)
	d := newTestDelivery(entity.DeliveryStatusTransit)

	m.labels.EXPECT().ParseTrackingLabel("good").Return(&service.TrackingLabel{DeliveryID: d.ID, TrackingNumber: d.TrackingNumber}, nil)
	m.labels.EXPECT().ParseTrackingLabel("stale").Return(&service.TrackingLabel{DeliveryID: d.ID, TrackingNumber: "TR-000000"}, nil)
	m.labels.EXPECT().ParseTrackingLabel("junk").Return(nil, assert.AnError)
	m.deliveryRepo.EXPECT().FindByID(mock.Anything, d.ID).Return(d, nil)

	got, err := srv.ResolveLabel(context.Background(), "good")
	require.NoError(t, err)
	assert.Same(t, d, got)

	_, err = srv.ResolveLabel(context.Background(), "stale")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.ResolveLabel(context.Background(), "junk")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
