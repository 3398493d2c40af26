package orderrepo_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"restopos/internal/adapters/out/sqlite"
	"restopos/internal/adapters/out/sqlite/orderrepo"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite exercises OrderRepository against a
// real store file to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	db         *sqlite.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	db, err := sqlite.Open(filepath.Join(suite.T().TempDir(), "store.db"))
	suite.Require().NoError(err)
	suite.db = db

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(db.Gorm(), suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownTest() {
	suite.Require().NoError(suite.db.Close())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.addItem(testOrder, "Margherita", 1200, 2)
	suite.addItem(testOrder, "Cola", 300, 1)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testOrder))
	suite.Equal(order.Open, restored.Status())
	suite.Require().Len(restored.Items(), 2)
	suite.Equal("Margherita", restored.Items()[0].Name())
	suite.Equal("Cola", restored.Items()[1].Name())
	suite.Equal(testOrder.Subtotal().Minor(), restored.Subtotal().Minor())
	suite.Equal(testOrder.Total().Minor(), restored.Total().Minor())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLines() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	item := suite.addItem(testOrder, "Margherita", 1200, 1)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeItemQuantity(item.ID(), 3))
	suite.addItem(testOrder, "Cola", 300, 2)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(restored.Items(), 2)
	suite.Equal(3, restored.Items()[0].Quantity())
	suite.Equal(int64(1200*3+300*2), restored.Subtotal().Minor())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_NotFound() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrder_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_SkipsTerminalOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	draft := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, draft))
	time.Sleep(5 * time.Millisecond)

	cancelled := suite.createTestOrder()
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))
	time.Sleep(5 * time.Millisecond)

	open := suite.createTestOrder()
	suite.addItem(open, "Cola", 300, 1)
	suite.Require().NoError(suite.repository.Add(ctx, open))

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	suite.True(active[0].IsEqual(draft))
	suite.True(active[1].IsEqual(open))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteTerminal_KeepsActiveOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	active := suite.createTestOrder()
	suite.addItem(active, "Cola", 300, 1)
	suite.Require().NoError(suite.repository.Add(ctx, active))

	done := suite.createTestOrder()
	suite.addItem(done, "Margherita", 1200, 1)
	suite.Require().NoError(done.Finalize())
	suite.Require().NoError(suite.repository.Add(ctx, done))

	deleted, err := suite.repository.DeleteTerminal(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = suite.repository.Get(ctx, done.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	restored, err := suite.repository.Get(ctx, active.ID())
	suite.Require().NoError(err)
	suite.Len(restored.Items(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1000)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) addItem(o *order.Order, name string, priceMinor int64, quantity int) *order.Item {
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), name, kernel.NewMoney(priceMinor), quantity)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(item))
	return item
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
