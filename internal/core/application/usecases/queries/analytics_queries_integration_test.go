package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgresadapter "orderhub/internal/adapters/out/postgres"
	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AnalyticsQueriesTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	uowFactory *postgresadapter.GormUnitOfWorkFactory
}

func (suite *AnalyticsQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgresadapter.Migrate(db))
	suite.uowFactory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *AnalyticsQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AnalyticsQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *AnalyticsQueriesTestSuite) refreshViews() {
	for _, view := range postgresadapter.AnalyticsViews {
		err := suite.db.Exec(fmt.Sprintf("REFRESH MATERIALIZED VIEW %s", view)).Error
		suite.Require().NoError(err)
	}
}

func (suite *AnalyticsQueriesTestSuite) seedEntry(status order.Status, at time.Time) order.StatusHistoryEntry {
	entry, err := order.NewStatusHistoryEntry(status, at)
	suite.Require().NoError(err)
	return entry
}

func (suite *AnalyticsQueriesTestSuite) storeOrder(
	account kernel.UUID,
	status order.Status,
	seed []order.StatusHistoryEntry,
	items []*item.Item,
	createdAt time.Time,
) *order.Order {
	customer, err := order.NewCustomer("Alice Smith", "+358401234567")
	suite.Require().NoError(err)

	address, err := order.NewDeliveryAddress("Helsinki", "Mannerheimintie 1", "00100")
	suite.Require().NoError(err)

	var id kernel.UUID
	if len(items) > 0 {
		id = items[0].OrderID()
	} else {
		id = kernel.NewUUID()
	}

	o, err := order.NewOrder(
		id, account, kernel.NewUUID(), "channel-"+id.String(),
		customer, address, createdAt.Add(30*time.Minute),
		status, seed, items, createdAt,
	)
	suite.Require().NoError(err)

	err = suite.uowFactory.Create().OrderRepository().Add(context.Background(), o)
	suite.Require().NoError(err)
	return o
}

func (suite *AnalyticsQueriesTestSuite) TestOrderStatusDurations() {
	base := time.Now().UTC().Truncate(time.Hour).Add(-3 * time.Hour)
	account := kernel.NewUUID()

	// Order A dwelled 60s in received and 120s in preparing.
	suite.storeOrder(account, order.Ready, []order.StatusHistoryEntry{
		suite.seedEntry(order.Received, base),
		suite.seedEntry(order.Preparing, base.Add(60*time.Second)),
		suite.seedEntry(order.Ready, base.Add(180*time.Second)),
	}, nil, base)

	// Order B dwelled 30s in received and is still preparing.
	suite.storeOrder(account, order.Preparing, []order.StatusHistoryEntry{
		suite.seedEntry(order.Received, base),
		suite.seedEntry(order.Preparing, base.Add(30*time.Second)),
	}, nil, base.Add(10*time.Minute))

	suite.refreshViews()

	handler := queries.NewGetOrderStatusDurationsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetOrderStatusDurationsQuery())
	suite.Require().NoError(err)

	durations := make(map[string]float64, len(result))
	for _, row := range result {
		durations[row.Status] = row.AvgDurationSeconds
	}

	suite.Len(durations, 2)
	suite.InDelta(45.0, durations["RECEIVED"], 0.001)
	suite.InDelta(120.0, durations["PREPARING"], 0.001)
}

func (suite *AnalyticsQueriesTestSuite) TestItemStatusDurations() {
	base := time.Now().UTC().Truncate(time.Hour).Add(-2 * time.Hour)
	orderID := kernel.NewUUID()

	it, err := item.NewItem(orderID, "plu-1", "Margherita Pizza", 1, item.Ordered, base)
	suite.Require().NoError(err)
	suite.Require().NoError(it.ChangeStatus(item.Preparing, base.Add(45*time.Second)))

	suite.storeOrder(kernel.NewUUID(), order.Received, nil, []*item.Item{it}, base)

	suite.refreshViews()

	handler := queries.NewGetItemStatusDurationsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetItemStatusDurationsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal("ORDERED", result[0].Status)
	suite.InDelta(45.0, result[0].AvgDurationSeconds, 0.001)
}

func (suite *AnalyticsQueriesTestSuite) TestHourlyThroughput() {
	firstHour := time.Now().UTC().Truncate(time.Hour).Add(-4 * time.Hour)
	secondHour := firstHour.Add(time.Hour)
	account := kernel.NewUUID()

	suite.storeOrder(account, order.Received, nil, nil, firstHour.Add(10*time.Minute))
	suite.storeOrder(account, order.Received, nil, nil, firstHour.Add(20*time.Minute))
	suite.storeOrder(account, order.Received, nil, nil, secondHour.Add(5*time.Minute))

	suite.refreshViews()

	handler := queries.NewGetHourlyThroughputQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetHourlyThroughputQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.True(result[0].Hour.Equal(firstHour))
	suite.Equal(int64(2), result[0].OrderCount)
	suite.True(result[1].Hour.Equal(secondHour))
	suite.Equal(int64(1), result[1].OrderCount)
}

func (suite *AnalyticsQueriesTestSuite) TestCustomerOrderCounts() {
	base := time.Now().UTC().Truncate(time.Hour).Add(-2 * time.Hour)
	frequent := kernel.NewUUID()
	occasional := kernel.NewUUID()

	suite.storeOrder(frequent, order.Received, nil, nil, base)
	suite.storeOrder(frequent, order.Received, nil, nil, base.Add(30*time.Minute))
	suite.storeOrder(occasional, order.Received, nil, nil, base.Add(10*time.Minute))

	suite.refreshViews()

	handler := queries.NewGetCustomerOrderCountsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetCustomerOrderCountsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)

	suite.Equal(frequent, result[0].Account)
	suite.Equal(int64(2), result[0].OrderCount)
	suite.True(result[0].FirstOrderAt.Equal(base))
	suite.True(result[0].LastOrderAt.Equal(base.Add(30*time.Minute)))

	suite.Equal(occasional, result[1].Account)
	suite.Equal(int64(1), result[1].OrderCount)
}

func (suite *AnalyticsQueriesTestSuite) TestEmptyDatabase() {
	suite.refreshViews()

	durations, err := queries.NewGetOrderStatusDurationsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetOrderStatusDurationsQuery())
	suite.Require().NoError(err)
	suite.Empty(durations)

	buckets, err := queries.NewGetHourlyThroughputQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetHourlyThroughputQuery())
	suite.Require().NoError(err)
	suite.Empty(buckets)
}

func TestAnalyticsQueriesTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(AnalyticsQueriesTestSuite))
}
