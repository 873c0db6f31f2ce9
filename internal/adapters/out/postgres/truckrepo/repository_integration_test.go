package truckrepo_test

import (
	"context"
	"testing"

	"loadplanner/internal/adapters/out/postgres/pgtest"
	"loadplanner/internal/adapters/out/postgres/truckrepo"
	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type TruckRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *truckrepo.GormTruckRepository
}

func (suite *TruckRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = truckrepo.NewGormTruckRepository(db)
}

func (suite *TruckRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TruckRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error)
}

func (suite *TruckRepositoryIntegrationTestSuite) seedVehicle(code string, volumeM3, payloadKg float64) {
	suite.Require().NoError(suite.db.Create(&truckrepo.VehicleDTO{
		Code:              code,
		Description:       "Truck " + code,
		Plate:             "PL-" + code,
		ContainerVolumeM3: volumeM3,
		MaxPayloadKg:      payloadKg,
	}).Error)
}

func (suite *TruckRepositoryIntegrationTestSuite) seedConfig(code string, l, w, h, tol float64) {
	suite.Require().NoError(suite.db.Create(&truckrepo.TruckConfigDTO{
		VehicleCode: code, LengthCm: l, WidthCm: w, HeightCm: h, TolerancePct: tol,
	}).Error)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGet_UnknownVehicle_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), "NOPE")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGet_BlankCode_ReturnsRequired() {
	_, err := suite.repository.Get(context.Background(), "  ")

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGet_WithoutConfig_EstimatesFromVolume() {
	suite.seedVehicle("V01", 31.68, 0)

	got, err := suite.repository.Get(context.Background(), "V01")

	suite.Require().NoError(err)
	suite.Equal("V01", got.Code())
	suite.Equal("Truck V01", got.Description())
	suite.Equal("PL-V01", got.Plate())
	suite.True(got.InteriorEstimated())
	suite.InDelta(628.0, got.Container().LengthCm(), 0)
	suite.InDelta(251.0, got.Container().WidthCm(), 0)
	suite.InDelta(201.0, got.Container().HeightCm(), 0)
	suite.InDelta(9504.0, got.MaxPayloadKg(), 0)
	suite.InDelta(truck.DefaultTolerancePct, got.TolerancePct(), 0)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGet_WithConfig_UsesMeasuredInterior() {
	suite.seedVehicle("V02", 31.68, 3500)
	suite.seedConfig("V02", 600, 240, 220, 3)

	got, err := suite.repository.Get(context.Background(), "V02")

	suite.Require().NoError(err)
	suite.False(got.InteriorEstimated())
	suite.InDelta(600.0, got.Container().LengthCm(), 0)
	suite.InDelta(240.0, got.Container().WidthCm(), 0)
	suite.InDelta(220.0, got.Container().HeightCm(), 0)
	suite.InDelta(3500.0, got.MaxPayloadKg(), 0)
	suite.InDelta(3.0, got.TolerancePct(), 0)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGet_ImplausibleConfig_FallsBackToEstimate() {
	suite.seedVehicle("V03", 31.68, 0)
	suite.seedConfig("V03", 2000, 240, 220, 5)

	got, err := suite.repository.Get(context.Background(), "V03")

	suite.Require().NoError(err)
	suite.True(got.InteriorEstimated())
	suite.InDelta(628.0, got.Container().LengthCm(), 0)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGetAll_ReturnsSortedTrucks() {
	suite.seedVehicle("V20", 31.68, 0)
	suite.seedVehicle("V10", 31.68, 1200)
	suite.seedConfig("V20", 600, 240, 220, 0)

	got, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("V10", got[0].Code())
	suite.True(got[0].InteriorEstimated())
	suite.Equal("V20", got[1].Code())
	suite.False(got[1].InteriorEstimated())
	suite.InDelta(0.0, got[1].TolerancePct(), 0)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGetAll_Empty_ReturnsEmptySlice() {
	got, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestUpdateInterior_InsertsThenUpdates() {
	ctx := context.Background()
	suite.seedVehicle("V04", 31.68, 0)

	t, err := suite.repository.Get(ctx, "V04")
	suite.Require().NoError(err)

	container, err := truck.NewContainer(580, 230, 210)
	suite.Require().NoError(err)
	suite.Require().NoError(t.Reconfigure(container, 2))
	suite.Require().NoError(suite.repository.UpdateInterior(ctx, t))

	container, err = truck.NewContainer(590, 235, 215)
	suite.Require().NoError(err)
	suite.Require().NoError(t.Reconfigure(container, 4))
	suite.Require().NoError(suite.repository.UpdateInterior(ctx, t))

	got, err := suite.repository.Get(ctx, "V04")
	suite.Require().NoError(err)
	suite.False(got.InteriorEstimated())
	suite.InDelta(590.0, got.Container().LengthCm(), 0)
	suite.InDelta(235.0, got.Container().WidthCm(), 0)
	suite.InDelta(215.0, got.Container().HeightCm(), 0)
	suite.InDelta(4.0, got.TolerancePct(), 0)

	var count int64
	suite.Require().NoError(suite.db.Model(&truckrepo.TruckConfigDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestUpdateInterior_UnconstructedTruck_ReturnsError() {
	err := suite.repository.UpdateInterior(context.Background(), &truck.Truck{})

	suite.Require().ErrorIs(err, truck.ErrTruckIsNotConstructed)
}

func TestTruckRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TruckRepositoryIntegrationTestSuite))
}
