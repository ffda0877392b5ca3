package services_test

import (
	"encoding/json"
	"testing"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/apperrors"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TransferServiceTestSuite struct {
	suite.Suite
	service *services.TransferService
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.service = services.NewTransferService()
}

func (suite *TransferServiceTestSuite) TestExportImport_RoundTrip() {
	original := domain.BootstrapRequest()

	payload, err := suite.service.Export(*original)
	require.NoError(suite.T(), err)

	restored, err := suite.service.Import(payload)
	require.NoError(suite.T(), err)

	// Lossless: re-exporting the imported document reproduces the payload.
	reExported, err := suite.service.Export(*restored)
	require.NoError(suite.T(), err)
	suite.Equal(string(payload), string(reExported))

	suite.Equal(original.RequestNumber, restored.RequestNumber)
	suite.Equal(original.PaxCount, restored.PaxCount)
	suite.Len(restored.Itinerary, len(original.Itinerary))
	suite.True(restored.Guides[0].Cost.Equal(original.Guides[0].Cost))
}

func (suite *TransferServiceTestSuite) TestExport_Deterministic() {
	request := domain.BootstrapRequest()

	first, err := suite.service.Export(*request)
	require.NoError(suite.T(), err)
	second, err := suite.service.Export(*request)
	require.NoError(suite.T(), err)

	suite.Equal(first, second)
}

func (suite *TransferServiceTestSuite) TestExport_IncludesEmptyCollections() {
	request := domain.InboundRequest{RequestNumber: "IN-01-0001"}

	payload, err := suite.service.Export(request)
	require.NoError(suite.T(), err)

	var shape map[string]json.RawMessage
	require.NoError(suite.T(), json.Unmarshal(payload, &shape))
	for _, key := range []string{"itinerary", "hotels", "transport", "guides", "meals", "arrivalsDepartures", "optionalExtras", "cashExpenses"} {
		suite.Contains(shape, key)
		suite.Equal("[]", string(shape[key]), "collection %s should be an empty array, not null", key)
	}
}

func (suite *TransferServiceTestSuite) TestImport_MalformedPayload() {
	_, err := suite.service.Import([]byte("{not json"))

	require.Error(suite.T(), err)
	suite.ErrorIs(err, apperrors.ErrMalformedPayload)
}

func (suite *TransferServiceTestSuite) TestImport_MissingItinerary() {
	_, err := suite.service.Import([]byte(`{"hotels": []}`))

	require.Error(suite.T(), err)
	suite.ErrorIs(err, apperrors.ErrSchemaViolation)
}

func (suite *TransferServiceTestSuite) TestImport_MissingHotels() {
	_, err := suite.service.Import([]byte(`{"itinerary": []}`))

	require.Error(suite.T(), err)
	suite.ErrorIs(err, apperrors.ErrSchemaViolation)
}

func (suite *TransferServiceTestSuite) TestImport_NormalizesPayload() {
	payload := []byte(`{
		"requestNumber": "IN-03-0007",
		"itinerary": [{"day": 1, "description": "Arrival", "baseCost": "0", "costUnit": "PER_GROUP"}],
		"hotels": [{"hotelName": "W Amman", "rooms": [{"type": "Double", "count": 2, "cost": "180"}]}]
	}`)

	request, err := suite.service.Import(payload)
	require.NoError(suite.T(), err)

	suite.Equal("IN-03-0007", request.RequestNumber)
	suite.NotEmpty(request.Itinerary[0].ID)
	suite.NotEmpty(request.Hotels[0].ID)
	suite.NotEmpty(request.Hotels[0].Rooms[0].ID)
	suite.NotNil(request.Guides)
	suite.NotNil(request.CashExpenses)
}

func (suite *TransferServiceTestSuite) TestExportFilename() {
	suite.Equal("tour_request_IN-12-0042.json",
		suite.service.ExportFilename(domain.InboundRequest{RequestNumber: "IN-12-0042"}))
	suite.Equal("tour_request_draft.json",
		suite.service.ExportFilename(domain.InboundRequest{}))
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

func TestTransferService_ImportDoesNotAcceptArrays(t *testing.T) {
	service := services.NewTransferService()

	_, err := service.Import([]byte(`[1, 2, 3]`))

	assert.ErrorIs(t, err, apperrors.ErrMalformedPayload)
}
