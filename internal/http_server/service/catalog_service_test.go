package service

import (
	"errors"
	"io"
	"testing"

	"github.com/half-nothing/adventurous-traveler/internal/base"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
)

func newDiscardLogger() log.LoggerInterface {
	logger := base.NewLoggerWithOutput(io.Discard)
	logger.Init(false)
	return logger
}

func TestSearchAirports(t *testing.T) {
	airports := []*operation.Airport{
		{Code: "HEL", Name: "Helsinki-Vantaa Airport", City: "Helsinki", Country: "Finland"},
		{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
		{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom"},
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"empty query keeps everything", "  ", []string{"HEL", "CDG", "LHR"}},
		{"city", "paris", []string{"CDG"}},
		{"case insensitive name", "Heathrow", []string{"LHR"}},
		{"country", "finland", []string{"HEL"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SearchAirports(airports, tt.query)
			codes := make([]string, 0, len(result))
			for _, airport := range result {
				codes = append(codes, airport.Code)
			}
			assert.Equal(t, tt.expected, codes)
		})
	}
}

func TestStatusFromGameError(t *testing.T) {
	tests := []struct {
		err      error
		expected HttpCode
	}{
		{game.ValidationError("bad input"), BadRequest},
		{game.NotFoundError("missing", nil), NotFound},
		{game.InvalidStateError("over"), Conflict},
		{game.InsufficientResourceError("broke"), UnprocessableEntity},
		{game.StoreError(errors.New("disk")), ServerInternalError},
		{errors.New("plain"), ServerInternalError},
	}
	for _, tt := range tests {
		status := StatusFromGameError(tt.err)
		assert.Equal(t, tt.expected, status.HttpCode, tt.err.Error())
	}

	status := StatusFromGameError(game.ValidationError("flight of %d km is too short", 150))
	assert.Equal(t, "flight of 150 km is too short", status.Description)
	assert.Equal(t, "VALIDATION_ERROR", gameErrorStatus[game.KindValidation].StatusName)
	assert.Empty(t, gameErrorStatus[game.KindValidation].Description)
}

type flakyReference struct {
	operation.ReferenceOperationInterface
	failures int
	calls    int
}

func (reference *flakyReference) GetArtifacts() ([]*operation.Artifact, error) {
	reference.calls++
	if reference.calls <= reference.failures {
		return nil, errors.New("connection reset")
	}
	return []*operation.Artifact{{Order: 1, Name: "Amber Compass"}}, nil
}

func (reference *flakyReference) GetAirportById(uint) (*operation.Airport, error) {
	reference.calls++
	return nil, operation.ErrAirportNotFound
}

func TestCatalogRetriesReads(t *testing.T) {
	reference := &flakyReference{failures: 2}
	catalog := NewCatalogService(newDiscardLogger(), reference, 3)

	response := catalog.GetArtifacts()

	assert.True(t, response.Success)
	assert.Equal(t, 3, reference.calls)

	reference = &flakyReference{failures: 5}
	catalog = NewCatalogService(newDiscardLogger(), reference, 3)
	response = catalog.GetArtifacts()
	assert.False(t, response.Success)
	assert.Equal(t, ErrDatabaseFail.StatusName, response.Code)
	assert.Equal(t, 3, reference.calls)
}

func TestCatalogDoesNotRetryMissingAirport(t *testing.T) {
	reference := &flakyReference{}
	catalog := NewCatalogService(newDiscardLogger(), reference, 3)

	response := catalog.GetAirport(&RequestAirport{Id: "42"})

	assert.Equal(t, ErrAirportNotFound.StatusName, response.Code)
	assert.Equal(t, 1, reference.calls)
}
