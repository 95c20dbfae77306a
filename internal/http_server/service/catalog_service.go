// Package service
package service

import (
	"errors"
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"github.com/half-nothing/adventurous-traveler/internal/utils"
	"github.com/sahilm/fuzzy"
	"strings"
)

// airportSearchItems 实现 fuzzy.Source, 按代码名称城市国家匹配
type airportSearchItems []*operation.Airport

func (items airportSearchItems) Len() int { return len(items) }

func (items airportSearchItems) String(i int) string {
	airport := items[i]
	return strings.ToLower(fmt.Sprintf("%s %s %s %s", airport.Code, airport.Name, airport.City, airport.Country))
}

// SearchAirports 模糊搜索机场, 结果按匹配度排序, query为空时原样返回
func SearchAirports(airports []*operation.Airport, query string) []*operation.Airport {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return airports
	}
	items := airportSearchItems(airports)
	matches := []fuzzy.Match(fuzzy.FindFrom(query, items))
	return utils.Map(matches, func(match fuzzy.Match) *operation.Airport {
		return items[match.Index]
	})
}

type CatalogService struct {
	logger             log.LoggerInterface
	referenceOperation operation.ReferenceOperationInterface
	retryAttempts      int
}

func NewCatalogService(logger log.LoggerInterface, referenceOperation operation.ReferenceOperationInterface, retryAttempts int) *CatalogService {
	return &CatalogService{
		logger:             logger,
		referenceOperation: referenceOperation,
		retryAttempts:      max(retryAttempts, 1),
	}
}

// retryRead 只读查询在存储错误时重试, 记录不存在不重试
func retryRead[T any](catalogService *CatalogService, name string, fc func() (T, error)) (result T, err error) {
	for attempt := 1; attempt <= catalogService.retryAttempts; attempt++ {
		result, err = fc()
		if err == nil || errors.Is(err, operation.ErrAirportNotFound) {
			return
		}
		catalogService.logger.WarnF("CatalogService.%s failed (attempt %d/%d): %v", name, attempt, catalogService.retryAttempts, err)
	}
	return
}

var (
	ErrAirportNotFound = ApiStatus{StatusName: "AIRPORT_NOT_FOUND", Description: "airport not found", HttpCode: NotFound}
	SuccessGetAirports = ApiStatus{StatusName: "GET_AIRPORTS", Description: "airports loaded", HttpCode: Ok}
	SuccessGetAirport  = ApiStatus{StatusName: "GET_AIRPORT", Description: "airport loaded", HttpCode: Ok}
)

func (catalogService *CatalogService) GetAirports(req *RequestAirports) *ApiResponse[ResponseAirports] {
	if res := searchValidator.CheckString(req.Query); res != nil {
		return NewApiResponse[ResponseAirports](res, Unsatisfied, nil)
	}
	airports, err := retryRead(catalogService, "GetAirports", catalogService.referenceOperation.GetAirports)
	if err != nil {
		return NewApiResponse[ResponseAirports](&ErrDatabaseFail, Unsatisfied, nil)
	}
	data := ResponseAirports(SearchAirports(airports, req.Query))
	return NewApiResponse(&SuccessGetAirports, Unsatisfied, &data)
}

func (catalogService *CatalogService) GetAirport(req *RequestAirport) *ApiResponse[ResponseAirport] {
	id, ok := utils.StrToUint(req.Id)
	if !ok {
		return NewApiResponse[ResponseAirport](&ErrIllegalParam, Unsatisfied, nil)
	}
	airport, err := retryRead(catalogService, "GetAirport", func() (*operation.Airport, error) {
		return catalogService.referenceOperation.GetAirportById(id)
	})
	switch {
	case errors.Is(err, operation.ErrAirportNotFound):
		return NewApiResponse[ResponseAirport](&ErrAirportNotFound, Unsatisfied, nil)
	case err != nil:
		return NewApiResponse[ResponseAirport](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAirport, Unsatisfied, (*ResponseAirport)(airport))
}

var SuccessGetShopItems = ApiStatus{StatusName: "GET_SHOP_ITEMS", Description: "shop items loaded", HttpCode: Ok}

func (catalogService *CatalogService) GetShopItems() *ApiResponse[ResponseShopItems] {
	items, err := retryRead(catalogService, "GetShopItems", catalogService.referenceOperation.GetShopItems)
	if err != nil {
		return NewApiResponse[ResponseShopItems](&ErrDatabaseFail, Unsatisfied, nil)
	}
	data := ResponseShopItems(items)
	return NewApiResponse(&SuccessGetShopItems, Unsatisfied, &data)
}

var SuccessGetArtifacts = ApiStatus{StatusName: "GET_ARTIFACTS", Description: "artifacts loaded", HttpCode: Ok}

func (catalogService *CatalogService) GetArtifacts() *ApiResponse[ResponseArtifacts] {
	artifacts, err := retryRead(catalogService, "GetArtifacts", catalogService.referenceOperation.GetArtifacts)
	if err != nil {
		return NewApiResponse[ResponseArtifacts](&ErrDatabaseFail, Unsatisfied, nil)
	}
	data := ResponseArtifacts(artifacts)
	return NewApiResponse(&SuccessGetArtifacts, Unsatisfied, &data)
}
