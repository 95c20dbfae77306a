// Package service
package service

import "github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"

// CatalogServiceInterface 只读参考数据查询, 存储错误会重试
type CatalogServiceInterface interface {
	GetAirports(req *RequestAirports) *ApiResponse[ResponseAirports]
	GetAirport(req *RequestAirport) *ApiResponse[ResponseAirport]
	GetShopItems() *ApiResponse[ResponseShopItems]
	GetArtifacts() *ApiResponse[ResponseArtifacts]
}

type RequestAirports struct {
	Query string `query:"query"`
}

type ResponseAirports []*operation.Airport

type RequestAirport struct {
	Id string `param:"id"`
}

type ResponseAirport operation.Airport

type ResponseShopItems []*operation.ShopItem

type ResponseArtifacts []*operation.Artifact
