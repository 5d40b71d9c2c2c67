// Package ports declares the interfaces the services depend on. Adapters
// under internal/adapters implement them.
package ports

//go:generate mockgen -source=cache.go -destination=mocks/cache_mock.go -package=mocks
//go:generate mockgen -source=config_store.go -destination=mocks/config_store_mock.go -package=mocks
//go:generate mockgen -source=geo.go -destination=mocks/geo_mock.go -package=mocks
//go:generate mockgen -source=map_repository.go -destination=mocks/map_repository_mock.go -package=mocks
//go:generate mockgen -source=pouch_repository.go -destination=mocks/pouch_repository_mock.go -package=mocks
//go:generate mockgen -source=sector_repository.go -destination=mocks/sector_repository_mock.go -package=mocks
