//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/city-weather/internal/bootstrap"
	"github.com/yanqian/city-weather/internal/domain/access"
	"github.com/yanqian/city-weather/internal/domain/geocode"
	"github.com/yanqian/city-weather/internal/domain/weather"
	"github.com/yanqian/city-weather/internal/infra/config"
	"github.com/yanqian/city-weather/internal/infra/openmeteo"
	httpiface "github.com/yanqian/city-weather/internal/interface/http"
	"github.com/yanqian/city-weather/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideOpenMeteoConfig,
		provideWeatherConfig,
		provideCityRepository,
		openmeteo.NewGeocodingClient,
		openmeteo.NewForecastClient,
		wire.Bind(new(geocode.Geocoder), new(*openmeteo.GeocodingClient)),
		wire.Bind(new(weather.ForecastClient), new(*openmeteo.ForecastClient)),
		geocode.NewResolver,
		weather.NewService,
		access.NewGate,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
