// Copyright (C) 2024 LetMe Accommodation Ltd.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package api

import (
	"log/slog"
	"os"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/letme-homes/letme/internal/auth"
	"github.com/letme-homes/letme/internal/core"
	"github.com/letme-homes/letme/internal/core/application"
	"github.com/letme-homes/letme/internal/core/listing"
	"github.com/letme-homes/letme/internal/core/property"
	"github.com/letme-homes/letme/internal/core/unit"
	"github.com/letme-homes/letme/internal/database/repositories"
	"github.com/letme-homes/letme/internal/echohttp"
	"github.com/letme-homes/letme/internal/storage"
	"github.com/sendgrid/sendgrid-go"
)

func whoami(c echo.Context) error {
	return c.JSON(200, map[string]string{
		"userId": core.GetSession(c).GetUserID(),
		"email":  core.GetSession(c).GetEmail(),
	})
}

func health(c echo.Context) error {
	return c.String(200, "ok")
}

func Start(db core.DB) {
	ory := auth.GetOryAPIClient(os.Getenv("ORY_KRATOS_PUBLIC"))
	storageClient := storage.NewClient(os.Getenv("STORAGE_URL"), os.Getenv("STORAGE_SERVICE_KEY"))

	// init all repositories using the provided database
	areaRepository := repositories.NewAreaRepository(db)
	addressRepository := repositories.NewAddressRepository(db)
	propertyRepository := repositories.NewPropertyRepository(db)
	unitRepository := repositories.NewUnitRepository(db)
	adminUserRepository := repositories.NewAdminUserRepository(db)

	propertyService := property.NewService(propertyRepository, unitRepository)

	applicationConfig := application.LoadConfig()
	applicationService := application.NewService(applicationConfig, sendgrid.NewSendClient(applicationConfig.APIKey))

	// init all http controllers using the repositories
	listingController := listing.NewHTTPController(areaRepository, propertyRepository, unitRepository)
	propertyController := property.NewHTTPController(propertyRepository, addressRepository, propertyService, storageClient)
	unitController := unit.NewHTTPController(unitRepository, propertyRepository, storageClient)
	applicationController := application.NewHTTPController(applicationConfig, applicationService)

	server := echohttp.Server()

	apiV1Router := server.Group("/api/v1")

	// apply the health route without any session middleware
	apiV1Router.GET("/health/", health)

	// public browsing surface
	apiV1Router.GET("/areas/", listingController.ListAreas)
	apiV1Router.GET("/areas/:areaID/properties/", listingController.ListByArea)
	apiV1Router.GET("/properties/:propertyID/", listingController.Read)
	apiV1Router.POST("/applications/", applicationController.Dispatch)

	// everything below this line is protected by the session middleware
	adminRouter := apiV1Router.Group("/admin", auth.SessionMiddleware(ory), auth.AdminEnrollmentMiddleware(adminUserRepository))
	adminRouter.GET("/whoami/", whoami)

	adminRouter.GET("/addresses/", propertyController.ListAddresses)

	propertyRouter := adminRouter.Group("/properties")
	propertyRouter.GET("/", propertyController.List)
	propertyRouter.POST("/", propertyController.Create)
	propertyRouter.GET("/:propertyID/", propertyController.Read)
	propertyRouter.PATCH("/:propertyID/", propertyController.Update)
	propertyRouter.DELETE("/:propertyID/", propertyController.Delete)
	propertyRouter.DELETE("/:propertyID/cascade/", propertyController.CascadeDelete)

	unitRouter := adminRouter.Group("/units")
	unitRouter.GET("/", unitController.List)
	unitRouter.POST("/", unitController.Create)
	unitRouter.GET("/:unitID/", unitController.Read)
	unitRouter.PATCH("/:unitID/", unitController.Update)
	unitRouter.DELETE("/:unitID/", unitController.Delete)

	routes := server.Routes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
	// print all registered routes
	for _, route := range routes {
		if route.Method != "echo_route_not_found" {
			slog.Info(route.Path, "method", route.Method)
		}
	}
	slog.Error("failed to start server", "err", server.Start(":8080").Error())
}
