package routes

import (
	"net/http"

	"festivos/controllers"
	"festivos/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, holidayController controllers.HolidayController, catalogController controllers.CatalogController) {
	docs.SwaggerInfo.BasePath = "/api/v1"

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	v1.GET("/holidays/list/:countryId/:year", holidayController.ListHolidays)
	v1.GET("/holidays/verify/:countryId/:year/:month/:day", holidayController.VerifyHoliday)
	v1.GET("/holidays/date/:countryId/:date", holidayController.FindHoliday)

	v1.GET("/countries", catalogController.GetCountries)
	v1.GET("/countries/search", catalogController.SearchCountries)
	v1.GET("/countries/detail/:id", catalogController.GetCountry)
	v1.GET("/types", catalogController.GetTypes)
}
