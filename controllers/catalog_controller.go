package controllers

import (
	"festivos/dto"
	"festivos/response"
	"festivos/services"
	"festivos/services/logger"
	"festivos/types"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog services.Catalog
	Search  *services.CountrySearch
	Logger  logger.Logger
}

func NewCatalogController(catalog services.Catalog, log logger.Logger) CatalogController {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return CatalogController{
		Catalog: catalog,
		Search:  services.NewCountrySearch(catalog),
		Logger:  log,
	}
}

// GetCountries godoc
// @Summary     All countries, by name
// @Tags        catalog
// @Produce     json
// @Success     200 {object} response.Response{data=[]dto.CountryResponse}
// @Router      /countries [get]
func (cc CatalogController) GetCountries(c *gin.Context) {
	countries, err := cc.Catalog.ListCountries(c.Request.Context())
	if err != nil {
		cc.Logger.Error("list countries: %v", err)
		response.AppError(c, err)
		return
	}

	out := make([]dto.CountryResponse, 0, len(countries))
	for _, country := range countries {
		out = append(out, dto.CountryResponse{ID: country.ID, Name: country.Name})
	}
	response.Success(c, out)
}

// GetCountry godoc
// @Summary     One country
// @Tags        catalog
// @Produce     json
// @Param       id path int true "Country id"
// @Success     200 {object} response.Response{data=dto.CountryResponse}
// @Failure     404 {object} response.Response
// @Router      /countries/detail/{id} [get]
func (cc CatalogController) GetCountry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	country, err := cc.Catalog.GetCountry(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.CountryResponse{ID: country.ID, Name: country.Name})
}

// SearchCountries godoc
// @Summary     Accent-insensitive country search
// @Tags        catalog
// @Produce     json
// @Param       name query string true "Part of the name"
// @Success     200 {object} response.Response{data=dto.CountrySearchResponse}
// @Router      /countries/search [get]
func (cc CatalogController) SearchCountries(c *gin.Context) {
	matches, suggestion, err := cc.Search.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		cc.Logger.Error("search countries: %v", err)
		response.AppError(c, err)
		return
	}

	out := dto.CountrySearchResponse{
		Countries:  make([]dto.CountryResponse, 0, len(matches)),
		Suggestion: suggestion,
	}
	for _, match := range matches {
		similarity := match.Similarity
		out.Countries = append(out.Countries, dto.CountryResponse{
			ID:         match.Country.ID,
			Name:       match.Country.Name,
			Similarity: &similarity,
		})
	}
	response.Success(c, out)
}

// GetTypes godoc
// @Summary     The four holiday rule types
// @Tags        catalog
// @Produce     json
// @Success     200 {object} response.Response{data=[]dto.HolidayTypeResponse}
// @Router      /types [get]
func (cc CatalogController) GetTypes(c *gin.Context) {
	holidayTypes := services.HolidayTypes
	if lister, ok := cc.Catalog.(services.TypeLister); ok {
		stored, err := lister.ListTypes(c.Request.Context())
		if err != nil {
			cc.Logger.Error("list types: %v", err)
			response.AppError(c, err)
			return
		}
		holidayTypes = stored
	}

	out := make([]dto.HolidayTypeResponse, 0, len(holidayTypes))
	for _, holidayType := range holidayTypes {
		out = append(out, dto.HolidayTypeResponse{
			ID:   holidayType.ID,
			Name: holidayType.Name,
			Code: types.RuleType(holidayType.ID).String(),
		})
	}
	response.Success(c, out)
}
