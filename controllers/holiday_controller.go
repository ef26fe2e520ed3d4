package controllers

import (
	"strconv"
	"time"

	"festivos/constants"
	"festivos/dto"
	"festivos/response"
	"festivos/services"
	"festivos/services/logger"
	"festivos/types"
	"festivos/validator"

	"github.com/gin-gonic/gin"
)

type HolidayController struct {
	Holidays services.HolidayServiceInterface
	Logger   logger.Logger
}

func NewHolidayController(holidays services.HolidayServiceInterface, log logger.Logger) HolidayController {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return HolidayController{
		Holidays: holidays,
		Logger:   log,
	}
}

// ListHolidays godoc
// @Summary     Holidays of a country in a year
// @Tags        holidays
// @Produce     json
// @Param       countryId path int true "Country id"
// @Param       year      path int true "Four-digit year"
// @Success     200 {object} response.Response{data=dto.HolidayListResponse}
// @Failure     400 {object} response.Response
// @Router      /holidays/list/{countryId}/{year} [get]
func (h HolidayController) ListHolidays(c *gin.Context) {
	countryID, ok := parseIDParam(c, "countryId")
	if !ok {
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || validator.ValidateYear(year) != nil {
		response.BadRequest(c, "Invalid year")
		return
	}

	holidays, err := h.Holidays.ListHolidays(c.Request.Context(), countryID, year)
	if err != nil {
		h.Logger.Error("list holidays country=%d year=%d: %v", countryID, year, err)
		response.AppError(c, err)
		return
	}

	response.Success(c, dto.NewHolidayListResponse(countryID, year, holidays))
}

// VerifyHoliday godoc
// @Summary     Whether a date is a holiday
// @Tags        holidays
// @Produce     json
// @Param       countryId path int true "Country id"
// @Param       year      path int true "Year"
// @Param       month     path int true "Month"
// @Param       day       path int true "Day"
// @Success     200 {object} response.Response{data=dto.VerifyHolidayResponse}
// @Failure     400 {object} response.Response
// @Router      /holidays/verify/{countryId}/{year}/{month}/{day} [get]
func (h HolidayController) VerifyHoliday(c *gin.Context) {
	countryID, ok := parseIDParam(c, "countryId")
	if !ok {
		return
	}
	year, errYear := strconv.Atoi(c.Param("year"))
	month, errMonth := strconv.Atoi(c.Param("month"))
	day, errDay := strconv.Atoi(c.Param("day"))
	if errYear != nil || errMonth != nil || errDay != nil {
		response.BadRequest(c, "Invalid date")
		return
	}
	if validator.ValidateYear(year) != nil {
		response.BadRequest(c, "Invalid year")
		return
	}
	if err := validator.ValidateCivilDate(year, month, day); err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}

	date := types.CivilDate(year, time.Month(month), day)
	isHoliday, err := h.Holidays.IsHoliday(c.Request.Context(), countryID, date)
	if err != nil {
		h.Logger.Error("verify holiday country=%d date=%s: %v", countryID, date.Format(constants.DateLayout), err)
		response.AppError(c, err)
		return
	}

	response.Success(c, dto.VerifyHolidayResponse{
		CountryID: countryID,
		Date:      date.Format(constants.DateLayout),
		IsHoliday: isHoliday,
	})
}

// FindHoliday godoc
// @Summary     The holiday falling on an ISO date, if any
// @Tags        holidays
// @Produce     json
// @Param       countryId path int    true "Country id"
// @Param       date      path string true "YYYY-MM-DD"
// @Success     200 {object} response.Response{data=dto.VerifyHolidayResponse}
// @Failure     400 {object} response.Response
// @Router      /holidays/date/{countryId}/{date} [get]
func (h HolidayController) FindHoliday(c *gin.Context) {
	countryID, ok := parseIDParam(c, "countryId")
	if !ok {
		return
	}
	date, err := validator.ParseISODate(c.Param("date"))
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}
	if validator.ValidateYear(date.Year()) != nil {
		response.BadRequest(c, "Invalid year")
		return
	}

	holiday, err := h.Holidays.FindRuleForDate(c.Request.Context(), countryID, date)
	if err != nil {
		h.Logger.Error("find holiday country=%d date=%s: %v", countryID, date.Format(constants.DateLayout), err)
		response.AppError(c, err)
		return
	}

	result := dto.VerifyHolidayResponse{
		CountryID: countryID,
		Date:      date.Format(constants.DateLayout),
		IsHoliday: holiday != nil,
	}
	if holiday != nil {
		mapped := dto.NewHolidayResponse(*holiday)
		result.Holiday = &mapped
	}
	response.Success(c, result)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
