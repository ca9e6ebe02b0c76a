package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/model"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/repository"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/validate"
)

// ReservationHandler serves the reservation endpoints.  Every write goes
// through the validate pipeline before the store is touched, so the
// repository never sees a malformed record.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
	Policy       validate.Policy
}

func NewReservationHandler(r *repository.ReservationRepo, p validate.Policy) *ReservationHandler {
	return &ReservationHandler{Reservations: r, Policy: p}
}

// Create admits a new reservation.  POST /v1/reservations
func (h *ReservationHandler) Create(c echo.Context) error {
	payload, httpErr := bindPayload(c)
	if httpErr != nil {
		return httpErr
	}
	in, verr := validate.Reservation(payload, h.Policy, time.Now())
	if verr != nil {
		return badRequest(c, verr)
	}

	res := &model.Reservation{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		MobileNumber: in.MobileNumber,
		Date:         in.Date,
		Time:         in.Time,
		People:       in.People,
		Status:       model.StatusBooked,
	}
	if err := h.Reservations.Create(c.Request().Context(), res); err != nil {
		return storeError(c, err)
	}

	publishLifecycle(c, res, nil)
	return c.JSON(http.StatusCreated, echo.Map{"data": res})
}

// Get returns a single reservation.  GET /v1/reservations/:id
func (h *ReservationHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return notFoundf(c, "reservation %s does not exist", c.Param("id"))
	}
	res, err := h.Reservations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFoundf(c, "reservation %d does not exist", id)
		}
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": res})
}

// List returns reservations for a date, or the full history for a phone
// number.  GET /v1/reservations?date=YYYY-MM-DD or ?mobile_number=...
func (h *ReservationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if number := c.QueryParam("mobile_number"); number != "" {
		out, err := h.Reservations.FindByPhone(ctx, number)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"data": out})
	}

	date := c.QueryParam("date")
	if date == "" {
		return badRequest(c, &validate.Error{
			Kind:    validate.KindMissingField,
			Message: "either date or mobile_number query parameter is required",
		})
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return badRequest(c, &validate.Error{
			Kind:    validate.KindInvalidDate,
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}
	out, err := h.Reservations.ListByDate(ctx, date)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// Update edits the guest fields of an existing reservation.  The payload
// is re-validated in full; status never changes here.
// PUT /v1/reservations/:id
func (h *ReservationHandler) Update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return notFoundf(c, "reservation %s does not exist", c.Param("id"))
	}
	payload, httpErr := bindPayload(c)
	if httpErr != nil {
		return httpErr
	}
	in, verr := validate.ReservationEdit(payload, h.Policy, time.Now())
	if verr != nil {
		return badRequest(c, verr)
	}

	ctx := c.Request().Context()
	res, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFoundf(c, "reservation %d does not exist", id)
		}
		return storeError(c, err)
	}
	if err := model.CheckEditable(res); err != nil {
		return conflict(c, err)
	}

	res.FirstName = in.FirstName
	res.LastName = in.LastName
	res.MobileNumber = in.MobileNumber
	res.Date = in.Date
	res.Time = in.Time
	res.People = in.People

	updated, err := h.Reservations.UpdateFields(ctx, res)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": updated})
}

type statusReq struct {
	Status string `json:"status"`
}

// UpdateStatus moves a reservation along its lifecycle.  The forward
// path is booked -> seated -> finished; cancelled is reachable from any
// non-terminal state; terminal reservations reject everything except a
// no-op write of their current status.  PUT /v1/reservations/:id/status
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return notFoundf(c, "reservation %s does not exist", c.Param("id"))
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	res, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFoundf(c, "reservation %d does not exist", id)
		}
		return storeError(c, err)
	}

	target, verr := validate.Status(req.Status)
	if verr != nil {
		return badRequest(c, verr)
	}
	if err := model.CanTransition(res.Status, target); err != nil {
		return conflict(c, err)
	}
	if res.Status == target {
		// No-op write; nothing to persist, nothing to announce.
		return c.JSON(http.StatusOK, echo.Map{"data": res})
	}

	updated, err := h.Reservations.SetStatus(ctx, id, target)
	if err != nil {
		return storeError(c, err)
	}

	publishLifecycle(c, updated, nil)
	return c.JSON(http.StatusOK, echo.Map{"data": updated})
}
