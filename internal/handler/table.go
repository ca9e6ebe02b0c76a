package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/model"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/repository"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/validate"
)

// TableHandler serves the table endpoints.  Seat and Finish are the two
// write paths that touch a table and a reservation together; both run
// inside a single transaction with row locks on everything they read,
// so two hosts racing for the same table serialize instead of
// double-booking it.
type TableHandler struct {
	Tables       *repository.TableRepo
	Reservations *repository.ReservationRepo
}

func NewTableHandler(t *repository.TableRepo, r *repository.ReservationRepo) *TableHandler {
	return &TableHandler{Tables: t, Reservations: r}
}

// Create registers a new table.  POST /v1/tables
func (h *TableHandler) Create(c echo.Context) error {
	payload, httpErr := bindPayload(c)
	if httpErr != nil {
		return httpErr
	}
	in, verr := validate.Table(payload)
	if verr != nil {
		return badRequest(c, verr)
	}

	t := &model.Table{Name: in.Name, Capacity: in.Capacity, Status: model.TableStatusFree}
	if err := h.Tables.Create(c.Request().Context(), t); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": t})
}

// List returns all tables ordered by name.  GET /v1/tables
func (h *TableHandler) List(c echo.Context) error {
	out, err := h.Tables.List(c.Request().Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// Seat binds a reservation to a table: the table becomes Occupied with
// the reservation's identity and the reservation becomes seated, in one
// atomic step.  Both rows are read under FOR UPDATE before the checks
// run, so the decision and the write see the same state.
// PUT /v1/tables/:id/seat
func (h *TableHandler) Seat(c echo.Context) error {
	tableID, ok := parseID(c, "id")
	if !ok {
		return notFoundf(c, "table %s does not exist", c.Param("id"))
	}
	payload, httpErr := bindPayload(c)
	if httpErr != nil {
		return httpErr
	}
	resID, verr := validate.Seat(payload)
	if verr != nil {
		return badRequest(c, verr)
	}

	ctx := c.Request().Context()
	tx, err := h.Tables.DB().BeginTx(ctx, nil)
	if err != nil {
		return storeError(c, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	t, err := h.Tables.GetForUpdateTx(ctx, tx, tableID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFoundf(c, "table %d does not exist", tableID)
		}
		return storeError(c, err)
	}
	res, err := h.Reservations.GetForUpdateTx(ctx, tx, resID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFoundf(c, "reservation %d does not exist", resID)
		}
		return storeError(c, err)
	}

	if err := model.CheckSeat(t, res); err != nil {
		return conflict(c, err)
	}

	if err := h.Tables.AssignTx(ctx, tx, tableID, resID); err != nil {
		return storeError(c, err)
	}
	if err := h.Reservations.SetStatusTx(ctx, tx, resID, model.StatusSeated); err != nil {
		return storeError(c, err)
	}
	if err := tx.Commit(); err != nil {
		return storeError(c, err)
	}
	committed = true

	seated, err := h.Tables.GetByID(ctx, tableID)
	if err != nil {
		return storeError(c, err)
	}
	res.Status = model.StatusSeated
	publishLifecycle(c, res, &tableID)
	return c.JSON(http.StatusOK, echo.Map{"data": seated})
}

// Finish releases a table and closes out the reservation seated at it.
// Like Seat this is a single transaction: the table cannot be freed
// while its reservation stays seated, or the other way around.
// DELETE /v1/tables/:id/seat
func (h *TableHandler) Finish(c echo.Context) error {
	tableID, ok := parseID(c, "id")
	if !ok {
		return notFoundf(c, "table %s does not exist", c.Param("id"))
	}

	ctx := c.Request().Context()
	tx, err := h.Tables.DB().BeginTx(ctx, nil)
	if err != nil {
		return storeError(c, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	t, err := h.Tables.GetForUpdateTx(ctx, tx, tableID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFoundf(c, "table %d does not exist", tableID)
		}
		return storeError(c, err)
	}
	if err := model.CheckFinish(t); err != nil {
		return conflict(c, err)
	}

	if err := h.Tables.ReleaseTx(ctx, tx, tableID); err != nil {
		return storeError(c, err)
	}
	var finished *model.Reservation
	if t.ReservationID != nil {
		finished, err = h.Reservations.GetForUpdateTx(ctx, tx, *t.ReservationID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return storeError(c, err)
		}
		if err := h.Reservations.SetStatusTx(ctx, tx, *t.ReservationID, model.StatusFinished); err != nil {
			return storeError(c, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storeError(c, err)
	}
	committed = true

	freed, err := h.Tables.GetByID(ctx, tableID)
	if err != nil {
		return storeError(c, err)
	}
	if finished != nil {
		finished.Status = model.StatusFinished
		publishLifecycle(c, finished, &tableID)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": freed})
}
