// Package handler contains the HTTP handlers for the reservation service.
// Handlers bind raw payloads, run them through the validate pipeline, and
// translate store and lifecycle errors into the HTTP error vocabulary:
// 400 for validation failures, 404 for missing records, 409 for
// state conflicts, 500 for store faults.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/model"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/queue"
	queue_publisher "github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/service"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/validate"
)

// bindPayload decodes a JSON body into a raw map so the validate
// pipeline can see every property the client actually sent, including
// ones no struct field would capture.
func bindPayload(c echo.Context) (map[string]any, *echo.HTTPError) {
	payload := map[string]any{}
	if err := c.Bind(&payload); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return payload, nil
}

// parseID reads a numeric path parameter.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func badRequest(c echo.Context, verr *validate.Error) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error":   string(verr.Kind),
		"message": verr.Message,
	})
}

func notFoundf(c echo.Context, format string, args ...any) error {
	return c.JSON(http.StatusNotFound, echo.Map{
		"error":   "NotFound",
		"message": fmt.Sprintf(format, args...),
	})
}

func conflict(c echo.Context, err error) error {
	return c.JSON(http.StatusConflict, echo.Map{
		"error":   "Conflict",
		"message": err.Error(),
	})
}

// storeError hides the underlying fault from the client; the cause is
// already on the server log.
func storeError(c echo.Context, err error) error {
	c.Logger().Errorf("store error: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error":   "StoreError",
		"message": "database error",
	})
}

// publishLifecycle emits a reservation lifecycle event.  Publishing is
// best effort: the database commit is the source of truth and a broker
// outage must never fail the request.
func publishLifecycle(c echo.Context, res *model.Reservation, tableID *uint64) {
	ev := queue.ReservationEvent{
		ReservationID:   res.ID,
		Status:          string(res.Status),
		TableID:         tableID,
		GuestName:       res.FirstName + " " + res.LastName,
		MobileNumber:    res.MobileNumber,
		ReservationDate: res.Date,
		ReservationTime: res.Time,
		People:          res.People,
		OccurredAt:      time.Now().UTC().Format(time.RFC3339),
	}
	// Detached context: the publish may outlive the request.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := queue_publisher.PublishReservationEvent(ctx, ev); err != nil {
		c.Logger().Warnf("lifecycle publish failed for reservation %d: %v", res.ID, err)
	}
}
