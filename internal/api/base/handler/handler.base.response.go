package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/Mbenve9198/bdr-tool-backend/internal/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse writes a JSON response with Content-Type: application/json; charset=utf-8
// so UTF-8 payloads render correctly in every client.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandlerWrapper wraps a handler body with recover for domain handlers
// that do not embed BaseHandler.
func SafeHandlerWrapper(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()

			JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": fmt.Sprintf("Unexpected internal error: %v", r),
				"status":  "error",
			})
		}
	}()
	return handler()
}

// SafeHandler wraps a handler with recover so a panic still produces a
// response for the client.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Unexpected internal error: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse normalizes the response envelope for every endpoint.
//
// Parameters:
// - c: Fiber context
// - data: payload for the client (nil when only reporting an error)
// - err: error, nil on success
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeDatabase.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
