package http

import (
	"net/http"

	"lockerroom/internal/core/application/usecases/commands"
	"lockerroom/internal/core/application/usecases/queries"
	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/core/domain/model/locker"
	"lockerroom/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	reserveLockerHandler    commands.ReserveLockerCommandHandler
	checkInLockerHandler    commands.CheckInLockerCommandHandler
	confirmExtensionHandler commands.ConfirmExtensionCommandHandler
	checkOutLockerHandler   commands.CheckOutLockerCommandHandler

	// Query handlers
	getLockersHandler          queries.GetLockersQueryHandler
	getLockerHandler           queries.GetLockerQueryHandler
	getAvailableLockersHandler queries.GetAvailableLockersQueryHandler
	getOccupancyStatsHandler   queries.GetOccupancyStatsQueryHandler
	getLockerHistoryHandler    queries.GetLockerHistoryQueryHandler
	calculatePriceHandler      queries.CalculatePriceQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the write side handlers the server needs.
type CommandHandlers struct {
	ReserveLocker    commands.ReserveLockerCommandHandler
	CheckInLocker    commands.CheckInLockerCommandHandler
	ConfirmExtension commands.ConfirmExtensionCommandHandler
	CheckOutLocker   commands.CheckOutLockerCommandHandler
}

// QueryHandlers groups the read side handlers the server needs.
type QueryHandlers struct {
	GetLockers          queries.GetLockersQueryHandler
	GetLocker           queries.GetLockerQueryHandler
	GetAvailableLockers queries.GetAvailableLockersQueryHandler
	GetOccupancyStats   queries.GetOccupancyStatsQueryHandler
	GetLockerHistory    queries.GetLockerHistoryQueryHandler
	CalculatePrice      queries.CalculatePriceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds CommandHandlers, qs QueryHandlers) *Server {
	return &Server{
		reserveLockerHandler:       cmds.ReserveLocker,
		checkInLockerHandler:       cmds.CheckInLocker,
		confirmExtensionHandler:    cmds.ConfirmExtension,
		checkOutLockerHandler:      cmds.CheckOutLocker,
		getLockersHandler:          qs.GetLockers,
		getLockerHandler:           qs.GetLocker,
		getAvailableLockersHandler: qs.GetAvailableLockers,
		getOccupancyStatsHandler:   qs.GetOccupancyStats,
		getLockerHistoryHandler:    qs.GetLockerHistory,
		calculatePriceHandler:      qs.CalculatePrice,
	}
}

// ListLockers handles GET /api/v1/lockers - retrieves every locker.
func (s *Server) ListLockers(ctx echo.Context) error {
	lockers, err := s.getLockersHandler.Handle(ctx.Request().Context(), queries.NewGetLockersQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve lockers")
	}

	response := make([]servers.Locker, len(lockers))
	for i, l := range lockers {
		response[i] = toLocker(l)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListAvailableLockers handles GET /api/v1/lockers/available.
func (s *Server) ListAvailableLockers(ctx echo.Context, params servers.ListAvailableLockersParams) error {
	minSize := 0
	if params.MinSize != nil {
		minSize = *params.MinSize
	}

	query, err := queries.NewGetAvailableLockersQuery(minSize)
	if err != nil {
		return rejectInput(ctx, "Invalid query", err)
	}

	numbers, err := s.getAvailableLockersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve available lockers")
	}

	return ctx.JSON(http.StatusOK, numbers)
}

// GetLocker handles GET /api/v1/lockers/{number}.
func (s *Server) GetLocker(ctx echo.Context, number servers.LockerNumber) error {
	query, err := queries.NewGetLockerQuery(number)
	if err != nil {
		return rejectInput(ctx, "Invalid locker number", err)
	}

	snapshot, err := s.getLockerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve locker")
	}

	return ctx.JSON(http.StatusOK, toLocker(snapshot))
}

// ReserveLocker handles POST /api/v1/lockers/{number}/reservation.
func (s *Server) ReserveLocker(ctx echo.Context, number servers.LockerNumber) error {
	var body servers.ReserveLockerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReserveLockerCommand(number, body.CustomerName)
	if err != nil {
		return rejectInput(ctx, "Invalid reservation", err)
	}

	if err = s.reserveLockerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to reserve locker")
	}

	return ctx.JSON(http.StatusCreated, servers.Message{Message: locker.MessageReserved})
}

// CheckInLocker handles POST /api/v1/lockers/{number}/check-in.
// A reserved locker answers 202 and waits for POST .../extension.
func (s *Server) CheckInLocker(ctx echo.Context, number servers.LockerNumber) error {
	var body servers.CheckInLockerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCheckInLockerCommand(number, body.Weight, body.CheckInTime, body.DurationHours)
	if err != nil {
		return rejectInput(ctx, "Invalid check-in", err)
	}

	result, err := s.checkInLockerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to check in")
	}

	response := servers.CheckInResponse{
		Number:       result.Number,
		Message:      result.Message,
		Ticket:       toTicket(result.Ticket),
		CheckOutTime: result.CheckOutTime,
	}
	if result.Outcome == locker.ExtensionRequired {
		response.Outcome = servers.ExtensionRequired
		return ctx.JSON(http.StatusAccepted, response)
	}

	response.Outcome = servers.PreBooked
	return ctx.JSON(http.StatusCreated, response)
}

// ConfirmExtension handles POST /api/v1/lockers/{number}/extension.
func (s *Server) ConfirmExtension(ctx echo.Context, number servers.LockerNumber) error {
	var body servers.ConfirmExtensionJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmExtensionCommand(number, body.Extend)
	if err != nil {
		return rejectInput(ctx, "Invalid extension decision", err)
	}

	result, err := s.confirmExtensionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to extend reservation")
	}

	return ctx.JSON(http.StatusOK, servers.ExtensionResponse{
		Number:        result.Number,
		AddedHours:    result.AddedHours,
		DurationHours: result.DurationHours,
		CheckOutTime:  result.CheckOutTime,
		Message:       result.Message,
	})
}

// CheckOutLocker handles POST /api/v1/lockers/{number}/check-out.
func (s *Server) CheckOutLocker(ctx echo.Context, number servers.LockerNumber) error {
	cmd, err := commands.NewCheckOutLockerCommand(number)
	if err != nil {
		return rejectInput(ctx, "Invalid locker number", err)
	}
	return s.checkOut(ctx, cmd)
}

// CheckOutByTicket handles POST /api/v1/tickets/{ticket}/check-out.
func (s *Server) CheckOutByTicket(ctx echo.Context, ticket openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(ticket[:])
	if err != nil {
		return rejectInput(ctx, "Invalid ticket", err)
	}

	cmd, err := commands.NewCheckOutByTicketCommand(id)
	if err != nil {
		return rejectInput(ctx, "Invalid ticket", err)
	}
	return s.checkOut(ctx, cmd)
}

func (s *Server) checkOut(ctx echo.Context, cmd commands.CheckOutLockerCommand) error {
	result, err := s.checkOutLockerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to check out")
	}

	return ctx.JSON(http.StatusOK, servers.CheckOutResponse{
		Number:       result.Number,
		Ticket:       toTicket(result.Ticket),
		Weight:       result.Weight.Units(),
		CheckedOutAt: result.CheckedOutAt,
		Message:      result.Message,
	})
}

// GetLockerHistory handles GET /api/v1/lockers/{number}/history.
func (s *Server) GetLockerHistory(ctx echo.Context, number servers.LockerNumber, params servers.GetLockerHistoryParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetLockerHistoryQuery(number, limit)
	if err != nil {
		return rejectInput(ctx, "Invalid query", err)
	}

	history, err := s.getLockerHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve locker history")
	}

	response := make([]servers.ActivityEntry, len(history))
	for i, entry := range history {
		response[i] = servers.ActivityEntry{
			Id:           entry.ID.Bytes(),
			LockerNumber: entry.LockerNumber,
			Kind:         entry.Kind,
			OccurredAt:   entry.OccurredAt,
			Details: servers.ActivityDetails{
				CustomerName:  entry.Details.CustomerName,
				Weight:        entry.Details.Weight,
				DurationHours: entry.Details.DurationHours,
				CheckInTime:   entry.Details.CheckInTime,
				CheckOutTime:  entry.Details.CheckOutTime,
				Ticket:        entry.Details.Ticket,
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.getOccupancyStatsHandler.Handle(ctx.Request().Context(), queries.NewGetOccupancyStatsQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve stats")
	}

	return ctx.JSON(http.StatusOK, servers.Stats{
		TotalLockers:       stats.TotalLockers,
		SpaceAvailable:     stats.SpaceAvailable,
		Occupied:           stats.Occupied,
		ReservedUnoccupied: stats.ReservedUnoccupied,
		TotalWeightStored:  stats.TotalWeightStored.Units(),
		StoredValue:        stats.StoredValue,
	})
}

// CalculatePrice handles GET /api/v1/price.
func (s *Server) CalculatePrice(ctx echo.Context, params servers.CalculatePriceParams) error {
	query, err := queries.NewCalculatePriceQuery(params.Weight)
	if err != nil {
		return rejectInput(ctx, "Invalid weight", err)
	}

	quote, err := s.calculatePriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to calculate price")
	}

	return ctx.JSON(http.StatusOK, servers.PriceQuote{
		Weight:   quote.Weight,
		UnitRate: quote.UnitRate,
		Price:    quote.Price,
	})
}

func toLocker(s locker.Snapshot) servers.Locker {
	return servers.Locker{
		Number:           s.Number,
		Size:             s.Size,
		Status:           servers.LockerStatus(s.Status.String()),
		Available:        s.Available,
		Reserved:         s.Reserved,
		Weight:           s.Weight.Units(),
		CustomerName:     s.CustomerName,
		CheckInTime:      s.CheckInTime,
		CheckOutTime:     s.CheckOutTime,
		DurationHours:    s.DurationHours,
		Ticket:           toTicket(s.Ticket),
		ExtensionPending: s.ExtensionPending,
	}
}

func toTicket(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	ticket := id.Bytes()
	return &ticket
}
