package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	generateLoadIdentifiersHandler commands.GenerateLoadIdentifiersCommandHandler
	submitBOLHandler               commands.SubmitBOLCommandHandler
	approveBOLHandler              commands.ApproveBOLCommandHandler

	// Query handlers
	getBrokerSubmissionsHandler queries.GetBrokerSubmissionsQueryHandler
	getSubmissionHandler        queries.GetSubmissionQueryHandler
	getNotificationsHandler     queries.GetNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	generateLoadIdentifiersHandler commands.GenerateLoadIdentifiersCommandHandler,
	submitBOLHandler commands.SubmitBOLCommandHandler,
	approveBOLHandler commands.ApproveBOLCommandHandler,
	getBrokerSubmissionsHandler queries.GetBrokerSubmissionsQueryHandler,
	getSubmissionHandler queries.GetSubmissionQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
) *Server {
	return &Server{
		generateLoadIdentifiersHandler: generateLoadIdentifiersHandler,
		submitBOLHandler:               submitBOLHandler,
		approveBOLHandler:              approveBOLHandler,
		getBrokerSubmissionsHandler:    getBrokerSubmissionsHandler,
		getSubmissionHandler:           getSubmissionHandler,
		getNotificationsHandler:        getNotificationsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/load-identifiers", s.GenerateLoadIdentifiers)

	api.POST("/bol-workflow/submissions", s.SubmitBOL)
	api.POST("/bol-workflow/submissions/:id/approval", s.ReviewBOL)
	api.GET("/bol-workflow/submissions", s.GetBrokerSubmissions)
	api.GET("/bol-workflow/submissions/:id", s.GetSubmission)

	api.GET("/notifications", s.GetNotifications)
}

// GenerateLoadIdentifiers handles POST /api/v1/load-identifiers - derives the
// identifier set for a new load posting.
func (s *Server) GenerateLoadIdentifiers(ctx echo.Context) error {
	var request GenerateLoadIdentifiersRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewGenerateLoadIdentifiersCommand(request.toData())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid load data: " + err.Error(),
		})
	}

	identifiers, err := s.generateLoadIdentifiersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	return ctx.JSON(http.StatusOK, newGenerateLoadIdentifiersResponse(identifiers))
}

// SubmitBOL handles POST /api/v1/bol-workflow/submissions - a driver submits
// delivery paperwork for broker review.
func (s *Server) SubmitBOL(ctx echo.Context) error {
	var request SubmitBOLRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	submissionID := kernel.NewUUID()

	cmd, err := commands.NewSubmitBOLCommand(commands.SubmitBOLParams{
		SubmissionID:     submissionID,
		LoadID:           request.LoadID,
		LoadIdentifierID: request.LoadIdentifierID,
		DriverID:         request.DriverID,
		DriverName:       request.DriverName,
		DriverContact:    request.DriverContact,
		BrokerID:         request.BrokerID,
		BrokerName:       request.BrokerName,
		BrokerContact:    request.BrokerContact,
		ShipperID:        request.ShipperID,
		ShipperName:      request.ShipperName,
		ShipperEmail:     request.ShipperEmail,
		BOLData:          request.BOLData.toBOLData(),
	})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid submission data: " + err.Error(),
		})
	}

	if handleErr := s.submitBOLHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(errorResponse(handleErr))
	}

	return ctx.JSON(http.StatusCreated, SubmitBOLResponse{
		SubmissionID: submissionID.String(),
	})
}

// ReviewBOL handles POST /api/v1/bol-workflow/submissions/:id/approval - the
// broker approves or rejects a submission.
func (s *Server) ReviewBOL(ctx echo.Context) error {
	submissionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid submission id",
		})
	}

	var request ReviewBOLRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	params := commands.ApproveBOLParams{
		SubmissionID:  submissionID,
		BrokerID:      request.BrokerID,
		Approved:      request.Approved,
		ReviewNotes:   request.ReviewNotes,
		BaseRate:      request.BaseRate,
		BillTo:        notification.Role(request.BillTo),
		DriverContact: request.DriverContact,
	}
	if request.Adjustments != nil {
		params.Adjustments = *request.Adjustments
	}

	cmd, err := commands.NewApproveBOLCommand(params)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid review data: " + err.Error(),
		})
	}

	invoiceID, err := s.approveBOLHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	response := ReviewBOLResponse{Status: "rejected"}
	if request.Approved {
		response.Status = "completed"
		response.InvoiceID = &invoiceID
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBrokerSubmissions handles GET /api/v1/bol-workflow/submissions - the
// broker's review queue, newest first.
func (s *Server) GetBrokerSubmissions(ctx echo.Context) error {
	query, err := queries.NewGetBrokerSubmissionsQuery(ctx.QueryParam("brokerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "brokerId query parameter is required",
		})
	}

	rows, err := s.getBrokerSubmissionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	response := make([]SubmissionSummary, len(rows))
	for i, row := range rows {
		response[i] = newSubmissionSummary(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSubmission handles GET /api/v1/bol-workflow/submissions/:id - the full
// detail view of one submission.
func (s *Server) GetSubmission(ctx echo.Context) error {
	submissionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid submission id",
		})
	}

	query, err := queries.NewGetSubmissionQuery(submissionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid submission id",
		})
	}

	row, err := s.getSubmissionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	return ctx.JSON(http.StatusOK, newSubmissionDetail(row))
}

// GetNotifications handles GET /api/v1/notifications - the notification log,
// optionally narrowed to one submission via the submissionId query parameter.
func (s *Server) GetNotifications(ctx echo.Context) error {
	var query queries.GetNotificationsQuery

	if raw := ctx.QueryParam("submissionId"); raw != "" {
		submissionID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid submissionId query parameter",
			})
		}

		query, err = queries.NewGetNotificationsQueryForSubmission(submissionID)
		if err != nil {
			return ctx.JSON(errorResponse(err))
		}
	} else {
		query = queries.NewGetNotificationsQuery()
	}

	rows, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorResponse(err))
	}

	response := make([]NotificationView, len(rows))
	for i, row := range rows {
		response[i] = newNotificationView(row)
	}

	return ctx.JSON(http.StatusOK, response)
}
