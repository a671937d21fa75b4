package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/face"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	SignIn(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	faceService       face.FaceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, faceService face.FaceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		faceService:       faceService,
	}
}

// SignIn implements AttendanceHandler.
// Face verification gates the ledger: a rejected match returns before the
// session controller runs, so a failed attempt leaves no attendance row.
func (h *attendanceHandlerImpl) SignIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.SignInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SignIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Leave wins over the match outcome: an on-leave employee is told so
	// even when the captured face would not have matched.
	onLeave, err := h.attendanceService.OnLeaveToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if onLeave {
		response.HandleError(w, attendance.ErrOnLeave)
		return
	}

	match, err := h.faceService.Verify(r.Context(), req.Descriptor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !match.Accepted {
		response.UnauthorizedWithDetails(w, "FACE_MISMATCH",
			face.ErrFaceMismatch.Error(),
			map[string]string{"distance": fmt.Sprintf("%.4f", match.Distance)},
		)
		return
	}

	result, err := h.attendanceService.SignIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Outcome == attendance.OutcomeAlreadySignedIn {
		response.SuccessWithMessage(w, "Already signed in today", result)
		return
	}

	response.Created(w, "Sign in successful", result)
}

// SignOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) SignOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.SignOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sign out successful", result)
}

// GetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// No record yet today is a normal state, not an error.
	response.Success(w, result)
}

// ListMine implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler. Admin only.
// Month and year default to the current month when absent.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	var err error
	if raw := r.URL.Query().Get("month"); raw != "" {
		if month, err = strconv.Atoi(raw); err != nil {
			response.BadRequest(w, "Query parameter 'month' must be a number", nil)
			return
		}
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil {
			response.BadRequest(w, "Query parameter 'year' must be a number", nil)
			return
		}
	}

	result, err := h.attendanceService.ListAll(r.Context(), attendance.ListFilter{
		Month: month,
		Year:  year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
