package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/face"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	GetMyProfile(w http.ResponseWriter, r *http.Request)
	EnrollFace(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	faceService     face.FaceService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, faceService face.FaceService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		faceService:     faceService,
	}
}

// GetMyProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetMyProfile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EnrollFace implements EmployeeHandler.
func (h *employeeHandlerImpl) EnrollFace(w http.ResponseWriter, r *http.Request) {
	var req face.EnrollRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	// Get JSON data from 'data' field
	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Get file from form
	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Face reference image is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req.File = file
	req.FileHeader = fileHeader

	result, err := h.faceService.Enroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Face enrolled", result)
}
