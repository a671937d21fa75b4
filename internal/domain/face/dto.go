package face

import (
	"mime/multipart"
	"strings"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type EnrollRequest struct {
	Descriptor []float32             `json:"descriptor"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *EnrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Descriptor) > 0 && len(r.Descriptor) != DescriptorDim {
		errs = append(errs, validator.ValidationError{
			Field:   "descriptor",
			Message: validator.Itoa(DescriptorDim) + " values expected in face descriptor",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "image",
			Message: "face reference image is required",
		})
	} else {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "image",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 5<<20 { // 5MB
			errs = append(errs, validator.ValidationError{
				Field:   "image",
				Message: "face reference image size must not exceed 5MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EnrollResponse struct {
	FaceImagePath string `json:"face_image_path"`
	EnrolledAt    string `json:"enrolled_at"`
}

// MatchResult is the outcome of one verification attempt. Distance is
// reported even on rejection, for diagnostics.
type MatchResult struct {
	Accepted bool    `json:"accepted"`
	Distance float64 `json:"distance"`
}
