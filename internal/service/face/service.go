package face

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/face"
	"github.com/emsuite/ems-backend-go/internal/service/file"
	"github.com/go-chi/jwtauth/v5"
)

type FaceServiceImpl struct {
	faceRepo       face.FaceRepository
	fileService    file.FileService
	matchThreshold float64

	now func() time.Time
}

func NewFaceService(faceRepo face.FaceRepository, fileService file.FileService, matchThreshold float64) *FaceServiceImpl {
	return &FaceServiceImpl{
		faceRepo:       faceRepo,
		fileService:    fileService,
		matchThreshold: matchThreshold,
		now:            time.Now,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// Enroll implements face.FaceService.
func (s *FaceServiceImpl) Enroll(ctx context.Context, req face.EnrollRequest) (face.EnrollResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return face.EnrollResponse{}, err
	}

	if len(req.Descriptor) == 0 {
		return face.EnrollResponse{}, face.ErrNoFaceDetected
	}

	if err := req.Validate(); err != nil {
		return face.EnrollResponse{}, err
	}

	imagePath, err := s.fileService.UploadFaceReference(ctx, employeeID, req.File, req.FileHeader.Filename)
	if err != nil {
		return face.EnrollResponse{}, fmt.Errorf("failed to store face reference image: %w", err)
	}

	enrolledAt := s.now().UTC()
	if err := s.faceRepo.SaveProfile(ctx, employeeID, req.Descriptor, imagePath, enrolledAt); err != nil {
		// Don't leave an orphan image behind.
		_ = s.fileService.DeleteFile(ctx, imagePath)
		return face.EnrollResponse{}, fmt.Errorf("failed to save face profile: %w", err)
	}

	return face.EnrollResponse{
		FaceImagePath: imagePath,
		EnrolledAt:    enrolledAt.Format(time.RFC3339),
	}, nil
}

// Verify implements face.FaceService.
func (s *FaceServiceImpl) Verify(ctx context.Context, descriptor []float32) (face.MatchResult, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return face.MatchResult{}, err
	}

	if len(descriptor) == 0 {
		return face.MatchResult{}, face.ErrNoFaceDetected
	}
	if len(descriptor) != face.DescriptorDim {
		return face.MatchResult{}, face.ErrNoFaceDetected
	}

	profile, err := s.faceRepo.GetProfile(ctx, employeeID)
	if err != nil {
		return face.MatchResult{}, fmt.Errorf("failed to get face profile: %w", err)
	}
	if !profile.Enrolled() {
		return face.MatchResult{}, face.ErrNotEnrolled
	}

	distance := EuclideanDistance(profile.Descriptor, descriptor)

	return face.MatchResult{
		Accepted: distance <= s.matchThreshold,
		Distance: distance,
	}, nil
}

// EuclideanDistance returns the L2 distance between two descriptors.
// Descriptors of unequal length never match; distance is reported as +Inf.
func EuclideanDistance(a, b []float32) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
