package face

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/face"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFaceRepo struct {
	profiles map[string]face.FaceProfile
}

func newFakeFaceRepo() *fakeFaceRepo {
	return &fakeFaceRepo{profiles: make(map[string]face.FaceProfile)}
}

func (f *fakeFaceRepo) GetProfile(ctx context.Context, employeeID string) (face.FaceProfile, error) {
	if profile, ok := f.profiles[employeeID]; ok {
		return profile, nil
	}
	return face.FaceProfile{EmployeeID: employeeID}, nil
}

func (f *fakeFaceRepo) SaveProfile(ctx context.Context, employeeID string, descriptor []float32, imagePath string, enrolledAt time.Time) error {
	f.profiles[employeeID] = face.FaceProfile{
		EmployeeID: employeeID,
		Descriptor: descriptor,
		ImagePath:  &imagePath,
		EnrolledAt: &enrolledAt,
	}
	return nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func descriptorOf(value float32) []float32 {
	d := make([]float32, face.DescriptorDim)
	for i := range d {
		d[i] = value
	}
	return d
}

func enroll(t *testing.T, repo *fakeFaceRepo, employeeID string, descriptor []float32) {
	t.Helper()
	require.NoError(t, repo.SaveProfile(context.Background(), employeeID, descriptor, "faces/"+employeeID+"/ref.jpg", time.Now().UTC()))
}

func TestVerifyAcceptsIdenticalDescriptor(t *testing.T) {
	repo := newFakeFaceRepo()
	enrolled := descriptorOf(0.1)
	enroll(t, repo, "emp-1", enrolled)

	svc := NewFaceService(repo, nil, 0.45)

	result, err := svc.Verify(authedContext(t, "emp-1"), enrolled)
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Zero(t, result.Distance)
}

func TestVerifyAcceptsWithinThreshold(t *testing.T) {
	repo := newFakeFaceRepo()
	enrolled := descriptorOf(0.1)
	enroll(t, repo, "emp-1", enrolled)

	svc := NewFaceService(repo, nil, 0.45)

	// Perturb a single component; distance is well under the threshold.
	live := descriptorOf(0.1)
	live[0] += 0.3

	result, err := svc.Verify(authedContext(t, "emp-1"), live)
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.InDelta(t, 0.3, result.Distance, 1e-6)
}

func TestVerifyRejectsDistantDescriptor(t *testing.T) {
	repo := newFakeFaceRepo()
	enroll(t, repo, "emp-1", descriptorOf(0.1))

	svc := NewFaceService(repo, nil, 0.45)

	result, err := svc.Verify(authedContext(t, "emp-1"), descriptorOf(0.9))
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Greater(t, result.Distance, 0.45)
}

func TestVerifyThresholdIsConfigurable(t *testing.T) {
	repo := newFakeFaceRepo()
	enrolled := descriptorOf(0.1)
	enroll(t, repo, "emp-1", enrolled)

	live := descriptorOf(0.1)
	live[0] += 0.42

	strict := NewFaceService(repo, nil, 0.40)
	result, err := strict.Verify(authedContext(t, "emp-1"), live)
	require.NoError(t, err)
	assert.False(t, result.Accepted)

	lenient := NewFaceService(repo, nil, 0.45)
	result, err = lenient.Verify(authedContext(t, "emp-1"), live)
	require.NoError(t, err)
	assert.True(t, result.Accepted)
}

func TestVerifyNotEnrolled(t *testing.T) {
	svc := NewFaceService(newFakeFaceRepo(), nil, 0.45)

	_, err := svc.Verify(authedContext(t, "emp-1"), descriptorOf(0.1))
	assert.ErrorIs(t, err, face.ErrNotEnrolled)
}

func TestVerifyEmptyDescriptor(t *testing.T) {
	repo := newFakeFaceRepo()
	enroll(t, repo, "emp-1", descriptorOf(0.1))

	svc := NewFaceService(repo, nil, 0.45)

	_, err := svc.Verify(authedContext(t, "emp-1"), nil)
	assert.ErrorIs(t, err, face.ErrNoFaceDetected)
}

func TestVerifyWrongDimension(t *testing.T) {
	repo := newFakeFaceRepo()
	enroll(t, repo, "emp-1", descriptorOf(0.1))

	svc := NewFaceService(repo, nil, 0.45)

	_, err := svc.Verify(authedContext(t, "emp-1"), []float32{0.1, 0.2})
	assert.ErrorIs(t, err, face.ErrNoFaceDetected)
}

func TestEnrollEmptyDescriptor(t *testing.T) {
	svc := NewFaceService(newFakeFaceRepo(), nil, 0.45)

	_, err := svc.Enroll(authedContext(t, "emp-1"), face.EnrollRequest{})
	assert.ErrorIs(t, err, face.ErrNoFaceDetected)
}

func TestEuclideanDistance(t *testing.T) {
	a := []float32{0, 0, 0}
	b := []float32{3, 4, 0}
	assert.InDelta(t, 5.0, EuclideanDistance(a, b), 1e-9)

	assert.Zero(t, EuclideanDistance(a, a))
	assert.True(t, math.IsInf(EuclideanDistance(a, []float32{1}), 1))
}
