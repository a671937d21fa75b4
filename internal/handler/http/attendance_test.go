package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/face"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFaceService struct {
	result face.MatchResult
	err    error
}

func (s *stubFaceService) Enroll(ctx context.Context, req face.EnrollRequest) (face.EnrollResponse, error) {
	return face.EnrollResponse{}, nil
}

func (s *stubFaceService) Verify(ctx context.Context, descriptor []float32) (face.MatchResult, error) {
	return s.result, s.err
}

type stubAttendanceService struct {
	attendance.AttendanceService
	signIns  int
	onLeave  bool
	response attendance.SignInResponse
}

func (s *stubAttendanceService) SignIn(ctx context.Context, req attendance.SignInRequest) (attendance.SignInResponse, error) {
	s.signIns++
	return s.response, nil
}

func (s *stubAttendanceService) OnLeaveToday(ctx context.Context) (bool, error) {
	return s.onLeave, nil
}

func doSignIn(t *testing.T, faceSvc face.FaceService, attendanceSvc attendance.AttendanceService) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewAttendanceHandler(attendanceSvc, faceSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/sign-in",
		strings.NewReader(`{"descriptor":[0.1,0.2]}`))
	rec := httptest.NewRecorder()

	handler.SignIn(rec, req)
	return rec
}

func TestSignInMatchAccepted(t *testing.T) {
	faceSvc := &stubFaceService{result: face.MatchResult{Accepted: true, Distance: 0.12}}
	attendanceSvc := &stubAttendanceService{response: attendance.SignInResponse{
		Outcome: attendance.OutcomeCreated,
	}}

	rec := doSignIn(t, faceSvc, attendanceSvc)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, attendanceSvc.signIns)
}

func TestSignInAlreadySignedInReturns200(t *testing.T) {
	faceSvc := &stubFaceService{result: face.MatchResult{Accepted: true, Distance: 0.12}}
	attendanceSvc := &stubAttendanceService{response: attendance.SignInResponse{
		Outcome: attendance.OutcomeAlreadySignedIn,
	}}

	rec := doSignIn(t, faceSvc, attendanceSvc)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignInMismatchNeverReachesLedger(t *testing.T) {
	faceSvc := &stubFaceService{result: face.MatchResult{Accepted: false, Distance: 0.97}}
	attendanceSvc := &stubAttendanceService{}

	rec := doSignIn(t, faceSvc, attendanceSvc)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, attendanceSvc.signIns)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "FACE_MISMATCH", body.Error.Code)
	assert.Equal(t, "0.9700", body.Error.Details["distance"])
}

func TestSignInOnLeaveWinsOverMismatch(t *testing.T) {
	// The face would be rejected, but the leave day must be reported first.
	faceSvc := &stubFaceService{result: face.MatchResult{Accepted: false, Distance: 0.97}}
	attendanceSvc := &stubAttendanceService{onLeave: true}

	rec := doSignIn(t, faceSvc, attendanceSvc)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Zero(t, attendanceSvc.signIns)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "ON_LEAVE", body.Error.Code)
}

func TestSignInNotEnrolledIsConflict(t *testing.T) {
	faceSvc := &stubFaceService{err: face.ErrNotEnrolled}
	attendanceSvc := &stubAttendanceService{}

	rec := doSignIn(t, faceSvc, attendanceSvc)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Zero(t, attendanceSvc.signIns)
}

func TestSignInNoFaceDetectedIsUnprocessable(t *testing.T) {
	faceSvc := &stubFaceService{err: face.ErrNoFaceDetected}
	attendanceSvc := &stubAttendanceService{}

	rec := doSignIn(t, faceSvc, attendanceSvc)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, attendanceSvc.signIns)
}

func TestSignInBadJSON(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{}, &stubFaceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/sign-in", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	handler.SignIn(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
