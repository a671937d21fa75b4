package employee

type ProfileResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	DepartmentName   *string `json:"department_name,omitempty"`
	DesignationTitle *string `json:"designation_title,omitempty"`
	IsAdmin          bool    `json:"is_admin"`
	Status           bool    `json:"status"`
	FaceEnrolled     bool    `json:"face_enrolled"`
	FaceImagePath    *string `json:"face_image_path,omitempty"`
}

// ToProfileResponse maps the directory entity to the profile payload.
// faceEnrolled is supplied by the caller because enrollment state lives on
// the face profile, not on the directory row alone.
func ToProfileResponse(e Employee, faceEnrolled bool) ProfileResponse {
	return ProfileResponse{
		ID:               e.ID,
		Name:             e.Name,
		Email:            e.Email,
		DepartmentName:   e.DepartmentName,
		DesignationTitle: e.DesignationTitle,
		IsAdmin:          e.IsAdmin,
		Status:           e.Status,
		FaceEnrolled:     faceEnrolled,
		FaceImagePath:    e.FaceImagePath,
	}
}
