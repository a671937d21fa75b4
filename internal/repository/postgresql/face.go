package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/face"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

type faceRepository struct {
	db *database.DB
}

func NewFaceRepository(db *database.DB) face.FaceRepository {
	return &faceRepository{db: db}
}

// GetProfile implements face.FaceRepository.
func (f *faceRepository) GetProfile(ctx context.Context, employeeID string) (face.FaceProfile, error) {
	q := GetQuerier(ctx, f.db)

	query := `
		SELECT id, face_descriptor, face_image_path, face_enrolled_at
		FROM employees
		WHERE id = $1
	`

	var profile face.FaceProfile
	var descriptor *pgvector.Vector
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&profile.EmployeeID, &descriptor, &profile.ImagePath, &profile.EnrolledAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return face.FaceProfile{}, employee.ErrEmployeeNotFound
		}
		return face.FaceProfile{}, fmt.Errorf("failed to get face profile: %w", err)
	}

	if descriptor != nil {
		profile.Descriptor = descriptor.Slice()
	}

	return profile, nil
}

// SaveProfile implements face.FaceRepository.
func (f *faceRepository) SaveProfile(ctx context.Context, employeeID string, descriptor []float32, imagePath string, enrolledAt time.Time) error {
	q := GetQuerier(ctx, f.db)

	query := `
		UPDATE employees
		SET face_descriptor = $2, face_image_path = $3, face_enrolled_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, employeeID, pgvector.NewVector(descriptor), imagePath, enrolledAt)
	if err != nil {
		return fmt.Errorf("failed to save face profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
