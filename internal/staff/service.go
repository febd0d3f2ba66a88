package staff

import (
	"log/slog"
)

// Repository defines the data access methods for staff profiles.
type Repository interface {
	Create(profile *Profile) error
	GetByID(id string) (*Profile, error)
	GetAll() ([]*Profile, error)
	GetByDepartment(department string) ([]*Profile, error)
	Update(id string, patch map[string]interface{}) (*Profile, error)
	Delete(id string) (*Profile, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(dto CreateStaffDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("staff validation failed", "error", err)
		return nil, err
	}

	profile := NewProfile(dto)
	if err := s.repo.Create(profile); err != nil {
		s.logger.Error("failed to create staff profile", "error", err)
		return nil, err
	}

	s.logger.Info("staff profile created", "profile_id", profile.ID, "employment_type", profile.EmploymentType)
	return profile, nil
}

func (s *Service) GetByID(id string) (*Profile, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetAll() ([]*Profile, error) {
	return s.repo.GetAll()
}

func (s *Service) FindByDepartment(department string) ([]*Profile, error) {
	return s.repo.GetByDepartment(department)
}

func (s *Service) Update(id string, dto UpdateStaffDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("staff update validation failed", "error", err, "profile_id", id)
		return nil, err
	}

	patch := dto.Patch()
	if len(patch) == 0 {
		return s.repo.GetByID(id)
	}

	profile, err := s.repo.Update(id, patch)
	if err != nil {
		s.logger.Error("failed to update staff profile", "error", err, "profile_id", id)
		return nil, err
	}
	return profile, nil
}

func (s *Service) Delete(id string) (*Profile, error) {
	profile, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete staff profile", "error", err, "profile_id", id)
		return nil, err
	}

	s.logger.Info("staff profile deleted", "profile_id", id)
	return profile, nil
}
