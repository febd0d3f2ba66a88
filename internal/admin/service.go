package admin

import (
	"log/slog"
)

// Repository defines the data access methods for admin profiles.
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

func (s *Service) Create(dto CreateAdminDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("admin validation failed", "error", err)
		return nil, err
	}

	profile := NewProfile(dto)
	if err := s.repo.Create(profile); err != nil {
		s.logger.Error("failed to create admin profile", "error", err)
		return nil, err
	}

	s.logger.Info("admin profile created", "profile_id", profile.ID, "admin_level", profile.AdminLevel)
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

func (s *Service) Update(id string, dto UpdateAdminDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("admin update validation failed", "error", err, "profile_id", id)
		return nil, err
	}

	patch := dto.Patch()
	if len(patch) == 0 {
		return s.repo.GetByID(id)
	}

	profile, err := s.repo.Update(id, patch)
	if err != nil {
		s.logger.Error("failed to update admin profile", "error", err, "profile_id", id)
		return nil, err
	}
	return profile, nil
}

func (s *Service) Delete(id string) (*Profile, error) {
	profile, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete admin profile", "error", err, "profile_id", id)
		return nil, err
	}

	s.logger.Info("admin profile deleted", "profile_id", id)
	return profile, nil
}
