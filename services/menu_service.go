package services

import (
	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// List returns the orderable catalog. An empty catalog is a valid,
// non-error result the presentation layer renders as an empty state.
func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}
