package service

import (
	"errors"
	"strings"

	"repartoya/store-svc/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrNotOwner    = errors.New("caller does not own this restaurant")
	ErrBadName     = errors.New("name is required")
	ErrBadPrice    = errors.New("price must not be negative")
	ErrBadRate     = errors.New("commission rate must be between 0 and 100")
	ErrAlreadyOwns = errors.New("owner already has a restaurant")
)

type RestaurantService struct {
	repository Repository
}

func NewRestaurantService(repository Repository) *RestaurantService {
	return &RestaurantService{repository: repository}
}

// Register creates the vendor's restaurant. It starts unapproved and stays
// invisible to clients until an admin approves it.
func (s *RestaurantService) Register(ownerID string, rest *domain.Restaurant) error {
	if strings.TrimSpace(rest.Name) == "" {
		return ErrBadName
	}
	existing, err := s.repository.GetRestaurantByOwner(ownerID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyOwns
	}

	rest.ID = uuid.NewString()
	rest.OwnerID = ownerID
	rest.Approved = false
	rest.Active = true
	return s.repository.CreateRestaurant(rest)
}

func (s *RestaurantService) ListVisible() ([]domain.Restaurant, error) {
	return s.repository.ListVisibleRestaurants()
}

func (s *RestaurantService) Get(id string) (*domain.Restaurant, error) {
	rest, err := s.repository.GetRestaurant(id)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, ErrNotFound
	}
	return rest, nil
}

func (s *RestaurantService) GetByOwner(ownerID string) (*domain.Restaurant, error) {
	rest, err := s.repository.GetRestaurantByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, ErrNotFound
	}
	return rest, nil
}

func (s *RestaurantService) Update(ownerID string, rest *domain.Restaurant) error {
	current, err := s.Get(rest.ID)
	if err != nil {
		return err
	}
	if current.OwnerID != ownerID {
		return ErrNotOwner
	}
	if strings.TrimSpace(rest.Name) == "" {
		return ErrBadName
	}
	return s.repository.UpdateRestaurant(rest)
}

func (s *RestaurantService) SetActive(id, ownerID string, active bool) error {
	changed, err := s.repository.SetRestaurantActive(id, ownerID, active)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotOwner
	}
	return nil
}

func (s *RestaurantService) UpdatePhoto(id, photoURL string) error {
	return s.repository.UpdateRestaurantPhoto(id, photoURL)
}

type MenuService struct {
	repository Repository
}

func NewMenuService(repository Repository) *MenuService {
	return &MenuService{repository: repository}
}

func (s *MenuService) ownerCheck(ownerID, restaurantID string) error {
	rest, err := s.repository.GetRestaurant(restaurantID)
	if err != nil {
		return err
	}
	if rest == nil {
		return ErrNotFound
	}
	if rest.OwnerID != ownerID {
		return ErrNotOwner
	}
	return nil
}

func (s *MenuService) CreateItem(ownerID string, item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrBadName
	}
	if item.Price < 0 {
		return ErrBadPrice
	}
	if err := s.ownerCheck(ownerID, item.RestaurantID); err != nil {
		return err
	}

	item.ID = uuid.NewString()
	return s.repository.CreateMenuItem(item)
}

func (s *MenuService) List(restaurantID string, availableOnly bool) ([]domain.MenuItem, error) {
	return s.repository.ListMenu(restaurantID, availableOnly)
}

func (s *MenuService) UpdateItem(ownerID string, item *domain.MenuItem) error {
	if item.Price < 0 {
		return ErrBadPrice
	}
	if err := s.ownerCheck(ownerID, item.RestaurantID); err != nil {
		return err
	}

	changed, err := s.repository.UpdateMenuItem(item)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotFound
	}
	return nil
}

func (s *MenuService) DeleteItem(ownerID, restaurantID, itemID string) error {
	if err := s.ownerCheck(ownerID, restaurantID); err != nil {
		return err
	}

	deleted, err := s.repository.DeleteMenuItem(restaurantID, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *MenuService) UpdateItemImage(ownerID, restaurantID, itemID, imageURL string) error {
	if err := s.ownerCheck(ownerID, restaurantID); err != nil {
		return err
	}
	return s.repository.UpdateMenuItemImage(restaurantID, itemID, imageURL)
}

type AdminService struct {
	repository Repository
}

func NewAdminService(repository Repository) *AdminService {
	return &AdminService{repository: repository}
}

func (s *AdminService) PendingRestaurants() ([]domain.Restaurant, error) {
	return s.repository.ListPendingApproval()
}

func (s *AdminService) Approve(restaurantID string) error {
	return s.setApproved(restaurantID, true)
}

// Suspend clears the approval flag, pulling the restaurant out of the
// client storefront without touching its data.
func (s *AdminService) Suspend(restaurantID string) error {
	return s.setApproved(restaurantID, false)
}

func (s *AdminService) setApproved(restaurantID string, approved bool) error {
	changed, err := s.repository.SetRestaurantApproved(restaurantID, approved)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotFound
	}
	return nil
}

func (s *AdminService) Stats() (*domain.PlatformStats, error) {
	return s.repository.GetPlatformStats()
}

func (s *AdminService) CommissionRate() (float64, error) {
	return s.repository.GetCommissionRate()
}

// SetCommissionRate changes the live platform percentage. Delivered orders
// keep the rate snapshotted on them, so this never rewrites history.
func (s *AdminService) SetCommissionRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return ErrBadRate
	}
	return s.repository.SetCommissionRate(rate)
}

type ProfileService struct {
	repository Repository
}

func NewProfileService(repository Repository) *ProfileService {
	return &ProfileService{repository: repository}
}

func (s *ProfileService) Get(id string) (*domain.Profile, error) {
	profile, err := s.repository.GetProfile(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (s *ProfileService) Update(profile *domain.Profile) error {
	return s.repository.UpdateProfile(profile)
}
