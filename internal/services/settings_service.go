package services

import (
	"fmt"

	"github.com/zakariamou/sahha/internal/models"
)

// SettingsService owns the single settings row and the setup wizard flow.
type SettingsService struct {
	store SettingsStore
	plan  *PlanService
}

func NewSettingsService(store SettingsStore, plan *PlanService) *SettingsService {
	return &SettingsService{store: store, plan: plan}
}

func (service *SettingsService) Get() (models.Settings, error) {
	settings, found, err := service.store.Get()
	if err != nil {
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if !found {
		return models.Settings{}, ErrSettingsMissing
	}
	return settings, nil
}

// Update overwrites the stored settings with the incoming ones, recomputes
// the automatic targets, and rebuilds the plan so meals and workouts track
// the new configuration.
func (service *SettingsService) Update(incoming models.Settings) (models.Settings, error) {
	current, found, err := service.store.Get()
	if err != nil {
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if !found {
		return models.Settings{}, ErrSettingsMissing
	}

	incoming.ID = current.ID
	incoming.SetupCompleted = current.SetupCompleted
	incoming.SchemaVersion = models.CurrentSchemaVersion
	if incoming.GroceryBought == nil {
		incoming.GroceryBought = current.GroceryBought
	}
	if incoming.StartDate == "" {
		incoming.StartDate = current.StartDate
	}
	targets := ComputeTargets(incoming)
	incoming.TargetsAuto = &targets

	if err := service.store.Save(&incoming); err != nil {
		return models.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	if _, err := service.plan.Rebuild(); err != nil {
		return models.Settings{}, fmt.Errorf("rebuild plan: %w", err)
	}
	return service.Get()
}

// CompleteSetup stores the wizard's answers, marks setup done, and generates
// the first plan.
func (service *SettingsService) CompleteSetup(incoming models.Settings) (models.Settings, error) {
	current, found, err := service.store.Get()
	if err != nil {
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if found {
		incoming.ID = current.ID
		if incoming.GroceryBought == nil {
			incoming.GroceryBought = current.GroceryBought
		}
		if incoming.StartDate == "" {
			incoming.StartDate = current.StartDate
		}
	}
	if incoming.GroceryBought == nil {
		incoming.GroceryBought = map[string]bool{}
	}
	incoming.SetupCompleted = true
	incoming.SchemaVersion = models.CurrentSchemaVersion
	targets := ComputeTargets(incoming)
	incoming.TargetsAuto = &targets

	if err := service.store.Save(&incoming); err != nil {
		return models.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	if _, err := service.plan.Rebuild(); err != nil {
		return models.Settings{}, fmt.Errorf("rebuild plan: %w", err)
	}
	return service.Get()
}

// SetBought flips one grocery key's bought flag. Unsetting removes the key
// so the map only carries positives.
func (service *SettingsService) SetBought(key string, bought bool) error {
	settings, found, err := service.store.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if !found {
		return ErrSettingsMissing
	}
	if settings.GroceryBought == nil {
		settings.GroceryBought = map[string]bool{}
	}
	if bought {
		settings.GroceryBought[key] = true
	} else {
		delete(settings.GroceryBought, key)
	}
	if err := service.store.Save(&settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
