package service

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"rentassist/internal/model"
)

// AvailableLister lists the properties eligible for syncing
type AvailableLister interface {
	ListAvailable(ctx context.Context) ([]model.Property, error)
}

// SyncService pushes available properties into the JamAI knowledge action
// table so the generative assistant can ground its answers on them.
type SyncService struct {
	store   AvailableLister
	client  *JamAIClient
	tableID string
}

// NewSyncService creates a new sync service
func NewSyncService(store AvailableLister, client *JamAIClient, tableID string) *SyncService {
	return &SyncService{
		store:   store,
		client:  client,
		tableID: tableID,
	}
}

// Sync uploads every available property as one row. When nothing has
// synced yet, the run stops at the first row error to avoid hammering a
// misconfigured table; later errors are recorded but do not stop the run.
func (s *SyncService) Sync(ctx context.Context) (model.SyncResponse, error) {
	if !s.client.IsEnabled() {
		return model.SyncResponse{}, fmt.Errorf("JamAI is not configured")
	}

	properties, err := s.store.ListAvailable(ctx)
	if err != nil {
		return model.SyncResponse{}, fmt.Errorf("failed to load properties: %w", err)
	}

	if len(properties) == 0 {
		return model.SyncResponse{
			Success: true,
			Message: "No properties to sync",
		}, nil
	}

	synced := 0
	var first *model.SyncError

	for i, prop := range properties {
		log.Printf("Syncing property %d/%d: %d - %s", i+1, len(properties), prop.ID, prop.Title)

		_, err := s.client.AddRow(ctx, "action", AddRowRequest{
			TableID: s.tableID,
			Data:    []map[string]any{propertyRow(prop)},
		})
		if err != nil {
			log.Printf("Error syncing property %d: %v", prop.ID, err)
			if first == nil {
				first = &model.SyncError{
					PropertyID: prop.ID,
					Title:      prop.Title,
					Error:      err.Error(),
				}
			}
			if synced == 0 {
				break
			}
			continue
		}
		synced++
	}

	if synced == 0 && first != nil {
		return model.SyncResponse{
			Error: "Failed to sync any properties",
			First: first,
			Hint:  fmt.Sprintf("Please ensure the %q action table exists in JamAI Base with the correct columns.", s.tableID),
			Total: len(properties),
		}, fmt.Errorf("failed to sync any properties: %s", first.Error)
	}

	return model.SyncResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully synced %d out of %d properties to JamAI Base", synced, len(properties)),
		Count:   synced,
		Total:   len(properties),
		First:   first,
	}, nil
}

// propertyRow maps a property onto the knowledge table's column schema
func propertyRow(prop model.Property) map[string]any {
	description := ""
	if prop.Description != nil {
		description = *prop.Description
	}
	if description == "" {
		description = fmt.Sprintf("%s located in %s. %d bedrooms, %d bathrooms.",
			prop.Title, prop.Location, prop.Bedrooms, prop.Bathrooms)
	}

	propertyType := "Apartment"
	if prop.Bedrooms >= 3 {
		propertyType = "House"
	}

	furnished := "unfurnished"
	if prop.Furnished != nil && *prop.Furnished != "" {
		furnished = *prop.Furnished
	}

	return map[string]any{
		"Property_ID":   strconv.FormatInt(prop.ID, 10),
		"Title":         prop.Title,
		"Location":      prop.Location,
		"Property_Type": propertyType,
		"Bedrooms":      prop.Bedrooms,
		"Bathrooms":     prop.Bathrooms,
		"Price":         prop.Price,
		"Furnished":     furnished,
		"Description":   description,
	}
}
