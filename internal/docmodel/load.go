package docmodel

import (
	"encoding/json"
	"fmt"
	"os"
)

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// LoadContract reads and validates a contract data file.
func LoadContract(path string) (*ContractData, error) {
	var c ContractData
	if err := loadJSON(path, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid contract data: %w", err)
	}
	return &c, nil
}

// LoadListing reads and validates a listing data file.
func LoadListing(path string) (*RoomListingData, error) {
	var l RoomListingData
	if err := loadJSON(path, &l); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid listing data: %w", err)
	}
	return &l, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse data file: %w", err)
	}
	return nil
}
