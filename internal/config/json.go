package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Storage struct {
		TopDir        string `json:"top_dir"`
		MaxSubmitSlot int    `json:"max_submit_slot"`
	} `json:"storage,omitempty"`

	Password struct {
		MinLength      int      `json:"min_length"`
		MaxLength      int      `json:"max_length"`
		ExpiryInterval Duration `json:"expiry_interval"`
	} `json:"password,omitempty"`

	Contest struct {
		OpenAt  time.Time `json:"open_at"`
		CloseAt time.Time `json:"close_at"`
	} `json:"contest,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			TopDir:        jsonCfg.Storage.TopDir,
			MaxSubmitSlot: jsonCfg.Storage.MaxSubmitSlot,
		},
		Password: Password{
			MinLength:      jsonCfg.Password.MinLength,
			MaxLength:      jsonCfg.Password.MaxLength,
			ExpiryInterval: time.Duration(jsonCfg.Password.ExpiryInterval),
		},
		Contest: Contest{
			OpenAt:  jsonCfg.Contest.OpenAt,
			CloseAt: jsonCfg.Contest.CloseAt,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
