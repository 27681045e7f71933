package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Credentials struct {
		Email          string `json:"email"`
		Password       string `json:"password"`
		LauncherSecret string `json:"launcher_secret"`
		ClientSecret   string `json:"client_secret"`
	} `json:"credentials,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		Proxy          string   `json:"proxy"`
		VerifyTLS      bool     `json:"verify_tls"`
		BaseURL        string   `json:"base_url"`
	} `json:"adapter,omitempty"`

	Session struct {
		RenewalMargin     Duration `json:"renewal_margin"`
		RenewalAttempts   uint     `json:"renewal_attempts"`
		RenewalRetryDelay Duration `json:"renewal_retry_delay"`
	} `json:"session,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
		Credentials: Credentials{
			Email:          jsonCfg.Credentials.Email,
			Password:       jsonCfg.Credentials.Password,
			LauncherSecret: jsonCfg.Credentials.LauncherSecret,
			ClientSecret:   jsonCfg.Credentials.ClientSecret,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Proxy:          jsonCfg.Adapter.Proxy,
			VerifyTLS:      jsonCfg.Adapter.VerifyTLS,
			BaseURL:        jsonCfg.Adapter.BaseURL,
		},
		Session: Session{
			RenewalMargin:     time.Duration(jsonCfg.Session.RenewalMargin),
			RenewalAttempts:   jsonCfg.Session.RenewalAttempts,
			RenewalRetryDelay: time.Duration(jsonCfg.Session.RenewalRetryDelay),
		},
		Log:          Log{Level: jsonCfg.Log.Level},
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
